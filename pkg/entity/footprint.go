package entity

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// PadHole is a drill hole of a footprint pad. A single vertex is a round
// hole; more vertices describe a slot.
type PadHole struct {
	id       ident.UUID
	diameter DrillDiameter
	path     []Vertex
}

// NewPadHole creates a hole. The path must have at least one vertex.
func NewPadHole(id ident.UUID, diameter DrillDiameter, path ...Vertex) (*PadHole, error) {
	errs := validation.Errors{
		"uuid":     validation.Validate(id, notNilUUID),
		"diameter": diameter.Validate(),
		"vertices": validateVertices(path),
	}
	if len(path) == 0 {
		errs["vertices"] = errors.New("at least one vertex is required")
	}
	if err := errs.Filter(); err != nil {
		return nil, invalid("hole", err)
	}
	return &PadHole{id: id, diameter: diameter, path: append([]Vertex(nil), path...)}, nil
}

func (h *PadHole) Node() *sexpr.List {
	l := sexpr.NewList("hole", sexpr.Symbol(h.id.String()), h.diameter.Node())
	for _, v := range h.path {
		l.Add(v.Node())
	}
	return l
}

// FootprintPadParams holds the attributes of a footprint pad.
type FootprintPadParams struct {
	ID          ident.UUID
	Side        ComponentSide
	Shape       PadShape
	Position    Position
	Rotation    Rotation
	Size        Size
	Radius      ShapeRadius
	StopMask    MaskConfig
	SolderPaste MaskConfig
	Clearance   Clearance
	Function    PadFunction
	// PackagePad references the package pad this pad connects to. It is
	// not checked against the package.
	PackagePad ident.UUID
	Holes      []*PadHole
}

// FootprintPad is a copper pad of one footprint variant.
type FootprintPad struct {
	p FootprintPadParams
}

// NewFootprintPad validates p and creates a footprint pad.
func NewFootprintPad(p FootprintPadParams) (*FootprintPad, error) {
	err := validation.Errors{
		"uuid":         validation.Validate(p.ID, notNilUUID),
		"side":         p.Side.Validate(),
		"shape":        p.Shape.Validate(),
		"position":     p.Position.Validate(),
		"rotation":     p.Rotation.Validate(),
		"size":         p.Size.Validate(),
		"radius":       p.Radius.Validate(),
		"stop_mask":    p.StopMask.Validate(),
		"solder_paste": p.SolderPaste.Validate(),
		"clearance":    p.Clearance.Validate(),
		"function":     p.Function.Validate(),
		"package_pad":  validation.Validate(p.PackagePad, notNilUUID),
	}.Filter()
	if err != nil {
		return nil, invalid("pad", err)
	}
	p.Holes = append([]*PadHole(nil), p.Holes...)
	return &FootprintPad{p: p}, nil
}

// UUID returns the pad identifier.
func (fp *FootprintPad) UUID() ident.UUID { return fp.p.ID }

func (fp *FootprintPad) Node() *sexpr.List {
	p := fp.p
	l := sexpr.NewList("pad", sexpr.Symbol(p.ID.String()), p.Side.Node(), p.Shape.Node())
	l.AddLine(p.Position.Node(), p.Rotation.Node(), p.Size.Node(), p.Radius.Node())
	l.AddLine(p.StopMask.StopMaskNode(), p.SolderPaste.SolderPasteNode(), p.Clearance.Node(), p.Function.Node())
	l.Add(ref("package_pad", p.PackagePad))
	for _, h := range p.Holes {
		l.Add(h.Node())
	}
	return l
}

// StrokeTextParams holds the attributes of a stroke text.
type StrokeTextParams struct {
	ID            ident.UUID
	Layer         Layer
	Height        Height
	StrokeWidth   StrokeWidth
	LetterSpacing Spacing
	LineSpacing   Spacing
	Align         Align
	Position      Position
	Rotation      Rotation
	AutoRotate    AutoRotate
	Mirror        Mirror
	Value         Value
}

// StrokeText is a text label drawn with strokes, e.g. the {{NAME}} label.
type StrokeText struct {
	p StrokeTextParams
}

// NewStrokeText validates p and creates a stroke text.
func NewStrokeText(p StrokeTextParams) (*StrokeText, error) {
	err := validation.Errors{
		"uuid":           validation.Validate(p.ID, notNilUUID),
		"layer":          p.Layer.Validate(),
		"height":         p.Height.Validate(),
		"stroke_width":   p.StrokeWidth.Validate(),
		"letter_spacing": p.LetterSpacing.Validate(),
		"line_spacing":   p.LineSpacing.Validate(),
		"align":          p.Align.Validate(),
		"position":       p.Position.Validate(),
		"rotation":       p.Rotation.Validate(),
	}.Filter()
	if err != nil {
		return nil, invalid("stroke_text", err)
	}
	return &StrokeText{p: p}, nil
}

// UUID returns the text identifier.
func (t *StrokeText) UUID() ident.UUID { return t.p.ID }

func (t *StrokeText) Node() *sexpr.List {
	p := t.p
	l := sexpr.NewList("stroke_text", sexpr.Symbol(p.ID.String()), p.Layer.Node())
	l.AddLine(p.Height.Node(), p.StrokeWidth.Node(), p.LetterSpacing.LetterSpacingNode(), p.LineSpacing.LineSpacingNode())
	l.AddLine(p.Align.Node(), p.Position.Node(), p.Rotation.Node())
	l.AddLine(p.AutoRotate.Node(), p.Mirror.Node(), p.Value.Node())
	return l
}

// Footprint3DModel references a package 3D model from a footprint.
type Footprint3DModel struct {
	ID ident.UUID
}

// NewFootprint3DModel creates a reference to the package 3D model id.
func NewFootprint3DModel(id ident.UUID) (Footprint3DModel, error) {
	m := Footprint3DModel{ID: id}
	if err := m.Validate(); err != nil {
		return Footprint3DModel{}, err
	}
	return m, nil
}

func (m Footprint3DModel) Validate() error {
	err := validation.Errors{
		"uuid": validation.Validate(m.ID, notNilUUID),
	}.Filter()
	return invalid("3d_model", err)
}

// Compare orders references by UUID.
func (m Footprint3DModel) Compare(other Footprint3DModel) int {
	return m.ID.Compare(other.ID)
}

func (m Footprint3DModel) Node() *sexpr.List {
	return sexpr.NewList("3d_model", sexpr.Symbol(m.ID.String()))
}

// Footprint is one physical pad layout variant of a package.
type Footprint struct {
	id          ident.UUID
	name        Name
	description Description
	position3D  Position3D
	rotation3D  Rotation3D

	models   []Footprint3DModel
	pads     []*FootprintPad
	polygons []*Polygon
	circles  []*Circle
	texts    []*StrokeText
}

// NewFootprint creates an empty footprint.
func NewFootprint(id ident.UUID, name Name, description Description, position3D Position3D, rotation3D Rotation3D) (*Footprint, error) {
	err := validation.Errors{
		"uuid":        validation.Validate(id, notNilUUID),
		"name":        name.Validate(),
		"3d_position": position3D.Validate(),
		"3d_rotation": rotation3D.Validate(),
	}.Filter()
	if err != nil {
		return nil, invalid("footprint", err)
	}
	return &Footprint{
		id:          id,
		name:        name,
		description: description,
		position3D:  position3D,
		rotation3D:  rotation3D,
	}, nil
}

// UUID returns the footprint identifier.
func (f *Footprint) UUID() ident.UUID { return f.id }

// Name returns the footprint name.
func (f *Footprint) Name() Name { return f.name }

// AddPad appends a pad. Pads are rendered in insertion order.
func (f *Footprint) AddPad(pad *FootprintPad) { f.pads = append(f.pads, pad) }

// Add3DModel appends a 3D model reference. References are rendered sorted.
func (f *Footprint) Add3DModel(model Footprint3DModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	f.models = append(f.models, model)
	return nil
}

// AddPolygon appends a polygon. The polygon must have at least one vertex.
func (f *Footprint) AddPolygon(polygon *Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	f.polygons = append(f.polygons, polygon)
	return nil
}

// AddCircle appends a circle.
func (f *Footprint) AddCircle(circle *Circle) { f.circles = append(f.circles, circle) }

// AddText appends a stroke text.
func (f *Footprint) AddText(text *StrokeText) { f.texts = append(f.texts, text) }

// Pads returns the pads in insertion order.
func (f *Footprint) Pads() []*FootprintPad { return append([]*FootprintPad(nil), f.pads...) }

// Polygons returns the polygons in insertion order.
func (f *Footprint) Polygons() []*Polygon { return append([]*Polygon(nil), f.polygons...) }

// Circles returns the circles in insertion order.
func (f *Footprint) Circles() []*Circle { return append([]*Circle(nil), f.circles...) }

// Texts returns the stroke texts in insertion order.
func (f *Footprint) Texts() []*StrokeText { return append([]*StrokeText(nil), f.texts...) }

func (f *Footprint) Node() *sexpr.List {
	l := sexpr.NewList("footprint", sexpr.Symbol(f.id.String()))
	l.Add(f.name.Node(), f.description.Node())
	l.AddLine(f.position3D.Node(), f.rotation3D.Node())

	models := append([]Footprint3DModel(nil), f.models...)
	sort.SliceStable(models, func(i, j int) bool { return models[i].Compare(models[j]) < 0 })
	for _, m := range models {
		l.Add(m.Node())
	}
	for _, p := range f.pads {
		l.Add(p.Node())
	}
	for _, p := range f.polygons {
		l.Add(p.Node())
	}
	for _, c := range f.circles {
		l.Add(c.Node())
	}
	for _, t := range f.texts {
		l.Add(t.Node())
	}
	return l
}

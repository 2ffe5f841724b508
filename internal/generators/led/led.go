// Package led generates through-hole LED packages and their devices.
package led

import (
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/librepcb/partsgen/internal/generators"
	"github.com/librepcb/partsgen/pkg/entity"
	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

// GeneratorName identifies this generator in element descriptions.
const GeneratorName = "librepcb-parts-generator (partsgen led)"

const (
	leadWidth        = 0.5
	padDrill         = 0.8
	defaultLineWidth = 0.2
	textHeight       = 1.0
)

// Component and signals of the generic LED component in the base library.
var (
	ComponentUUID = ident.MustParseUUID("2b24b18d-bd95-4fb4-8fe6-bce1d020ead4")
	SignalAnode   = ident.MustParseUUID("f1467b5c-cc7d-44b4-8076-d729f35b3a6a")
	SignalCathode = ident.MustParseUUID("7b023430-b68f-403a-80b8-c7deb12e7a0c")
)

// Meta holds the header values of one element kind.
type Meta struct {
	Author   entity.Author
	Version  entity.Version
	Keywords entity.Keywords
	Category ident.UUID
	Created  time.Time
}

func (m Meta) metadata(name, description string) entity.Metadata {
	md := entity.Metadata{
		Name:        entity.Name(name),
		Description: entity.Description(description),
		Keywords:    m.Keywords,
		Author:      m.Author,
		Version:     m.Version,
		Created:     entity.Created(m.Created),
	}
	if !m.Category.IsZero() {
		md.Categories = []ident.UUID{m.Category}
	}
	return md
}

// Options configures the generated family.
type Options struct {
	Variants []Variant
	Package  Meta
	Device   Meta
}

// Generator builds LED packages and devices.
type Generator struct {
	cache  *uuidcache.Cache
	opts   Options
	logger hclog.Logger
}

var _ generators.Generator = (*Generator)(nil)

// New returns a generator resolving identifiers through cache.
func New(cache *uuidcache.Cache, opts Options, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{cache: cache, opts: opts, logger: logger.Named("led")}
}

// Name implements generators.Generator.
func (g *Generator) Name() string { return "led" }

// Generate builds all packages, then all devices.
func (g *Generator) Generate() ([]entity.Document, error) {
	docs := make([]entity.Document, 0, 2*len(g.opts.Variants))
	for _, v := range g.opts.Variants {
		pkg, err := g.Package(v)
		if err != nil {
			return nil, fmt.Errorf("error generating package %s: %w", v.PackageName(), err)
		}
		g.logger.Debug("generated package", "name", v.PackageName(), "uuid", pkg.UUID())
		docs = append(docs, pkg)
	}
	for _, v := range g.opts.Variants {
		dev, err := g.Device(v)
		if err != nil {
			return nil, fmt.Errorf("error generating device %s: %w", v.DeviceName(), err)
		}
		g.logger.Debug("generated device", "name", v.DeviceName(), "uuid", dev.UUID())
		docs = append(docs, dev)
	}
	return docs, nil
}

func (g *Generator) pkgUUID(v Variant, identifier string) ident.UUID {
	return g.cache.Resolve(ident.Key("pkg", v.PackageName(), identifier))
}

// Device builds the device binding the generic LED component to the
// package of v.
func (g *Generator) Device(v Variant) (*entity.Device, error) {
	id := g.cache.Resolve(ident.Key("dev", v.DeviceName(), "dev"))
	dev, err := entity.NewDevice(id, g.opts.Device.metadata(v.DeviceName(), v.Description()),
		ComponentUUID, g.pkgUUID(v, "pkg"))
	if err != nil {
		return nil, err
	}
	if err := dev.AddPad(entity.DevicePad{Pad: g.pkgUUID(v, "pad-a"), Signal: SignalAnode}); err != nil {
		return nil, err
	}
	if err := dev.AddPad(entity.DevicePad{Pad: g.pkgUUID(v, "pad-c"), Signal: SignalCathode}); err != nil {
		return nil, err
	}
	return dev, nil
}

// Package builds the package of v with its vertical and horizontal
// footprints.
func (g *Generator) Package(v Variant) (*entity.Package, error) {
	pkg, err := entity.NewPackage(g.pkgUUID(v, "pkg"),
		g.opts.Package.metadata(v.PackageName(), v.Description()), entity.AssemblyTypeAuto)
	if err != nil {
		return nil, err
	}
	for _, p := range []struct{ key, name string }{{"pad-a", "A"}, {"pad-c", "C"}} {
		pad, err := entity.NewPackagePad(g.pkgUUID(v, p.key), entity.Name(p.name))
		if err != nil {
			return nil, err
		}
		pkg.AddPad(pad)
	}

	b := &builder{g: g, v: v}
	roundPad := entity.Size{Width: 1.4, Height: 1.4}
	b.vertical(pkg, "Vertical", "", roundPad)
	if !v.small() {
		b.vertical(pkg, "Vertical, Large Pads", "-large", entity.Size{Width: 2.5, Height: 1.3})
	}
	b.horizontal(pkg, "Horizontal, 0.5 mm Offset", "-h050", roundPad, 0.5)
	b.horizontal(pkg, "Horizontal, 2.54 mm Offset", "-h254", roundPad, 2.54)
	b.horizontal(pkg, "Horizontal, 7.62 mm Offset", "-h762", roundPad, 7.62)
	if b.err != nil {
		return nil, b.err
	}
	return pkg, nil
}

// builder assembles the footprints of one variant. The first construction
// error is kept and all later calls become no-ops.
type builder struct {
	g   *Generator
	v   Variant
	err error
}

func (b *builder) uuid(identifier string) ident.UUID {
	return b.g.pkgUUID(b.v, identifier)
}

func vtx(x, y, angle float64) entity.Vertex {
	return entity.Vtx(generators.Round3(x), generators.Round3(y), generators.Round3(angle))
}

func (b *builder) polygon(fpt *entity.Footprint, identifier string, layer entity.Layer, width float64, fill bool, vertices ...entity.Vertex) {
	if b.err != nil {
		return
	}
	p, err := entity.NewPolygon(b.uuid(identifier), layer, entity.Width(generators.Round3(width)), entity.Fill(fill), false)
	if err != nil {
		b.err = err
		return
	}
	if err := p.AddVertex(vertices...); err != nil {
		b.err = err
		return
	}
	if err := fpt.AddPolygon(p); err != nil {
		b.err = err
	}
}

func (b *builder) text(fpt *entity.Footprint, identifier string, layer entity.Layer, align entity.Align, y float64, value entity.Value) {
	if b.err != nil {
		return
	}
	t, err := entity.NewStrokeText(entity.StrokeTextParams{
		ID:            b.uuid(identifier),
		Layer:         layer,
		Height:        textHeight,
		StrokeWidth:   0.2,
		LetterSpacing: entity.SpacingAuto,
		LineSpacing:   entity.SpacingAuto,
		Align:         align,
		Position:      entity.Pos(0, generators.Round3(y)),
		AutoRotate:    true,
		Value:         value,
	})
	if err != nil {
		b.err = err
		return
	}
	fpt.AddText(t)
}

// footprint adds a footprint with the anode and cathode pads.
func (b *builder) footprint(pkg *entity.Package, name entity.Name, suffix string, padSize entity.Size) *entity.Footprint {
	if b.err != nil {
		return nil
	}
	fpt, err := entity.NewFootprint(b.uuid("footprint"+suffix), name, "", entity.Position3D{}, entity.Rotation3D{})
	if err != nil {
		b.err = err
		return nil
	}
	pkg.AddFootprint(fpt)

	for _, p := range []struct {
		key    string
		factor float64
		radius entity.ShapeRadius
	}{{"pad-a", 1, 1.0}, {"pad-c", -1, 0.0}} {
		id := b.uuid(p.key)
		hole, err := entity.NewPadHole(id, padDrill, entity.Vtx(0, 0, 0))
		if err != nil {
			b.err = err
			return nil
		}
		pad, err := entity.NewFootprintPad(entity.FootprintPadParams{
			ID:          id,
			Side:        entity.ComponentSideTop,
			Shape:       entity.PadShapeRoundedRect,
			Position:    entity.Pos(generators.Round3(b.v.LeadSpacing/2*p.factor), 0),
			Rotation:    90,
			Size:        padSize,
			Radius:      p.radius,
			StopMask:    entity.MaskAuto,
			SolderPaste: entity.MaskOff,
			Function:    entity.PadFunctionUnspecified,
			PackagePad:  id,
			Holes:       []*entity.PadHole{hole},
		})
		if err != nil {
			b.err = err
			return nil
		}
		fpt.AddPad(pad)
	}
	return fpt
}

// flattenedCircle draws a circle with its flat side on the left. Equal radii
// give a plain circle. A reduced outline only keeps the top and bottom arcs.
func (b *builder) flattenedCircle(fpt *entity.Footprint, identifier string, layer entity.Layer, outer, inner, width float64, reduced bool) {
	if b.err != nil {
		return
	}
	if outer == inner {
		c, err := entity.NewCircle(b.uuid(identifier), layer, entity.Width(generators.Round3(width)), false, false,
			entity.Diameter(generators.Round3(outer*2)), entity.Pos(0, 0))
		if err != nil {
			b.err = err
			return
		}
		fpt.AddCircle(c)
		return
	}

	y := math.Sqrt(outer*outer - inner*inner)
	if !reduced {
		angle := 180 - degrees(math.Acos(inner/outer))
		b.polygon(fpt, identifier, layer, width, false,
			vtx(-inner, -y, angle),
			vtx(outer, 0, angle),
			vtx(-inner, y, 0),
			vtx(-inner, -y, 0),
		)
		return
	}

	angle := degrees(2 * math.Asin(inner/outer))
	for _, part := range []struct {
		y      float64
		suffix string
	}{{y, "-top"}, {-y, "-bot"}} {
		a := angle
		if part.y < 0 {
			a = -angle
		}
		b.polygon(fpt, identifier+part.suffix, layer, width, false,
			vtx(inner, part.y, a),
			vtx(-inner, part.y, 0),
			vtx(-inner, part.y*0.80, 0),
		)
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func courtyardOffset(botDiameter float64) float64 {
	if botDiameter >= 10.0 {
		return 1.0 / 2
	}
	return 0.8 / 2
}

func (b *builder) vertical(pkg *entity.Package, name entity.Name, suffix string, padSize entity.Size) {
	fpt := b.footprint(pkg, name, suffix, padSize)
	if fpt == nil {
		return
	}
	v := b.v
	lw := defaultLineWidth

	b.flattenedCircle(fpt, "polygon-doc"+suffix, entity.LayerTopDocumentation,
		v.BotDiameter/2-lw/2, v.TopDiameter/2-lw/2, lw, false)
	b.flattenedCircle(fpt, "polygon-legend"+suffix, entity.LayerTopLegend,
		v.BotDiameter/2+lw/2, v.TopDiameter/2+lw/2, lw, v.small())

	offset := courtyardOffset(v.BotDiameter)
	padRing := v.LeadSpacing/2 + padSize.Height/2
	b.flattenedCircle(fpt, "polygon-courtyard"+suffix, entity.LayerTopCourtyard,
		math.Max(v.BotDiameter/2, padRing)+offset, math.Max(v.TopDiameter/2, padRing)+offset, 0, false)

	b.text(fpt, "text-name"+suffix, entity.LayerTopNames,
		entity.Align{H: entity.HAlignCenter, V: entity.VAlignBottom}, v.BotDiameter/2+0.8, "{{NAME}}")
	b.text(fpt, "text-value"+suffix, entity.LayerTopValues,
		entity.Align{H: entity.HAlignCenter, V: entity.VAlignTop}, -(v.BotDiameter/2)-0.8, "{{VALUE}}")
}

func (b *builder) horizontal(pkg *entity.Package, name entity.Name, suffix string, padSize entity.Size, bodyOffset float64) {
	fpt := b.footprint(pkg, name, suffix, padSize)
	if fpt == nil {
		return
	}
	v := b.v
	lw := defaultLineWidth

	// Documentation outline
	inner := v.TopDiameter/2 - lw/2
	outer := v.BotDiameter/2 - lw/2
	bodyBottomY := bodyOffset + lw/2
	bodyMiddleY := bodyBottomY + 1.0 - lw
	bodyTopY := bodyBottomY + v.BodyHeight - inner - lw
	b.polygon(fpt, "polygon-doc"+suffix, entity.LayerTopDocumentation, lw, false,
		vtx(-inner, bodyMiddleY, 0),
		vtx(-inner, bodyTopY, -180),
		vtx(inner, bodyTopY, 0),
		vtx(inner, bodyMiddleY, 0),
		vtx(outer, bodyMiddleY, 0),
		vtx(outer, bodyBottomY, 0),
		vtx(-inner, bodyBottomY, 0),
		vtx(-inner, bodyMiddleY, 0),
		vtx(inner, bodyMiddleY, 0),
	)

	// Documentation leads
	for _, p := range []struct {
		pad    string
		factor float64
	}{{"a", 1}, {"c", -1}} {
		x0 := math.Min(v.LeadSpacing/2+leadWidth/2, v.TopDiameter/2) * p.factor
		x1 := (2*(v.LeadSpacing/2) - x0*p.factor) * p.factor
		b.polygon(fpt, "polygon-doc-"+p.pad+suffix, entity.LayerTopDocumentation, 0, true,
			vtx(x0, bodyOffset, 0),
			vtx(x1, bodyOffset, 0),
			vtx(x1, -leadWidth/2, 0),
			vtx(x0, -leadWidth/2, 0),
			vtx(x0, bodyOffset, 0),
		)
	}

	// The legend is split when the body is too close to the pads.
	bodyBottomY -= lw
	padLegendClearance := padSize.Width/2 + lw/2 + 0.18
	split := bodyBottomY < padLegendClearance
	if split {
		legendX := v.LeadSpacing/2 - padLegendClearance
		b.polygon(fpt, "polygon-legend2"+suffix, entity.LayerTopLegend, lw, false,
			vtx(-legendX, bodyBottomY, 0),
			vtx(legendX, bodyBottomY, 0),
		)
	}

	inner = v.TopDiameter/2 + lw/2
	outer = v.BotDiameter/2 + lw/2
	silkscreenX := v.LeadSpacing/2 + padLegendClearance
	silkscreenY := math.Max(bodyBottomY, padLegendClearance)
	bodyMiddleY += lw

	var legend []entity.Vertex
	switch {
	case !split:
		legend = append(legend, vtx(-inner, bodyBottomY, 0))
	case silkscreenX < inner:
		legend = append(legend, vtx(-silkscreenX, bodyBottomY, 0), vtx(-inner, bodyBottomY, 0))
	default:
		legend = append(legend, vtx(-inner, silkscreenY, 0))
	}
	legend = append(legend,
		vtx(-inner, bodyTopY, -180),
		vtx(inner, bodyTopY, 0),
		vtx(inner, bodyMiddleY, 0),
		vtx(outer, bodyMiddleY, 0),
	)
	switch {
	case !split:
		legend = append(legend, vtx(outer, bodyBottomY, 0), vtx(-inner, bodyBottomY, 0))
	case silkscreenX < outer:
		legend = append(legend, vtx(outer, bodyBottomY, 0), vtx(silkscreenX, bodyBottomY, 0))
	default:
		legend = append(legend, vtx(outer, silkscreenY, 0))
	}
	b.polygon(fpt, "polygon-legend"+suffix, entity.LayerTopLegend, lw, false, legend...)

	// Courtyard
	offset := courtyardOffset(v.BotDiameter)
	inner += offset
	outer += offset
	bodyMiddleY += offset
	bodyBottomY -= offset
	courtyardX := math.Min(v.LeadSpacing/2+padDrill/2+offset+0.2, inner)
	courtyardY := -padDrill/2 - offset - 0.2
	b.polygon(fpt, "polygon-courtyard"+suffix, entity.LayerTopCourtyard, 0, false,
		vtx(-inner, bodyBottomY, 0),
		vtx(-inner, bodyTopY, -180),
		vtx(inner, bodyTopY, 0),
		vtx(inner, bodyMiddleY, 0),
		vtx(outer, bodyMiddleY, 0),
		vtx(outer, bodyBottomY, 0),
		vtx(courtyardX, bodyBottomY, 0),
		vtx(courtyardX, courtyardY, 0),
		vtx(-courtyardX, courtyardY, 0),
		vtx(-courtyardX, bodyBottomY, 0),
		vtx(-inner, bodyBottomY, 0),
	)

	b.text(fpt, "text-name"+suffix, entity.LayerTopNames,
		entity.Align{H: entity.HAlignCenter, V: entity.VAlignTop}, -1.27, "{{NAME}}")
	b.text(fpt, "text-value"+suffix, entity.LayerTopValues,
		entity.Align{H: entity.HAlignCenter, V: entity.VAlignTop}, -3.0, "{{VALUE}}")
}

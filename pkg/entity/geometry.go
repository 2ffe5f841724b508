package entity

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// Position is a 2D point in millimeters.
type Position struct {
	X, Y float64
}

// Pos is a convenience function to create a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

func (p Position) Validate() error {
	return validation.Errors{
		"x": validation.Validate(p.X, finite),
		"y": validation.Validate(p.Y, finite),
	}.Filter()
}

func (p Position) Node() *sexpr.List {
	return sexpr.NewList("position", sexpr.Float(p.X), sexpr.Float(p.Y))
}

// Position3D offsets the 3D model of a footprint.
type Position3D struct {
	X, Y, Z float64
}

func (p Position3D) Validate() error { return validateXYZ(p.X, p.Y, p.Z) }

func (p Position3D) Node() *sexpr.List {
	return sexpr.NewList("3d_position", sexpr.Float(p.X), sexpr.Float(p.Y), sexpr.Float(p.Z))
}

// Rotation3D rotates the 3D model of a footprint, in degrees per axis.
type Rotation3D struct {
	X, Y, Z float64
}

func (r Rotation3D) Validate() error { return validateXYZ(r.X, r.Y, r.Z) }

func (r Rotation3D) Node() *sexpr.List {
	return sexpr.NewList("3d_rotation", sexpr.Float(r.X), sexpr.Float(r.Y), sexpr.Float(r.Z))
}

func validateXYZ(x, y, z float64) error {
	return validation.Errors{
		"x": validation.Validate(x, finite),
		"y": validation.Validate(y, finite),
		"z": validation.Validate(z, finite),
	}.Filter()
}

// Size is the width and height of a pad.
type Size struct {
	Width, Height float64
}

func (s Size) Validate() error {
	return validation.Errors{
		"width":  validateLength(s.Width),
		"height": validateLength(s.Height),
	}.Filter()
}

func (s Size) Node() *sexpr.List {
	return sexpr.NewList("size", sexpr.Float(s.Width), sexpr.Float(s.Height))
}

// Vertex is one corner of a polygon or hole path. Angle is the arc angle of
// the segment from this vertex to the next one; 0 is a straight line.
type Vertex struct {
	Position Position
	Angle    Angle
}

// Vtx is a convenience function to create a Vertex.
func Vtx(x, y, angle float64) Vertex {
	return Vertex{Position: Pos(x, y), Angle: Angle(angle)}
}

func (v Vertex) Validate() error {
	return validation.Errors{
		"position": v.Position.Validate(),
		"angle":    v.Angle.Validate(),
	}.Filter()
}

func (v Vertex) Node() *sexpr.List {
	return sexpr.NewList("vertex", v.Position.Node(), v.Angle.Node())
}

func validateVertices(vertices []Vertex) error {
	errs := validation.Errors{}
	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			errs[vertexKey(i)] = err
		}
	}
	return errs.Filter()
}

func vertexKey(i int) string {
	return "vertex " + strconv.Itoa(i)
}

// Polygon is a styled vertex path. The vertex order defines the contour and
// is preserved exactly. A closed polygon repeats its first vertex at the end.
type Polygon struct {
	id       ident.UUID
	layer    Layer
	width    Width
	fill     Fill
	grabArea GrabArea
	vertices []Vertex
}

// NewPolygon creates a polygon without vertices.
func NewPolygon(id ident.UUID, layer Layer, width Width, fill Fill, grabArea GrabArea) (*Polygon, error) {
	err := validation.Errors{
		"uuid":  validation.Validate(id, notNilUUID),
		"layer": layer.Validate(),
		"width": width.Validate(),
	}.Filter()
	if err != nil {
		return nil, invalid("polygon", err)
	}
	return &Polygon{id: id, layer: layer, width: width, fill: fill, grabArea: grabArea}, nil
}

// UUID returns the polygon identifier.
func (p *Polygon) UUID() ident.UUID { return p.id }

// AddVertex appends vertices to the contour.
func (p *Polygon) AddVertex(vertices ...Vertex) error {
	if err := validateVertices(vertices); err != nil {
		return invalid("polygon", err)
	}
	p.vertices = append(p.vertices, vertices...)
	return nil
}

// Validate reports a polygon without vertices.
func (p *Polygon) Validate() error {
	if len(p.vertices) == 0 {
		return invalid("polygon", errors.New("vertices: at least one vertex is required"))
	}
	return nil
}

// Vertices returns a copy of the contour.
func (p *Polygon) Vertices() []Vertex {
	return append([]Vertex(nil), p.vertices...)
}

func (p *Polygon) Node() *sexpr.List {
	l := sexpr.NewList("polygon", sexpr.Symbol(p.id.String()), p.layer.Node())
	l.AddLine(p.width.Node(), p.fill.Node(), p.grabArea.Node())
	for _, v := range p.vertices {
		l.Add(v.Node())
	}
	return l
}

// Circle is a styled circle.
type Circle struct {
	id       ident.UUID
	layer    Layer
	width    Width
	fill     Fill
	grabArea GrabArea
	diameter Diameter
	center   Position
}

// NewCircle creates a circle around center.
func NewCircle(id ident.UUID, layer Layer, width Width, fill Fill, grabArea GrabArea, diameter Diameter, center Position) (*Circle, error) {
	err := validation.Errors{
		"uuid":     validation.Validate(id, notNilUUID),
		"layer":    layer.Validate(),
		"width":    width.Validate(),
		"diameter": diameter.Validate(),
		"position": center.Validate(),
	}.Filter()
	if err == nil && diameter == 0 {
		err = errors.New("diameter: must be greater than 0")
	}
	if err != nil {
		return nil, invalid("circle", err)
	}
	return &Circle{
		id:       id,
		layer:    layer,
		width:    width,
		fill:     fill,
		grabArea: grabArea,
		diameter: diameter,
		center:   center,
	}, nil
}

// UUID returns the circle identifier.
func (c *Circle) UUID() ident.UUID { return c.id }

func (c *Circle) Node() *sexpr.List {
	l := sexpr.NewList("circle", sexpr.Symbol(c.id.String()), c.layer.Node())
	l.AddLine(c.width.Node(), c.fill.Node(), c.grabArea.Node(), c.diameter.Node(), c.center.Node())
	return l
}

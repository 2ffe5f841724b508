// Package connectors generates 1xN socket strip packages with 2.54 mm pitch.
package connectors

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/librepcb/partsgen/internal/generators"
	"github.com/librepcb/partsgen/pkg/entity"
	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
	"github.com/librepcb/partsgen/pkg/uuidcache"
)

// GeneratorName identifies this generator in element descriptions.
const GeneratorName = "librepcb-parts-generator (partsgen connectors)"

// Geometry of the socket strip family, in millimeters.
const (
	spacing   = 2.54
	width     = 2.54
	top       = 1.5
	padDrill  = 1.0
	padWidth  = 2.54
	padHeight = 1.27
	lineWidth = 0.25
)

// Options configures the generated family.
type Options struct {
	MinPads  int
	MaxPads  int
	Author   entity.Author
	Version  entity.Version
	Category ident.UUID
	Created  time.Time
}

// Generator builds socket strip packages.
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
	return &Generator{cache: cache, opts: opts, logger: logger.Named("connectors")}
}

// Name implements generators.Generator.
func (g *Generator) Name() string { return "connectors" }

// Generate builds one package per pin count in [MinPads, MaxPads].
func (g *Generator) Generate() ([]entity.Document, error) {
	if g.opts.MinPads < 1 || g.opts.MaxPads < g.opts.MinPads {
		return nil, fmt.Errorf("invalid pad range %d..%d", g.opts.MinPads, g.opts.MaxPads)
	}

	docs := make([]entity.Document, 0, g.opts.MaxPads-g.opts.MinPads+1)
	for n := g.opts.MinPads; n <= g.opts.MaxPads; n++ {
		pkg, err := g.Package(n)
		if err != nil {
			return nil, fmt.Errorf("error generating 1x%d: %w", n, err)
		}
		g.logger.Debug("generated package", "pads", n, "uuid", pkg.UUID())
		docs = append(docs, pkg)
	}
	return docs, nil
}

func (g *Generator) uuid(typ string, n int, identifier string) ident.UUID {
	return g.cache.Resolve(ident.Key(typ, "1x"+strconv.Itoa(n), identifier))
}

// Package builds the 1xn socket strip.
func (g *Generator) Package(n int) (*entity.Package, error) {
	pitch := sexpr.FormatFloat(spacing)
	meta := entity.Metadata{
		Name: entity.Name(fmt.Sprintf("Socket Strip %smm 1x%d", pitch, n)),
		Description: entity.Description(fmt.Sprintf(
			"A 1x%d socket strip with %smm pin spacing.\n\nGenerated with %s", n, pitch, GeneratorName)),
		Keywords: entity.Keywords(fmt.Sprintf("connector, socket strip, 1x%d", n)),
		Author:   g.opts.Author,
		Version:  g.opts.Version,
		Created:  entity.Created(g.opts.Created),
	}
	if !g.opts.Category.IsZero() {
		meta.Categories = []ident.UUID{g.opts.Category}
	}

	pkg, err := entity.NewPackage(g.uuid("pkg", n, ""), meta, entity.AssemblyTypeTHT)
	if err != nil {
		return nil, err
	}

	padIDs := make([]ident.UUID, n)
	for i := range padIDs {
		padIDs[i] = g.uuid("pad", n, strconv.Itoa(i))
		pad, err := entity.NewPackagePad(padIDs[i], entity.Name(strconv.Itoa(i+1)))
		if err != nil {
			return nil, err
		}
		pkg.AddPad(pad)
	}

	fpt, err := entity.NewFootprint(g.uuid("footprint", n, "default"), "default", "",
		entity.Position3D{}, entity.Rotation3D{})
	if err != nil {
		return nil, err
	}
	for i, id := range padIDs {
		pad, err := footprintPad(id, PadY(i+1, n))
		if err != nil {
			return nil, err
		}
		fpt.AddPad(pad)
	}

	height := generators.Round3(OutlineHeight(n))
	halfWidth := generators.Round3(width / 2)
	contour, err := entity.NewPolygon(g.uuid("polygon", n, "contour"), entity.LayerTopPlacement, lineWidth, false, true)
	if err != nil {
		return nil, err
	}
	err = contour.AddVertex(
		entity.Vtx(-halfWidth, height, 0),
		entity.Vtx(halfWidth, height, 0),
		entity.Vtx(halfWidth, -height, 0),
		entity.Vtx(-halfWidth, -height, 0),
		entity.Vtx(-halfWidth, height, 0),
	)
	if err != nil {
		return nil, err
	}
	if err := fpt.AddPolygon(contour); err != nil {
		return nil, err
	}

	// Pin 1 sits at the bottom; mark it once the strip is long enough for
	// its orientation to be ambiguous.
	if n > 2 {
		markY := generators.Round3(height - spacing/2 - top)
		mark, err := entity.NewPolygon(g.uuid("polygon", n, "pin1mark"), entity.LayerTopPlacement, lineWidth, false, true)
		if err != nil {
			return nil, err
		}
		if err := mark.AddVertex(entity.Vtx(-halfWidth, -markY, 0), entity.Vtx(halfWidth, -markY, 0)); err != nil {
			return nil, err
		}
		if err := fpt.AddPolygon(mark); err != nil {
			return nil, err
		}
	}

	pkg.AddFootprint(fpt)
	return pkg, nil
}

func footprintPad(id ident.UUID, y float64) (*entity.FootprintPad, error) {
	hole, err := entity.NewPadHole(id, padDrill, entity.Vtx(0, 0, 0))
	if err != nil {
		return nil, err
	}
	return entity.NewFootprintPad(entity.FootprintPadParams{
		ID:          id,
		Side:        entity.ComponentSideTop,
		Shape:       entity.PadShapeRoundedRect,
		Position:    entity.Pos(0, y),
		Size:        entity.Size{Width: padWidth, Height: padHeight},
		Radius:      1.0,
		StopMask:    entity.MaskAuto,
		SolderPaste: entity.MaskOff,
		Function:    entity.PadFunctionUnspecified,
		PackagePad:  id,
		Holes:       []*entity.PadHole{hole},
	})
}

// PadY returns the y coordinate of pad p (1 based) in a 1xn strip. The pads
// are centered around the origin.
func PadY(p, n int) float64 {
	mid := (n + 1) / 2
	offset := 0.0
	if n%2 == 0 {
		offset = spacing / 2
	}
	return generators.Round(float64(p)*spacing-float64(mid)*spacing-offset, 2)
}

// OutlineHeight returns half the height of the outline around n pads.
func OutlineHeight(n int) float64 {
	return float64(n-1)/2*spacing + top
}

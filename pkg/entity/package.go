package entity

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// Metadata is the descriptive header shared by packages and devices.
type Metadata struct {
	Name        Name
	Description Description
	Keywords    Keywords
	Author      Author
	Version     Version
	Created     Created
	Deprecated  Deprecated
	GeneratedBy GeneratedBy
	Categories  []ident.UUID
}

func (m Metadata) Validate() error {
	errs := validation.Errors{
		"name":    m.Name.Validate(),
		"version": m.Version.Validate(),
		"created": m.Created.Validate(),
	}
	for i, c := range m.Categories {
		if err := validation.Validate(c, notNilUUID); err != nil {
			errs["category "+strconv.Itoa(i)] = err
		}
	}
	return errs.Filter()
}

// add appends the metadata lines to an element list. Categories keep their
// given order.
func (m Metadata) add(l *sexpr.List) {
	l.Add(
		m.Name.Node(),
		m.Description.Node(),
		m.Keywords.Node(),
		m.Author.Node(),
		m.Version.Node(),
		m.Created.Node(),
		m.Deprecated.Node(),
		m.GeneratedBy.Node(),
	)
	for _, c := range m.Categories {
		l.Add(ref("category", c))
	}
}

// PackagePad is a logical pad of a package, referenced by footprint pads
// and device pad mappings.
type PackagePad struct {
	id   ident.UUID
	name Name
}

// NewPackagePad creates a package pad.
func NewPackagePad(id ident.UUID, name Name) (*PackagePad, error) {
	err := validation.Errors{
		"uuid": validation.Validate(id, notNilUUID),
		"name": name.Validate(),
	}.Filter()
	if err != nil {
		return nil, invalid("pad", err)
	}
	return &PackagePad{id: id, name: name}, nil
}

// UUID returns the pad identifier.
func (p *PackagePad) UUID() ident.UUID { return p.id }

// Name returns the pad name.
func (p *PackagePad) Name() Name { return p.name }

func (p *PackagePad) Node() *sexpr.List {
	return sexpr.NewList("pad", sexpr.Symbol(p.id.String()), p.name.Node())
}

// Package3DModel declares a 3D model of a package.
type Package3DModel struct {
	ID   ident.UUID
	Name Name
}

// NewPackage3DModel creates a 3D model declaration.
func NewPackage3DModel(id ident.UUID, name Name) (Package3DModel, error) {
	m := Package3DModel{ID: id, Name: name}
	if err := m.Validate(); err != nil {
		return Package3DModel{}, err
	}
	return m, nil
}

func (m Package3DModel) Validate() error {
	err := validation.Errors{
		"uuid": validation.Validate(m.ID, notNilUUID),
		"name": m.Name.Validate(),
	}.Filter()
	return invalid("3d_model", err)
}

// Compare orders models by UUID, then by name.
func (m Package3DModel) Compare(other Package3DModel) int {
	if c := m.ID.Compare(other.ID); c != 0 {
		return c
	}
	return strings.Compare(string(m.Name), string(other.Name))
}

func (m Package3DModel) Node() *sexpr.List {
	return sexpr.NewList("3d_model", sexpr.Symbol(m.ID.String()), m.Name.Node())
}

// Package is a LibrePCB package: the physical part with its pads and
// footprint variants.
type Package struct {
	id           ident.UUID
	meta         Metadata
	assemblyType AssemblyType

	pads       []*PackagePad
	models     []Package3DModel
	footprints []*Footprint
	approvals  []string
}

// NewPackage creates an empty package.
func NewPackage(id ident.UUID, meta Metadata, assemblyType AssemblyType) (*Package, error) {
	err := validation.Errors{
		"uuid":          validation.Validate(id, notNilUUID),
		"metadata":      meta.Validate(),
		"assembly_type": assemblyType.Validate(),
	}.Filter()
	if err != nil {
		return nil, invalid("librepcb_package", err)
	}
	meta.Categories = append([]ident.UUID(nil), meta.Categories...)
	return &Package{id: id, meta: meta, assemblyType: assemblyType}, nil
}

// UUID returns the package identifier.
func (p *Package) UUID() ident.UUID { return p.id }

// Kind reports that p is a package document.
func (p *Package) Kind() Kind { return KindPackage }

// Metadata returns the package header.
func (p *Package) Metadata() Metadata { return p.meta }

// AddPad appends a package pad. Pads are rendered in insertion order.
func (p *Package) AddPad(pad *PackagePad) { p.pads = append(p.pads, pad) }

// Add3DModel appends a 3D model. Models are rendered sorted.
func (p *Package) Add3DModel(model Package3DModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	p.models = append(p.models, model)
	return nil
}

// AddFootprint appends a footprint. Footprints are rendered in insertion
// order; the first one is the default variant.
func (p *Package) AddFootprint(footprint *Footprint) { p.footprints = append(p.footprints, footprint) }

// AddApproval appends a raw approval expression. Approvals are rendered
// sorted by their text.
func (p *Package) AddApproval(approval string) error {
	if err := validateApproval(approval); err != nil {
		return err
	}
	p.approvals = append(p.approvals, approval)
	return nil
}

// Pads returns the package pads in insertion order.
func (p *Package) Pads() []*PackagePad { return append([]*PackagePad(nil), p.pads...) }

// Footprints returns the footprints in insertion order.
func (p *Package) Footprints() []*Footprint { return append([]*Footprint(nil), p.footprints...) }

func (p *Package) Node() *sexpr.List {
	l := sexpr.NewList("librepcb_package", sexpr.Symbol(p.id.String()))
	p.meta.add(l)
	l.Add(p.assemblyType.Node())
	for _, pad := range p.pads {
		l.Add(pad.Node())
	}

	models := append([]Package3DModel(nil), p.models...)
	sort.SliceStable(models, func(i, j int) bool { return models[i].Compare(models[j]) < 0 })
	for _, m := range models {
		l.Add(m.Node())
	}
	for _, f := range p.footprints {
		l.Add(f.Node())
	}
	addApprovals(l, p.approvals)
	return l
}

func validateApproval(approval string) error {
	if strings.TrimSpace(approval) == "" {
		return invalid("approval", errors.New("cannot be blank"))
	}
	return nil
}

func addApprovals(l *sexpr.List, approvals []string) {
	sorted := append([]string(nil), approvals...)
	sort.Strings(sorted)
	for _, a := range sorted {
		l.Add(sexpr.Raw(a))
	}
}

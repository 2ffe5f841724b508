package entity

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// DevicePad maps a package pad to a component signal.
type DevicePad struct {
	Pad    ident.UUID
	Signal ident.UUID
}

// Compare orders mappings by pad, then by signal.
func (d DevicePad) Compare(other DevicePad) int {
	if c := d.Pad.Compare(other.Pad); c != 0 {
		return c
	}
	return d.Signal.Compare(other.Signal)
}

func (d DevicePad) Node() *sexpr.List {
	return sexpr.NewList("pad", sexpr.Symbol(d.Pad.String()), ref("signal", d.Signal))
}

// Device binds a component to a package.
type Device struct {
	id        ident.UUID
	meta      Metadata
	component ident.UUID
	pkg       ident.UUID

	pads      []DevicePad
	approvals []string
}

// NewDevice creates a device without pad mappings. The component and
// package references are not resolved.
func NewDevice(id ident.UUID, meta Metadata, component, pkg ident.UUID) (*Device, error) {
	err := validation.Errors{
		"uuid":      validation.Validate(id, notNilUUID),
		"metadata":  meta.Validate(),
		"component": validation.Validate(component, notNilUUID),
		"package":   validation.Validate(pkg, notNilUUID),
	}.Filter()
	if err != nil {
		return nil, invalid("librepcb_device", err)
	}
	meta.Categories = append([]ident.UUID(nil), meta.Categories...)
	return &Device{id: id, meta: meta, component: component, pkg: pkg}, nil
}

// UUID returns the device identifier.
func (d *Device) UUID() ident.UUID { return d.id }

// Kind reports that d is a device document.
func (d *Device) Kind() Kind { return KindDevice }

// Metadata returns the device header.
func (d *Device) Metadata() Metadata { return d.meta }

// AddPad maps a package pad to a signal.
func (d *Device) AddPad(pad DevicePad) error {
	err := validation.Errors{
		"pad":    validation.Validate(pad.Pad, notNilUUID),
		"signal": validation.Validate(pad.Signal, notNilUUID),
	}.Filter()
	if err != nil {
		return invalid("pad", err)
	}
	d.pads = append(d.pads, pad)
	return nil
}

// AddApproval appends a raw approval expression.
func (d *Device) AddApproval(approval string) error {
	if err := validateApproval(approval); err != nil {
		return err
	}
	d.approvals = append(d.approvals, approval)
	return nil
}

func (d *Device) Node() *sexpr.List {
	l := sexpr.NewList("librepcb_device", sexpr.Symbol(d.id.String()))
	d.meta.add(l)
	l.Add(ref("component", d.component), ref("package", d.pkg))

	pads := append([]DevicePad(nil), d.pads...)
	sort.SliceStable(pads, func(i, j int) bool { return pads[i].Compare(pads[j]) < 0 })
	for _, p := range pads {
		l.Add(p.Node())
	}
	addApprovals(l, d.approvals)
	return l
}

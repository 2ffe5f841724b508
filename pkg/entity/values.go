package entity

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/semver/v3"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// createdLayout is the timestamp format of the created field (UTC, seconds).
const createdLayout = "2006-01-02T15:04:05Z"

var finite = validation.By(func(value interface{}) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number, got %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return nil
})

var notNilUUID = validation.By(func(value interface{}) error {
	if id, ok := value.(ident.UUID); ok && id.IsZero() {
		return errors.New("must not be the nil UUID")
	}
	return nil
})

func validateLength(v float64) error {
	return validation.Validate(v, finite, validation.Min(0.0))
}

func scalar(tag string, v sexpr.Node) *sexpr.List {
	return sexpr.NewList(tag, v)
}

func ref(tag string, id ident.UUID) *sexpr.List {
	return sexpr.NewList(tag, sexpr.Symbol(id.String()))
}

// Text values.

// Name is the display name of an element, pad or footprint.
type Name string

func (n Name) Validate() error {
	return validation.Validate(string(n), validation.Required)
}

func (n Name) Node() *sexpr.List { return scalar("name", sexpr.String(n)) }

// Description is free text; it may span several lines.
type Description string

func (d Description) Node() *sexpr.List { return scalar("description", sexpr.String(d)) }

// Keywords is a comma separated keyword list.
type Keywords string

func (k Keywords) Node() *sexpr.List { return scalar("keywords", sexpr.String(k)) }

// Author names the author of a library element.
type Author string

func (a Author) Node() *sexpr.List { return scalar("author", sexpr.String(a)) }

// GeneratedBy records the generator provenance of an element.
type GeneratedBy string

func (g GeneratedBy) Node() *sexpr.List { return scalar("generated_by", sexpr.String(g)) }

// Value is the content of a stroke text, e.g. "{{NAME}}".
type Value string

func (v Value) Node() *sexpr.List { return scalar("value", sexpr.String(v)) }

// Version is a library element version such as "0.1".
type Version string

// Validate accepts any version Masterminds/semver can coerce, so short forms
// like "0.1" are valid. The text is rendered as given.
func (v Version) Validate() error {
	return validation.Validate(string(v),
		validation.Required,
		validation.By(func(value interface{}) error {
			if _, err := semver.NewVersion(value.(string)); err != nil {
				return fmt.Errorf("must be a version number: %w", err)
			}
			return nil
		}),
	)
}

func (v Version) Node() *sexpr.List { return scalar("version", sexpr.String(v)) }

// Created is the creation timestamp of a library element.
type Created time.Time

func (c Created) Validate() error {
	if time.Time(c).IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}

func (c Created) Node() *sexpr.List {
	return scalar("created", sexpr.Symbol(time.Time(c).UTC().Format(createdLayout)))
}

// Flags.

// Deprecated marks a library element as deprecated.
type Deprecated bool

func (d Deprecated) Node() *sexpr.List { return scalar("deprecated", sexpr.Bool(d)) }

// Fill marks a closed shape as filled.
type Fill bool

func (f Fill) Node() *sexpr.List { return scalar("fill", sexpr.Bool(f)) }

// GrabArea makes a shape usable to grab the footprint in the editor.
type GrabArea bool

func (g GrabArea) Node() *sexpr.List { return scalar("grab_area", sexpr.Bool(g)) }

// AutoRotate keeps a text readable when the footprint is rotated.
type AutoRotate bool

func (a AutoRotate) Node() *sexpr.List { return scalar("auto_rotate", sexpr.Bool(a)) }

// Mirror mirrors a text.
type Mirror bool

func (m Mirror) Node() *sexpr.List { return scalar("mirror", sexpr.Bool(m)) }

// Numbers. All of them must be finite; lengths must not be negative.

// Width is a stroke width in millimeters. Zero means fill only, no stroke.
type Width float64

func (w Width) Validate() error { return validateLength(float64(w)) }
func (w Width) Node() *sexpr.List { return scalar("width", sexpr.Float(w)) }

// StrokeWidth is the stroke width of a text.
type StrokeWidth float64

func (w StrokeWidth) Validate() error { return validateLength(float64(w)) }
func (w StrokeWidth) Node() *sexpr.List { return scalar("stroke_width", sexpr.Float(w)) }

// Height is a text height.
type Height float64

func (h Height) Validate() error {
	return validation.Validate(float64(h), finite, validation.Required, validation.Min(0.0).Exclusive())
}

func (h Height) Node() *sexpr.List { return scalar("height", sexpr.Float(h)) }

// Diameter is a circle diameter.
type Diameter float64

func (d Diameter) Validate() error { return validateLength(float64(d)) }
func (d Diameter) Node() *sexpr.List { return scalar("diameter", sexpr.Float(d)) }

// DrillDiameter is the diameter of a pad hole.
type DrillDiameter float64

func (d DrillDiameter) Validate() error {
	return validation.Validate(float64(d), finite, validation.Required, validation.Min(0.0).Exclusive())
}

func (d DrillDiameter) Node() *sexpr.List { return scalar("diameter", sexpr.Float(d)) }

// Clearance is the copper clearance of a pad. Zero selects the default.
type Clearance float64

func (c Clearance) Validate() error { return validateLength(float64(c)) }
func (c Clearance) Node() *sexpr.List { return scalar("clearance", sexpr.Float(c)) }

// ShapeRadius is the corner radius of a pad, normalized to [0, 1].
type ShapeRadius float64

func (r ShapeRadius) Validate() error {
	return validation.Validate(float64(r), finite, validation.Min(0.0), validation.Max(1.0))
}

func (r ShapeRadius) Node() *sexpr.List { return scalar("radius", sexpr.Float(r)) }

// Angle is the arc angle of a vertex segment in degrees.
type Angle float64

func (a Angle) Validate() error { return validation.Validate(float64(a), finite) }
func (a Angle) Node() *sexpr.List { return scalar("angle", sexpr.Float(a)) }

// Rotation is a rotation in degrees.
type Rotation float64

func (r Rotation) Validate() error { return validation.Validate(float64(r), finite) }
func (r Rotation) Node() *sexpr.List { return scalar("rotation", sexpr.Float(r)) }

// Package generators holds what the part family generators share.
package generators

import (
	"math"

	"github.com/librepcb/partsgen/pkg/entity"
)

// Generator produces the library elements of one part family.
type Generator interface {
	// Name is the family name used in log output and command help.
	Name() string

	// Generate builds every element of the family. Identifiers are resolved
	// through the generator's identity cache.
	Generate() ([]entity.Document, error)
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Round3 rounds geometry to the precision used in generated documents.
func Round3(v float64) float64 {
	return Round(v, 3)
}

package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

var (
	polygonID = ident.MustParseUUID("5e18e4ea-0fa5-45bc-b3c0-1d8a1d4f6e2f")
	circleID  = ident.MustParseUUID("0f6a4b2c-6a7e-4a53-9f2b-7b1f4c86b0d1")
)

func TestPolygon(t *testing.T) {
	t.Run("renders vertices in insertion order", func(t *testing.T) {
		p, err := NewPolygon(polygonID, LayerTopPlacement, 0.25, false, false)
		require.NoError(t, err)
		require.NoError(t, p.AddVertex(Vtx(-1.27, 2.79, 0), Vtx(1.27, 2.79, 0)))
		require.NoError(t, p.AddVertex(Vtx(1.27, -2.79, 0), Vtx(-1.27, 2.79, 0)))

		want := "(polygon 5e18e4ea-0fa5-45bc-b3c0-1d8a1d4f6e2f (layer top_placement)\n" +
			" (width 0.25) (fill false) (grab_area false)\n" +
			" (vertex (position -1.27 2.79) (angle 0.0))\n" +
			" (vertex (position 1.27 2.79) (angle 0.0))\n" +
			" (vertex (position 1.27 -2.79) (angle 0.0))\n" +
			" (vertex (position -1.27 2.79) (angle 0.0))\n" +
			")"
		assert.Equal(t, want, sexpr.Render(p.Node()))
		assert.Len(t, p.Vertices(), 4)
	})

	t.Run("zero width is valid", func(t *testing.T) {
		_, err := NewPolygon(polygonID, LayerTopLegend, 0, true, true)
		assert.NoError(t, err)
	})

	t.Run("rejects invalid attributes", func(t *testing.T) {
		_, err := NewPolygon(polygonID, Layer("top_silkscreen"), 0.2, false, false)
		assert.True(t, errors.Is(err, ErrInvalidValue))

		_, err = NewPolygon(ident.UUID{}, LayerTopLegend, 0.2, false, false)
		assert.True(t, errors.Is(err, ErrInvalidValue))
	})

	t.Run("rejects non-finite vertices", func(t *testing.T) {
		p, err := NewPolygon(polygonID, LayerTopLegend, 0.2, false, false)
		require.NoError(t, err)

		err = p.AddVertex(Vtx(0, 0, 0), Vtx(math.NaN(), 0, 0))
		assert.True(t, errors.Is(err, ErrInvalidValue))
		assert.Empty(t, p.Vertices())
	})
}

func TestCircle(t *testing.T) {
	t.Run("renders on two lines", func(t *testing.T) {
		c, err := NewCircle(circleID, LayerTopLegend, 0.2, false, false, 3.2, Pos(0, -0.5))
		require.NoError(t, err)

		want := "(circle 0f6a4b2c-6a7e-4a53-9f2b-7b1f4c86b0d1 (layer top_legend)\n" +
			" (width 0.2) (fill false) (grab_area false) (diameter 3.2) (position 0.0 -0.5)\n" +
			")"
		assert.Equal(t, want, sexpr.Render(c.Node()))
	})

	t.Run("rejects zero diameter", func(t *testing.T) {
		_, err := NewCircle(circleID, LayerTopLegend, 0.2, false, false, 0, Pos(0, 0))
		assert.True(t, errors.Is(err, ErrInvalidValue))
	})

	t.Run("rejects infinite center", func(t *testing.T) {
		_, err := NewCircle(circleID, LayerTopLegend, 0.2, false, false, 1, Pos(math.Inf(-1), 0))
		assert.True(t, errors.Is(err, ErrInvalidValue))
	})
}

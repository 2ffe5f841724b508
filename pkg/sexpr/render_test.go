package sexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	// Summed at run time; a constant expression would fold to exactly 0.3.
	tenth, fifth := 0.1, 0.2

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "integral value keeps one decimal", input: 2.0, want: "2.0"},
		{name: "trailing zeros stripped", input: 2.50, want: "2.5"},
		{name: "two decimals", input: 2.54, want: "2.54"},
		{name: "negative", input: -1.27, want: "-1.27"},
		{name: "zero", input: 0, want: "0.0"},
		{name: "negative zero", input: math.Copysign(0, -1), want: "0.0"},
		{name: "small value without exponent", input: 0.0000001, want: "0.0000001"},
		{name: "large value without exponent", input: 1e21, want: "1000000000000000000000.0"},
		{name: "no re-rounding", input: tenth + fifth, want: "0.30000000000000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFloat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatFloat(tt.input), "rendering must be stable")
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "default", want: `"default"`},
		{name: "empty", input: "", want: `""`},
		{name: "quotes", input: `say "hi"`, want: `"say \"hi\""`},
		{name: "newline", input: "line1\n\nline2", want: `"line1\n\nline2"`},
		{name: "backslash", input: `a\b`, want: `"a\\b"`},
		{name: "unicode kept", input: "LED ⌀3.0", want: `"LED ⌀3.0"`},
		// "e" followed by a combining acute accent normalizes to a single rune.
		{name: "nfc normalized", input: "e\u0301", want: "\"\u00e9\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("scalar nodes", func(t *testing.T) {
		assert.Equal(t, "auto", Render(Symbol("auto")))
		assert.Equal(t, `"x"`, Render(String("x")))
		assert.Equal(t, "1.5", Render(Float(1.5)))
		assert.Equal(t, "false", Render(Bool(false)))
	})

	t.Run("single line list", func(t *testing.T) {
		l := NewList("position", Float(0), Float(-3.81))
		assert.Equal(t, "(position 0.0 -3.81)", Render(l))
	})

	t.Run("list in head", func(t *testing.T) {
		l := NewList("pad", Symbol("u1"), NewList("name", String("1")))
		assert.Equal(t, `(pad u1 (name "1"))`, l.String())
	})

	t.Run("body lines", func(t *testing.T) {
		l := NewList("polygon", Symbol("u1"), NewList("layer", Symbol("top_legend")))
		l.AddLine(NewList("width", Float(0.2)), NewList("fill", Bool(false)))
		l.Add(NewList("vertex", NewList("position", Float(1), Float(2)), NewList("angle", Float(0))))

		want := "(polygon u1 (layer top_legend)\n" +
			" (width 0.2) (fill false)\n" +
			" (vertex (position 1.0 2.0) (angle 0.0))\n" +
			")"
		assert.Equal(t, want, Render(l))
	})

	t.Run("nested blocks indent one space per level", func(t *testing.T) {
		hole := NewList("hole", Symbol("h"), NewList("diameter", Float(0.8)))
		hole.Add(NewList("vertex", NewList("position", Float(0), Float(0))))
		pad := NewList("pad", Symbol("p"))
		pad.Add(NewList("package_pad", Symbol("p")), hole)
		root := NewList("footprint", Symbol("f"))
		root.Add(pad)

		want := "(footprint f\n" +
			" (pad p\n" +
			"  (package_pad p)\n" +
			"  (hole h (diameter 0.8)\n" +
			"   (vertex (position 0.0 0.0))\n" +
			"  )\n" +
			" )\n" +
			")"
		assert.Equal(t, want, Render(root))
	})

	t.Run("raw text is re-indented", func(t *testing.T) {
		root := NewList("librepcb_package", Symbol("u"))
		root.Add(Raw("(approved a\n (footprint f)\n)"))

		want := "(librepcb_package u\n" +
			" (approved a\n" +
			"  (footprint f)\n" +
			" )\n" +
			")"
		assert.Equal(t, want, Render(root))
	})

	t.Run("document ends with newline", func(t *testing.T) {
		l := NewList("librepcb_package", Symbol("u"))
		assert.Equal(t, "(librepcb_package u)\n", string(Document(l)))
	})
}

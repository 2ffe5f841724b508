package sexpr

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const indentUnit = " "

// Render returns the textual form of n.
func Render(n Node) string {
	var b strings.Builder
	write(&b, n, 0)
	return b.String()
}

// Document renders a top-level list as file content, terminated by a newline.
func Document(l *List) []byte {
	return []byte(Render(l) + "\n")
}

// String implements fmt.Stringer.
func (l *List) String() string {
	return Render(l)
}

func write(b *strings.Builder, n Node, depth int) {
	switch v := n.(type) {
	case Symbol:
		b.WriteString(string(v))
	case String:
		b.WriteString(Quote(string(v)))
	case Float:
		b.WriteString(FormatFloat(float64(v)))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Raw:
		for i, line := range strings.Split(string(v), "\n") {
			if i > 0 {
				b.WriteByte('\n')
				b.WriteString(strings.Repeat(indentUnit, depth))
			}
			b.WriteString(line)
		}
	case Line:
		for i, item := range v {
			if i > 0 {
				b.WriteByte(' ')
			}
			write(b, item, depth)
		}
	case *List:
		writeList(b, v, depth)
	}
}

func writeList(b *strings.Builder, l *List, depth int) {
	b.WriteByte('(')
	b.WriteString(l.Tag)
	for _, h := range l.Head {
		b.WriteByte(' ')
		write(b, h, depth)
	}
	if len(l.Body) == 0 {
		b.WriteByte(')')
		return
	}
	b.WriteByte('\n')
	for _, item := range l.Body {
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		write(b, item, depth+1)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte(')')
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// Quote returns s as a quoted string literal. The text is NFC normalized and
// backslashes, quotes and newlines are escaped, so a field always stays on a
// single line.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(norm.NFC.String(s)) + `"`
}

// FormatFloat returns the shortest decimal representation of f that parses
// back to the same value, never in exponent form and always with at least one
// fractional digit. Negative zero is written as 0.0.
//
// FormatFloat does not round: callers round geometry to the precision they
// need before building values.
func FormatFloat(f float64) string {
	if f == 0 {
		return "0.0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

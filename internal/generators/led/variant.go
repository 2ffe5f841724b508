package led

import (
	"fmt"
	"strings"

	"github.com/librepcb/partsgen/pkg/sexpr"
)

// Variant describes one LED body. Dimensions are in millimeters.
type Variant struct {
	TopDiameter    float64
	BotDiameter    float64
	LeadSpacing    float64
	BodyHeight     float64
	Standoff       float64 // Distance between the bottom of the body and the board
	StandoffInName bool
	BodyColor      string
}

// PackageName returns the IPC style package name, e.g.
// "LED-THT-P254D500H870S500-CLEAR".
func (v Variant) PackageName() string {
	standoff := ""
	if v.StandoffInName {
		standoff = "S" + FormatIPCDimension(v.Standoff)
	}
	return fmt.Sprintf("LED-THT-P%sD%sH%s%s-%s",
		FormatIPCDimension(v.LeadSpacing),
		FormatIPCDimension(v.TopDiameter),
		FormatIPCDimension(v.BodyHeight),
		standoff,
		strings.ToUpper(v.BodyColor),
	)
}

// DeviceName returns the human readable device name, e.g.
// "LED ⌀5.0x8.7+5.0/2.54mm Clear".
func (v Variant) DeviceName() string {
	standoff := ""
	if v.StandoffInName {
		standoff = "+" + sexpr.FormatFloat(v.Standoff)
	}
	return fmt.Sprintf("LED ⌀%sx%s%s/%smm %s",
		sexpr.FormatFloat(v.TopDiameter),
		sexpr.FormatFloat(v.BodyHeight),
		standoff,
		sexpr.FormatFloat(v.LeadSpacing),
		v.BodyColor,
	)
}

// Description is shared by the package and the device of a variant.
func (v Variant) Description() string {
	return fmt.Sprintf("Generic through-hole LED with %.2f mm body diameter.\n\n"+
		"Body height: %.2f mm.\n"+
		"Lead spacing: %.2f mm.\n"+
		"Standoff: %.2f mm.\n"+
		"Body color: %s.\n\n"+
		"Generated with %s",
		v.TopDiameter, v.BodyHeight, v.LeadSpacing, v.Standoff, v.BodyColor, GeneratorName)
}

// small reports whether v gets a reduced legend and no large pad footprint.
func (v Variant) small() bool {
	return v.TopDiameter < 5
}

// FormatIPCDimension formats a dimension the way IPC-7351 names do: two
// decimals without the decimal point, and without a leading "0.".
func FormatIPCDimension(v float64) string {
	s := strings.TrimPrefix(fmt.Sprintf("%.2f", v), "0.")
	return strings.ReplaceAll(s, ".", "")
}

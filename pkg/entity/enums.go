package entity

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/librepcb/partsgen/pkg/sexpr"
)

func validateEnum[T ~string](v T, valid []T) error {
	allowed := make([]interface{}, len(valid))
	for i, t := range valid {
		allowed[i] = string(t)
	}
	return validation.Validate(string(v),
		validation.Required,
		validation.In(allowed...).Error(fmt.Sprintf("must be one of %v", valid)),
	)
}

func parseEnum[T ~string](field, token string, valid []T) (T, error) {
	v := T(token)
	if err := validateEnum(v, valid); err != nil {
		var zero T
		return zero, invalid(field, err)
	}
	return v, nil
}

// AssemblyType classifies how a package is mounted on the board.
type AssemblyType string

const (
	AssemblyTypeNone  AssemblyType = "none"
	AssemblyTypeTHT   AssemblyType = "tht"
	AssemblyTypeSMT   AssemblyType = "smt"
	AssemblyTypeMixed AssemblyType = "mixed"
	AssemblyTypeOther AssemblyType = "other"
	AssemblyTypeAuto  AssemblyType = "auto"
)

var assemblyTypes = []AssemblyType{
	AssemblyTypeNone, AssemblyTypeTHT, AssemblyTypeSMT,
	AssemblyTypeMixed, AssemblyTypeOther, AssemblyTypeAuto,
}

// ParseAssemblyType parses an assembly type token.
func ParseAssemblyType(s string) (AssemblyType, error) {
	return parseEnum("assembly_type", s, assemblyTypes)
}

func (a AssemblyType) Validate() error { return validateEnum(a, assemblyTypes) }
func (a AssemblyType) Node() *sexpr.List { return scalar("assembly_type", sexpr.Symbol(a)) }

// ComponentSide is the board side a pad is placed on.
type ComponentSide string

const (
	ComponentSideTop    ComponentSide = "top"
	ComponentSideBottom ComponentSide = "bottom"
)

var componentSides = []ComponentSide{ComponentSideTop, ComponentSideBottom}

// ParseComponentSide parses a component side token.
func ParseComponentSide(s string) (ComponentSide, error) {
	return parseEnum("side", s, componentSides)
}

func (c ComponentSide) Validate() error { return validateEnum(c, componentSides) }
func (c ComponentSide) Node() *sexpr.List { return scalar("side", sexpr.Symbol(c)) }

// PadShape is the copper shape of a footprint pad.
type PadShape string

const (
	PadShapeRoundedRect    PadShape = "roundrect"
	PadShapeRoundedOctagon PadShape = "octagon"
	PadShapeCustom         PadShape = "custom"
)

var padShapes = []PadShape{PadShapeRoundedRect, PadShapeRoundedOctagon, PadShapeCustom}

// ParsePadShape parses a pad shape token.
func ParsePadShape(s string) (PadShape, error) {
	return parseEnum("shape", s, padShapes)
}

func (p PadShape) Validate() error { return validateEnum(p, padShapes) }
func (p PadShape) Node() *sexpr.List { return scalar("shape", sexpr.Symbol(p)) }

// MaskConfig selects whether a stop mask or solder paste opening is generated.
type MaskConfig string

const (
	MaskAuto MaskConfig = "auto"
	MaskOff  MaskConfig = "off"
)

var maskConfigs = []MaskConfig{MaskAuto, MaskOff}

// ParseMaskConfig parses a stop mask or solder paste token.
func ParseMaskConfig(s string) (MaskConfig, error) {
	return parseEnum("mask", s, maskConfigs)
}

func (m MaskConfig) Validate() error { return validateEnum(m, maskConfigs) }

// StopMaskNode renders m as a stop mask setting.
func (m MaskConfig) StopMaskNode() *sexpr.List { return scalar("stop_mask", sexpr.Symbol(m)) }

// SolderPasteNode renders m as a solder paste setting.
func (m MaskConfig) SolderPasteNode() *sexpr.List { return scalar("solder_paste", sexpr.Symbol(m)) }

// PadFunction describes what a pad is used for.
type PadFunction string

const (
	PadFunctionUnspecified    PadFunction = "unspecified"
	PadFunctionStandard       PadFunction = "standard"
	PadFunctionPressFit       PadFunction = "pressfit"
	PadFunctionThermal        PadFunction = "thermal"
	PadFunctionBGA            PadFunction = "bga"
	PadFunctionEdgeConnector  PadFunction = "edge_connector"
	PadFunctionTest           PadFunction = "test"
	PadFunctionLocalFiducial  PadFunction = "local_fiducial"
	PadFunctionGlobalFiducial PadFunction = "global_fiducial"
)

var padFunctions = []PadFunction{
	PadFunctionUnspecified, PadFunctionStandard, PadFunctionPressFit,
	PadFunctionThermal, PadFunctionBGA, PadFunctionEdgeConnector,
	PadFunctionTest, PadFunctionLocalFiducial, PadFunctionGlobalFiducial,
}

// ParsePadFunction parses a pad function token.
func ParsePadFunction(s string) (PadFunction, error) {
	return parseEnum("function", s, padFunctions)
}

func (p PadFunction) Validate() error { return validateEnum(p, padFunctions) }
func (p PadFunction) Node() *sexpr.List { return scalar("function", sexpr.Symbol(p)) }

// Spacing is the letter or line spacing of a text. Only "auto" exists.
type Spacing string

const SpacingAuto Spacing = "auto"

var spacings = []Spacing{SpacingAuto}

// ParseSpacing parses a spacing token.
func ParseSpacing(s string) (Spacing, error) {
	return parseEnum("spacing", s, spacings)
}

func (s Spacing) Validate() error { return validateEnum(s, spacings) }

// LetterSpacingNode renders s as letter spacing.
func (s Spacing) LetterSpacingNode() *sexpr.List { return scalar("letter_spacing", sexpr.Symbol(s)) }

// LineSpacingNode renders s as line spacing.
func (s Spacing) LineSpacingNode() *sexpr.List { return scalar("line_spacing", sexpr.Symbol(s)) }

// Layer is a board layer.
type Layer string

const (
	LayerTopNames           Layer = "top_names"
	LayerTopValues          Layer = "top_values"
	LayerTopLegend          Layer = "top_legend"
	LayerTopDocumentation   Layer = "top_documentation"
	LayerTopCourtyard       Layer = "top_courtyard"
	LayerTopPlacement       Layer = "top_placement"
	LayerTopPackageOutlines Layer = "top_package_outlines"
	LayerTopHiddenGrabAreas Layer = "top_hidden_grab_areas"
	LayerTopStopMask        Layer = "top_stop_mask"
	LayerTopSolderPaste     Layer = "top_solder_paste"
	LayerTopGlue            Layer = "top_glue"
	LayerTopCopper          Layer = "top_cu"
	LayerBotNames           Layer = "bot_names"
	LayerBotValues          Layer = "bot_values"
	LayerBotLegend          Layer = "bot_legend"
	LayerBotDocumentation   Layer = "bot_documentation"
	LayerBotCourtyard       Layer = "bot_courtyard"
	LayerBotPlacement       Layer = "bot_placement"
	LayerBotPackageOutlines Layer = "bot_package_outlines"
	LayerBotHiddenGrabAreas Layer = "bot_hidden_grab_areas"
	LayerBotStopMask        Layer = "bot_stop_mask"
	LayerBotSolderPaste     Layer = "bot_solder_paste"
	LayerBotGlue            Layer = "bot_glue"
	LayerBotCopper          Layer = "bot_cu"
	LayerBoardOutlines      Layer = "brd_outlines"
	LayerBoardCutouts       Layer = "brd_cutouts"
	LayerBoardPlatedCutouts Layer = "brd_plated_cutouts"
	LayerBoardDocumentation Layer = "brd_documentation"
)

var layers = []Layer{
	LayerTopNames, LayerTopValues, LayerTopLegend, LayerTopDocumentation,
	LayerTopCourtyard, LayerTopPlacement, LayerTopPackageOutlines,
	LayerTopHiddenGrabAreas, LayerTopStopMask, LayerTopSolderPaste,
	LayerTopGlue, LayerTopCopper,
	LayerBotNames, LayerBotValues, LayerBotLegend, LayerBotDocumentation,
	LayerBotCourtyard, LayerBotPlacement, LayerBotPackageOutlines,
	LayerBotHiddenGrabAreas, LayerBotStopMask, LayerBotSolderPaste,
	LayerBotGlue, LayerBotCopper,
	LayerBoardOutlines, LayerBoardCutouts, LayerBoardPlatedCutouts,
	LayerBoardDocumentation,
}

// ParseLayer parses a layer name.
func ParseLayer(s string) (Layer, error) {
	return parseEnum("layer", s, layers)
}

func (l Layer) Validate() error { return validateEnum(l, layers) }
func (l Layer) Node() *sexpr.List { return scalar("layer", sexpr.Symbol(l)) }

// HAlign is the horizontal part of a text alignment.
type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

var hAligns = []HAlign{HAlignLeft, HAlignCenter, HAlignRight}

// VAlign is the vertical part of a text alignment.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

var vAligns = []VAlign{VAlignTop, VAlignCenter, VAlignBottom}

// Align is a text alignment, rendered as "(align center bottom)".
type Align struct {
	H HAlign
	V VAlign
}

// ParseAlign parses an alignment of the form "<horizontal> <vertical>".
func ParseAlign(s string) (Align, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Align{}, invalid("align", fmt.Errorf("expected \"<horizontal> <vertical>\", got %q", s))
	}
	a := Align{H: HAlign(parts[0]), V: VAlign(parts[1])}
	if err := a.Validate(); err != nil {
		return Align{}, invalid("align", err)
	}
	return a, nil
}

func (a Align) Validate() error {
	return validation.Errors{
		"h": validateEnum(a.H, hAligns),
		"v": validateEnum(a.V, vAligns),
	}.Filter()
}

func (a Align) Node() *sexpr.List {
	return sexpr.NewList("align", sexpr.Symbol(a.H), sexpr.Symbol(a.V))
}

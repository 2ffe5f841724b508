package entity

import (
	"github.com/librepcb/partsgen/pkg/ident"
	"github.com/librepcb/partsgen/pkg/sexpr"
)

// Kind is the type of a top-level library element.
type Kind string

const (
	KindPackage Kind = "pkg"
	KindDevice  Kind = "dev"
)

// FileName returns the name of the document file inside an element directory.
func (k Kind) FileName() string {
	switch k {
	case KindDevice:
		return "device.lp"
	default:
		return "package.lp"
	}
}

// MarkerName returns the name of the version marker file.
func (k Kind) MarkerName() string {
	return ".librepcb-" + string(k)
}

// Document is a top-level library element that can be serialized.
type Document interface {
	UUID() ident.UUID
	Kind() Kind
	Node() *sexpr.List
}

// Serialize renders doc into its canonical textual form. The output ends
// with a single newline and depends only on the document contents.
func Serialize(doc Document) []byte {
	return sexpr.Document(doc.Node())
}

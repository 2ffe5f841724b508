// Package ident provides the identifiers used by generated library elements.
//
// Every entity in a generated document (package, footprint, pad, polygon,
// text, ...) carries a UUID. Generators never mint those UUIDs directly:
// they derive a semantic Key from what the entity is and ask the identity
// cache for the UUID stored under that key, so regenerating the library
// keeps the identifiers of unchanged elements.
//
// # Core Concepts
//
//  1. UUID: a random (v4) 128-bit identifier rendered in canonical lowercase
//     hyphenated form.
//
//  2. Key: a deterministic string built from an entity category, a human
//     readable part name and a disambiguating suffix such as "pad-3" or
//     "footprint-default".
//
// # Usage Examples
//
//	key := ident.Key("pkg", "LED-THT-P254D300H450-CLEAR", "pad-a")
//	// "pkg-led-tht-p254d300h450-clear-pad-a"
//
//	id, err := ident.ParseUUID("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // canonical lowercase form
package ident

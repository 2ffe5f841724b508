// Package entity models the elements of a LibrePCB library document.
//
// The model has three layers:
//
//  1. Primitive values: typed scalars (names, widths, enum tokens, ...) that
//     know their tag and canonical rendering.
//
//  2. Geometry: positions, vertices, polygons and circles built from
//     primitive values.
//
//  3. Entities: packages, footprints, pads, texts and devices. Containers are
//     builders: children are appended with Add* during one construction pass,
//     then Node takes a snapshot for the serializer.
//
// Values are validated when an entity is constructed. An entity that exists
// is always serializable, so Serialize cannot fail.
//
// Unordered children (3D model references, approvals, device pads) are
// sorted by identifier before rendering, which makes the output independent
// of the order in which a generator added them.
package entity

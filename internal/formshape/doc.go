// Package formshape converts forms between the UI representation (pages of
// FormObjects with position-derived ids, free-form type tags and indexed
// choice lists) and the server representation (pages of Questions with
// canonical type and data type enumerations, an optional flag and plain
// string choices).
//
// Both directions are pure and never fail: unknown enumeration values
// degrade to documented defaults. The required/optional inversion lives in
// required.go and nowhere else.
package formshape

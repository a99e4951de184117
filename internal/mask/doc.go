// Package mask computes the effect of one input event on a constrained text
// field.
//
// Apply takes a Payload describing the field before the edit (value and
// selection), the raw input type and data, and the field constraints
// (accepted character class, format template, mask character, maximum
// length). It returns the new value, the new selection and the part of the
// input that was actually accepted. Apply never fails: disallowed characters
// are dropped, over-long input is truncated and out-of-range offsets are
// clamped.
//
// # Character classes
//
// ValidSymbols is the body of a bracket expression, for example "0-9" or
// "a-zA-Z". An empty body accepts everything. The complement of the class
// also delimits words for word deletes; without a class, whitespace does.
//
// # Formats
//
// A format is a template in which the mask character (default '*') marks an
// editable slot and every other character is a literal:
//
//	+7(***)***-**-**
//
// Literals equal to the mask character cannot be expressed. Characters of the
// format that belong to the accepted class are treated as slots when a value
// is rendered, so a literal "7" in a digits-only format is filled by the
// first digit of the raw value.
//
// All offsets are rune indices.
package mask

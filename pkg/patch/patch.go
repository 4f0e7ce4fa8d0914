// Package patch provides a three-state JSON field for partial updates:
// a field is either omitted, explicitly null, or set to a value. Plain
// pointers collapse the first two states, which breaks the distinction
// between "leave unchanged" and "clear" on nullable columns.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field wraps a value that may be omitted, null, or set in a JSON payload.
// The zero value means "omitted".
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set builds a field carrying a value.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null builds a field explicitly cleared by the caller.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the field appeared in the payload at all.
func (f Field[T]) Present() bool {
	return f.present
}

// Null reports whether the field was an explicit JSON null.
func (f Field[T]) Null() bool {
	return f.present && f.null
}

// Value returns the carried value; ok is false when the field was
// omitted or null.
func (f Field[T]) Value() (v T, ok bool) {
	if !f.present || f.null {
		return v, false
	}
	return f.value, true
}

// Ptr returns the carried value as a pointer, nil for an explicit null.
// Only meaningful when Present is true.
func (f Field[T]) Ptr() *T {
	if !f.present || f.null {
		return nil
	}
	v := f.value
	return &v
}

// UnmarshalJSON records presence before decoding, so an explicit null is
// distinguishable from an absent key.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders the carried value, or null when cleared/omitted.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

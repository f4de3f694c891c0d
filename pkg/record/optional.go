package record

import (
	"encoding/json"
	"fmt"
)

// Optional holds a value that may be absent.
// Absence is kept apart from the zero value, so an empty string attribute
// and a missing attribute are two different things.
// The absent Optional always carries the zero value of T, which makes Optional[T]
// comparable with == whenever T is.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an absent Optional for a nil pointer and a present one holding *p otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value if present and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil if absent.
func (o Optional[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.ok {
		return absent
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

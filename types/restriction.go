package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Restriction limits where a media object may be shown, <media:restriction>.
// Value is a space separated list of ISO 3166 country codes or URIs, depending on the type,
// or one of "all" and "none".
type Restriction struct {
	relationship record.Optional[Relationship]
	typ          record.Optional[RestrictionType]
	value        record.Optional[string]
}

// NewRestriction returns a restriction with the given attributes, stored as given.
func NewRestriction(relationship record.Optional[Relationship], typ record.Optional[RestrictionType], value record.Optional[string]) Restriction {
	return Restriction{
		relationship: relationship,
		typ:          typ,
		value:        value,
	}
}

func (r Restriction) Relationship() record.Optional[Relationship] {
	return r.relationship
}

func (r Restriction) Type() record.Optional[RestrictionType] {
	return r.typ
}

func (r Restriction) Value() record.Optional[string] {
	return r.value
}

func (r Restriction) Clone() Restriction {
	return NewRestriction(r.relationship, r.typ, r.value)
}

func (Restriction) Kind() string {
	return "Restriction"
}

func (r Restriction) Fields() []record.Field {
	return []record.Field{
		record.Named("relationship", r.relationship),
		record.Named("type", r.typ),
		record.String("value", r.value),
	}
}

func (r Restriction) Equal(other any) bool {
	return record.Matches(r, other)
}

func (r Restriction) Hash() uint64 {
	return record.Hash(r)
}

func (r Restriction) String() string {
	return record.Display(r)
}

func (r Restriction) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(r).MarshalLogObject(enc)
}

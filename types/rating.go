package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Rating schemes listed by Media RSS. SchemeSimple ("adult" or "nonadult") is the default.
const (
	SchemeSimple = "urn:simple"
	SchemeICRA   = "urn:icra"
	SchemeMPAA   = "urn:mpaa"
	SchemeVChip  = "urn:v-chip"
)

// Rating is the permissible audience of a media object, <media:rating>.
type Rating struct {
	scheme record.Optional[string]
	value  record.Optional[string]
}

// NewRating returns a rating. An absent scheme stays absent, readers take it as the simple scheme.
func NewRating(scheme, value record.Optional[string]) Rating {
	return Rating{
		scheme: scheme,
		value:  value,
	}
}

// RatingOf returns a rating in the simple scheme.
func RatingOf(value string) Rating {
	return NewRating(record.Some(SchemeSimple), record.Some(value))
}

func (r Rating) Scheme() record.Optional[string] {
	return r.scheme
}

func (r Rating) Value() record.Optional[string] {
	return r.value
}

func (r Rating) Clone() Rating {
	return NewRating(r.scheme, r.value)
}

func (Rating) Kind() string {
	return "Rating"
}

func (r Rating) Fields() []record.Field {
	return []record.Field{
		record.String("scheme", r.scheme),
		record.String("value", r.value),
	}
}

func (r Rating) Equal(other any) bool {
	return record.Matches(r, other)
}

func (r Rating) Hash() uint64 {
	return record.Hash(r)
}

func (r Rating) String() string {
	return record.Display(r)
}

func (r Rating) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(r).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// SchemeEBU is the default credit role scheme, the European Broadcasting Union Role Codes.
const SchemeEBU = "urn:ebu"

// Credit names an entity that contributed to a media object, <media:credit>.
type Credit struct {
	scheme record.Optional[string]
	role   record.Optional[string]
	name   record.Optional[string]
}

// NewCredit returns a credit with the given attributes, stored as given.
func NewCredit(scheme, role, name record.Optional[string]) Credit {
	return Credit{
		scheme: scheme,
		role:   role,
		name:   name,
	}
}

// CreditOf returns a credit for name in the given role, using the EBU role scheme.
func CreditOf(role, name string) Credit {
	return NewCredit(record.Some(SchemeEBU), record.Some(role), record.Some(name))
}

func (c Credit) Scheme() record.Optional[string] {
	return c.scheme
}

func (c Credit) Role() record.Optional[string] {
	return c.role
}

func (c Credit) Name() record.Optional[string] {
	return c.name
}

func (c Credit) Clone() Credit {
	return NewCredit(c.scheme, c.role, c.name)
}

func (Credit) Kind() string {
	return "Credit"
}

func (c Credit) Fields() []record.Field {
	return []record.Field{
		record.String("scheme", c.scheme),
		record.String("role", c.role),
		record.String("name", c.name),
	}
}

func (c Credit) Equal(other any) bool {
	return record.Matches(c, other)
}

func (c Credit) Hash() uint64 {
	return record.Hash(c)
}

func (c Credit) String() string {
	return record.Display(c)
}

func (c Credit) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(c).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// SchemeYahooCategory is the default category scheme.
const SchemeYahooCategory = "http://search.yahoo.com/mrss/category_schema"

// Category is a taxonomy entry of a media object, <media:category>.
// Value is the category itself, label a human readable form of it.
type Category struct {
	value  record.Optional[string]
	scheme record.Optional[string]
	label  record.Optional[string]
}

// NewCategory returns a category with the given attributes, stored as given.
func NewCategory(value, scheme, label record.Optional[string]) Category {
	return Category{
		value:  value,
		scheme: scheme,
		label:  label,
	}
}

// CategoryOf returns a category without scheme and label.
func CategoryOf(value string) Category {
	return NewCategory(record.Some(value), record.None[string](), record.None[string]())
}

func (c Category) Value() record.Optional[string] {
	return c.value
}

func (c Category) Scheme() record.Optional[string] {
	return c.scheme
}

func (c Category) Label() record.Optional[string] {
	return c.label
}

func (c Category) Clone() Category {
	return NewCategory(c.value, c.scheme, c.label)
}

func (Category) Kind() string {
	return "Category"
}

func (c Category) Fields() []record.Field {
	return []record.Field{
		record.String("value", c.value),
		record.String("scheme", c.scheme),
		record.String("label", c.label),
	}
}

func (c Category) Equal(other any) bool {
	return record.Matches(c, other)
}

func (c Category) Hash() uint64 {
	return record.Hash(c)
}

func (c Category) String() string {
	return record.Display(c)
}

func (c Category) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(c).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Text types used by Title, Description and Text.
const (
	TextPlain = "plain"
	TextHTML  = "html"
)

// Text is a timed transcript segment of a media object, <media:text>.
// Start and end delimit the part of the media object the text belongs to.
type Text struct {
	typ   record.Optional[string]
	value record.Optional[string]
	start record.Optional[Time]
	end   record.Optional[Time]
}

// NewText returns a transcript segment with the given attributes.
func NewText(typ, value record.Optional[string], start, end record.Optional[Time]) Text {
	return Text{
		typ:   typ,
		value: value,
		start: start,
		end:   end,
	}
}

// TextOf returns an untimed plain text.
func TextOf(value string) Text {
	return NewText(record.Some(TextPlain), record.Some(value), record.None[Time](), record.None[Time]())
}

func (t Text) Type() record.Optional[string] {
	return t.typ
}

func (t Text) Value() record.Optional[string] {
	return t.value
}

func (t Text) Start() record.Optional[Time] {
	return t.start
}

func (t Text) End() record.Optional[Time] {
	return t.end
}

func (t Text) Clone() Text {
	return NewText(t.typ, t.value, t.start, t.end)
}

func (Text) Kind() string {
	return "Text"
}

func (t Text) Fields() []record.Field {
	return []record.Field{
		record.String("type", t.typ),
		record.String("value", t.value),
		record.Named("start", t.start),
		record.Named("end", t.end),
	}
}

func (t Text) Equal(other any) bool {
	return record.Matches(t, other)
}

func (t Text) Hash() uint64 {
	return record.Hash(t)
}

func (t Text) String() string {
	return record.Display(t)
}

func (t Text) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(t).MarshalLogObject(enc)
}

// Title is the title of a media object, <media:title>.
type Title struct {
	typ   record.Optional[string]
	value record.Optional[string]
}

// NewTitle returns a title with the given type and value.
func NewTitle(typ, value record.Optional[string]) Title {
	return Title{typ: typ, value: value}
}

// TitleOf returns a plain text title.
func TitleOf(value string) Title {
	return NewTitle(record.Some(TextPlain), record.Some(value))
}

func (t Title) Type() record.Optional[string] {
	return t.typ
}

func (t Title) Value() record.Optional[string] {
	return t.value
}

func (t Title) Clone() Title {
	return NewTitle(t.typ, t.value)
}

func (Title) Kind() string {
	return "Title"
}

func (t Title) Fields() []record.Field {
	return []record.Field{
		record.String("type", t.typ),
		record.String("value", t.value),
	}
}

func (t Title) Equal(other any) bool {
	return record.Matches(t, other)
}

func (t Title) Hash() uint64 {
	return record.Hash(t)
}

func (t Title) String() string {
	return record.Display(t)
}

func (t Title) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(t).MarshalLogObject(enc)
}

// Description is a short description of a media object, <media:description>.
type Description struct {
	typ   record.Optional[string]
	value record.Optional[string]
}

// NewDescription returns a description with the given type and value.
func NewDescription(typ, value record.Optional[string]) Description {
	return Description{typ: typ, value: value}
}

// DescriptionOf returns a plain text description.
func DescriptionOf(value string) Description {
	return NewDescription(record.Some(TextPlain), record.Some(value))
}

func (d Description) Type() record.Optional[string] {
	return d.typ
}

func (d Description) Value() record.Optional[string] {
	return d.value
}

func (d Description) Clone() Description {
	return NewDescription(d.typ, d.value)
}

func (Description) Kind() string {
	return "Description"
}

func (d Description) Fields() []record.Field {
	return []record.Field{
		record.String("type", d.typ),
		record.String("value", d.value),
	}
}

func (d Description) Equal(other any) bool {
	return record.Matches(d, other)
}

func (d Description) Hash() uint64 {
	return record.Hash(d)
}

func (d Description) String() string {
	return record.Display(d)
}

func (d Description) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(d).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Copyright is the copyright notice of a media object, <media:copyright>.
// The url points to the full terms.
type Copyright struct {
	url   record.Optional[URI]
	value record.Optional[string]
}

// NewCopyright returns a copyright notice with the given attributes.
func NewCopyright(url record.Optional[URI], value record.Optional[string]) Copyright {
	return Copyright{url: url, value: value}
}

func (c Copyright) URL() record.Optional[URI] {
	return c.url
}

func (c Copyright) Value() record.Optional[string] {
	return c.value
}

func (c Copyright) Clone() Copyright {
	return NewCopyright(c.url, c.value)
}

func (Copyright) Kind() string {
	return "Copyright"
}

func (c Copyright) Fields() []record.Field {
	return []record.Field{
		record.String("url", c.url),
		record.String("value", c.value),
	}
}

func (c Copyright) Equal(other any) bool {
	return record.Matches(c, other)
}

func (c Copyright) Hash() uint64 {
	return record.Hash(c)
}

func (c Copyright) String() string {
	return record.Display(c)
}

func (c Copyright) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(c).MarshalLogObject(enc)
}

// License is a link to the license of a media object, <media:license>.
// Type is the MIME type of the license document, value its human readable name.
type License struct {
	typ   record.Optional[string]
	href  record.Optional[URI]
	value record.Optional[string]
}

// NewLicense returns a license link with the given attributes.
func NewLicense(typ record.Optional[string], href record.Optional[URI], value record.Optional[string]) License {
	return License{
		typ:   typ,
		href:  href,
		value: value,
	}
}

func (l License) Type() record.Optional[string] {
	return l.typ
}

func (l License) Href() record.Optional[URI] {
	return l.href
}

func (l License) Value() record.Optional[string] {
	return l.value
}

func (l License) Clone() License {
	return NewLicense(l.typ, l.href, l.value)
}

func (License) Kind() string {
	return "License"
}

func (l License) Fields() []record.Field {
	return []record.Field{
		record.String("type", l.typ),
		record.String("href", l.href),
		record.String("value", l.value),
	}
}

func (l License) Equal(other any) bool {
	return record.Matches(l, other)
}

func (l License) Hash() uint64 {
	return record.Hash(l)
}

func (l License) String() string {
	return record.Display(l)
}

func (l License) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(l).MarshalLogObject(enc)
}

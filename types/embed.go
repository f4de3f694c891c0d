package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Param is a name/value pair passed to an embedded player.
type Param struct {
	name  record.Optional[string]
	value record.Optional[string]
}

// NewParam returns a param with the given name and value.
func NewParam(name, value record.Optional[string]) Param {
	return Param{name: name, value: value}
}

// ParamOf returns a param with both name and value set.
func ParamOf(name, value string) Param {
	return NewParam(record.Some(name), record.Some(value))
}

func (p Param) Name() record.Optional[string] {
	return p.name
}

func (p Param) Value() record.Optional[string] {
	return p.value
}

func (p Param) Clone() Param {
	return NewParam(p.name, p.value)
}

func (Param) Kind() string {
	return "Param"
}

func (p Param) Fields() []record.Field {
	return []record.Field{
		record.String("name", p.name),
		record.String("value", p.value),
	}
}

func (p Param) Equal(other any) bool {
	return record.Matches(p, other)
}

func (p Param) Hash() uint64 {
	return record.Hash(p)
}

func (p Param) String() string {
	return record.Display(p)
}

func (p Param) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(p).MarshalLogObject(enc)
}

// Embed describes how to embed a player for a media object in a web page, <media:embed>.
type Embed struct {
	url    record.Optional[URI]
	width  record.Optional[int]
	height record.Optional[int]
	params []Param
}

// NewEmbed returns an embed with the given params, in order. The params are copied.
func NewEmbed(url record.Optional[URI], width, height record.Optional[int], params ...Param) Embed {
	return Embed{
		url:    url,
		width:  width,
		height: height,
		params: record.CloneAll(params),
	}
}

func (e Embed) URL() record.Optional[URI] {
	return e.url
}

func (e Embed) Width() record.Optional[int] {
	return e.width
}

func (e Embed) Height() record.Optional[int] {
	return e.height
}

// Params returns a copy of the player params.
func (e Embed) Params() []Param {
	return record.CloneAll(e.params)
}

// Clone returns a deep copy of e.
func (e Embed) Clone() Embed {
	return Embed{
		url:    e.url,
		width:  e.width,
		height: e.height,
		params: record.CloneAll(e.params),
	}
}

func (Embed) Kind() string {
	return "Embed"
}

func (e Embed) Fields() []record.Field {
	return []record.Field{
		record.String("url", e.url),
		record.Int("width", e.width),
		record.Int("height", e.height),
		record.List("params", e.params),
	}
}

func (e Embed) Equal(other any) bool {
	return record.Matches(e, other)
}

func (e Embed) Hash() uint64 {
	return record.Hash(e)
}

func (e Embed) String() string {
	return record.Display(e)
}

func (e Embed) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(e).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Reference is the location of a Content's media object.
// It's either a URLReference to the object itself or a PlayerReference to a web player for it.
type Reference interface {
	record.Record
	URL() record.Optional[URI]
	cloneReference() Reference
}

// URLReference is a direct link to a media object, the url attribute of <media:content>.
type URLReference struct {
	url record.Optional[URI]
}

// NewURLReference returns a direct reference to url.
func NewURLReference(url record.Optional[URI]) URLReference {
	return URLReference{url: url}
}

// URLReferenceOf returns a reference to url.
func URLReferenceOf(url URI) URLReference {
	return NewURLReference(record.Some(url))
}

func (r URLReference) URL() record.Optional[URI] {
	return r.url
}

func (r URLReference) Clone() URLReference {
	return NewURLReference(r.url)
}

func (r URLReference) cloneReference() Reference {
	return r.Clone()
}

func (URLReference) Kind() string {
	return "URLReference"
}

func (r URLReference) Fields() []record.Field {
	return []record.Field{
		record.String("url", r.url),
	}
}

func (r URLReference) Equal(other any) bool {
	return record.Matches(r, other)
}

func (r URLReference) Hash() uint64 {
	return record.Hash(r)
}

func (r URLReference) String() string {
	return record.Display(r)
}

func (r URLReference) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(r).MarshalLogObject(enc)
}

// PlayerReference links to a web player for a media object, <media:player>.
type PlayerReference struct {
	url    record.Optional[URI]
	width  record.Optional[int]
	height record.Optional[int]
}

// NewPlayerReference returns a reference to a player with the given window size.
func NewPlayerReference(url record.Optional[URI], width, height record.Optional[int]) PlayerReference {
	return PlayerReference{
		url:    url,
		width:  width,
		height: height,
	}
}

// PlayerReferenceOf returns a player reference to url without window size.
func PlayerReferenceOf(url URI) PlayerReference {
	return NewPlayerReference(record.Some(url), record.None[int](), record.None[int]())
}

func (r PlayerReference) URL() record.Optional[URI] {
	return r.url
}

func (r PlayerReference) Width() record.Optional[int] {
	return r.width
}

func (r PlayerReference) Height() record.Optional[int] {
	return r.height
}

func (r PlayerReference) Clone() PlayerReference {
	return NewPlayerReference(r.url, r.width, r.height)
}

func (r PlayerReference) cloneReference() Reference {
	return r.Clone()
}

func (PlayerReference) Kind() string {
	return "PlayerReference"
}

func (r PlayerReference) Fields() []record.Field {
	return []record.Field{
		record.String("url", r.url),
		record.Int("width", r.width),
		record.Int("height", r.height),
	}
}

func (r PlayerReference) Equal(other any) bool {
	return record.Matches(r, other)
}

func (r PlayerReference) Hash() uint64 {
	return record.Hash(r)
}

func (r PlayerReference) String() string {
	return record.Display(r)
}

func (r PlayerReference) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(r).MarshalLogObject(enc)
}

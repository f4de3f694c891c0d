package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// SubTitle links to a subtitle or closed caption resource of a media object, for example
//
//	<media:subTitle type="application/smil" lang="en-us" href="http://www.example.org/subtitle.smil"/>
//
// A media object can have several, usually one per language.
type SubTitle struct {
	typ  record.Optional[string]
	lang record.Optional[string]
	href record.Optional[URI]
}

// NewSubTitle returns a subtitle for href with the MIME type typ and the RFC 3066 language lang.
// Values are stored as given. Media RSS requires the type and a subtitle without href is useless,
// but neither is enforced here.
func NewSubTitle(href record.Optional[URI], typ, lang record.Optional[string]) SubTitle {
	return SubTitle{
		typ:  typ,
		lang: lang,
		href: href,
	}
}

// SubTitleOf returns a subtitle for href without type and language.
func SubTitleOf(href URI) SubTitle {
	return NewSubTitle(record.Some(href), record.None[string](), record.None[string]())
}

// Type returns the MIME type of the subtitle resource.
func (s SubTitle) Type() record.Optional[string] {
	return s.typ
}

// Lang returns the language of the subtitle. Absent means unspecified.
func (s SubTitle) Lang() record.Optional[string] {
	return s.lang
}

// URL returns the location of the subtitle resource.
func (s SubTitle) URL() record.Optional[URI] {
	return s.href
}

// LanguageTag parses Lang. It returns ErrAbsent if no language is set.
func (s SubTitle) LanguageTag() (language.Tag, error) {
	return languageTag(s.lang)
}

func (s SubTitle) Clone() SubTitle {
	return NewSubTitle(s.href, s.typ, s.lang)
}

func (SubTitle) Kind() string {
	return "SubTitle"
}

func (s SubTitle) Fields() []record.Field {
	return []record.Field{
		record.String("type", s.typ),
		record.String("lang", s.lang),
		record.String("href", s.href),
	}
}

func (s SubTitle) Equal(other any) bool {
	return record.Matches(s, other)
}

func (s SubTitle) Hash() uint64 {
	return record.Hash(s)
}

func (s SubTitle) String() string {
	return record.Display(s)
}

func (s SubTitle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(s).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Scene is a named section of a media object, <media:scene>.
type Scene struct {
	title       record.Optional[string]
	description record.Optional[string]
	start       record.Optional[Time]
	end         record.Optional[Time]
}

// NewScene returns a scene with the given attributes.
func NewScene(title, description record.Optional[string], start, end record.Optional[Time]) Scene {
	return Scene{
		title:       title,
		description: description,
		start:       start,
		end:         end,
	}
}

func (s Scene) Title() record.Optional[string] {
	return s.title
}

func (s Scene) Description() record.Optional[string] {
	return s.description
}

func (s Scene) Start() record.Optional[Time] {
	return s.start
}

func (s Scene) End() record.Optional[Time] {
	return s.end
}

func (s Scene) Clone() Scene {
	return NewScene(s.title, s.description, s.start, s.end)
}

func (Scene) Kind() string {
	return "Scene"
}

func (s Scene) Fields() []record.Field {
	return []record.Field{
		record.String("title", s.title),
		record.String("description", s.description),
		record.Named("start", s.start),
		record.Named("end", s.end),
	}
}

func (s Scene) Equal(other any) bool {
	return record.Matches(s, other)
}

func (s Scene) Hash() uint64 {
	return record.Hash(s)
}

func (s Scene) String() string {
	return record.Display(s)
}

func (s Scene) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(s).MarshalLogObject(enc)
}

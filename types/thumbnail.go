package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Thumbnail is an image representing a media object, <media:thumbnail>.
// Width and height are in pixels. Time is the position in the media object the thumbnail was taken from.
type Thumbnail struct {
	url    record.Optional[URI]
	width  record.Optional[int]
	height record.Optional[int]
	time   record.Optional[Time]
}

// NewThumbnail returns a thumbnail with the given attributes, stored as given.
func NewThumbnail(url record.Optional[URI], width, height record.Optional[int], time record.Optional[Time]) Thumbnail {
	return Thumbnail{
		url:    url,
		width:  width,
		height: height,
		time:   time,
	}
}

// ThumbnailOf returns a thumbnail for url without size and time.
func ThumbnailOf(url URI) Thumbnail {
	return NewThumbnail(record.Some(url), record.None[int](), record.None[int](), record.None[Time]())
}

func (t Thumbnail) URL() record.Optional[URI] {
	return t.url
}

func (t Thumbnail) Width() record.Optional[int] {
	return t.width
}

func (t Thumbnail) Height() record.Optional[int] {
	return t.height
}

func (t Thumbnail) Time() record.Optional[Time] {
	return t.time
}

func (t Thumbnail) Clone() Thumbnail {
	return NewThumbnail(t.url, t.width, t.height, t.time)
}

func (Thumbnail) Kind() string {
	return "Thumbnail"
}

func (t Thumbnail) Fields() []record.Field {
	return []record.Field{
		record.String("url", t.url),
		record.Int("width", t.width),
		record.Int("height", t.height),
		record.Named("time", t.time),
	}
}

func (t Thumbnail) Equal(other any) bool {
	return record.Matches(t, other)
}

func (t Thumbnail) Hash() uint64 {
	return record.Hash(t)
}

func (t Thumbnail) String() string {
	return record.Display(t)
}

func (t Thumbnail) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(t).MarshalLogObject(enc)
}

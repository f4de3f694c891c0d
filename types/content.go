package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// Content is a single media object, <media:content>.
// Bitrate is in kilobits per second, sampling rate in kHz, duration in seconds and file size in bytes.
type Content struct {
	reference    record.Optional[Reference]
	typ          record.Optional[string]
	medium       record.Optional[Medium]
	isDefault    record.Optional[bool]
	expression   record.Optional[Expression]
	bitrate      record.Optional[float64]
	framerate    record.Optional[float64]
	samplingRate record.Optional[float64]
	channels     record.Optional[int]
	duration     record.Optional[int64]
	fileSize     record.Optional[int64]
	height       record.Optional[int]
	width        record.Optional[int]
	language     record.Optional[string]
	metadata     record.Optional[Metadata]
	player       record.Optional[PlayerReference]
}

// ContentOpt sets an attribute of a Content while it's built.
type ContentOpt func(*Content)

// NewContent returns a media object located by ref. A nil ref leaves the reference absent.
func NewContent(ref Reference, opts ...ContentOpt) Content {
	var c Content
	if ref != nil {
		c.reference = record.Some(cloneReference(ref))
	}
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

// WithType sets the MIME type of the media object.
func WithType(typ string) ContentOpt {
	return func(c *Content) { c.typ = record.Some(typ) }
}

// WithMedium sets the type of object, which is simpler to use than the MIME type.
func WithMedium(m Medium) ContentOpt {
	return func(c *Content) { c.medium = record.Some(m) }
}

// WithDefault marks the content as the default one of its group.
func WithDefault(isDefault bool) ContentOpt {
	return func(c *Content) { c.isDefault = record.Some(isDefault) }
}

// WithExpression sets whether the content is a sample, the full object or a stream.
func WithExpression(e Expression) ContentOpt {
	return func(c *Content) { c.expression = record.Some(e) }
}

// WithBitrate sets the bitrate in kilobits per second.
func WithBitrate(kbps float64) ContentOpt {
	return func(c *Content) { c.bitrate = record.Some(kbps) }
}

// WithFramerate sets the number of frames per second.
func WithFramerate(fps float64) ContentOpt {
	return func(c *Content) { c.framerate = record.Some(fps) }
}

// WithSamplingRate sets the audio sampling rate in kHz.
func WithSamplingRate(khz float64) ContentOpt {
	return func(c *Content) { c.samplingRate = record.Some(khz) }
}

// WithChannels sets the number of audio channels.
func WithChannels(channels int) ContentOpt {
	return func(c *Content) { c.channels = record.Some(channels) }
}

// WithDuration sets the playing time in seconds.
func WithDuration(seconds int64) ContentOpt {
	return func(c *Content) { c.duration = record.Some(seconds) }
}

// WithFileSize sets the size of the media object in bytes.
func WithFileSize(bytes int64) ContentOpt {
	return func(c *Content) { c.fileSize = record.Some(bytes) }
}

// WithSize sets width and height in pixels.
func WithSize(width, height int) ContentOpt {
	return func(c *Content) {
		c.width = record.Some(width)
		c.height = record.Some(height)
	}
}

// WithLanguage sets the primary language of the media object, an RFC 3066 code.
func WithLanguage(lang string) ContentOpt {
	return func(c *Content) { c.language = record.Some(lang) }
}

// WithContentMetadata sets the metadata of the content. It is copied.
func WithContentMetadata(m Metadata) ContentOpt {
	return func(c *Content) { c.metadata = record.Some(m.Clone()) }
}

// WithPlayer sets the player of the entry.
func WithPlayer(p PlayerReference) ContentOpt {
	return func(c *Content) { c.player = record.Some(p) }
}

func (c Content) Reference() record.Optional[Reference] {
	return c.reference
}

func (c Content) Type() record.Optional[string] {
	return c.typ
}

func (c Content) Medium() record.Optional[Medium] {
	return c.medium
}

func (c Content) IsDefault() record.Optional[bool] {
	return c.isDefault
}

func (c Content) Expression() record.Optional[Expression] {
	return c.expression
}

func (c Content) Bitrate() record.Optional[float64] {
	return c.bitrate
}

func (c Content) Framerate() record.Optional[float64] {
	return c.framerate
}

func (c Content) SamplingRate() record.Optional[float64] {
	return c.samplingRate
}

func (c Content) Channels() record.Optional[int] {
	return c.channels
}

func (c Content) Duration() record.Optional[int64] {
	return c.duration
}

func (c Content) FileSize() record.Optional[int64] {
	return c.fileSize
}

func (c Content) Height() record.Optional[int] {
	return c.height
}

func (c Content) Width() record.Optional[int] {
	return c.width
}

func (c Content) Language() record.Optional[string] {
	return c.language
}

// LanguageTag parses Language. It returns ErrAbsent if no language is set.
func (c Content) LanguageTag() (language.Tag, error) {
	return languageTag(c.language)
}

func (c Content) Metadata() record.Optional[Metadata] {
	if m, ok := c.metadata.Get(); ok {
		return record.Some(m.Clone())
	}
	return c.metadata
}

func (c Content) Player() record.Optional[PlayerReference] {
	return c.player
}

// Clone returns a deep copy of c.
func (c Content) Clone() Content {
	clone := c
	if ref, ok := c.reference.Get(); ok {
		clone.reference = record.Some(cloneReference(ref))
	}
	clone.metadata = c.Metadata()
	return clone
}

func (Content) Kind() string {
	return "Content"
}

func (c Content) Fields() []record.Field {
	return []record.Field{
		record.Nested("reference", c.reference),
		record.String("type", c.typ),
		record.Named("medium", c.medium),
		record.Bool("isDefault", c.isDefault),
		record.Named("expression", c.expression),
		record.Float("bitrate", c.bitrate),
		record.Float("framerate", c.framerate),
		record.Float("samplingrate", c.samplingRate),
		record.Int("channels", c.channels),
		record.Int("duration", c.duration),
		record.Int("fileSize", c.fileSize),
		record.Int("height", c.height),
		record.Int("width", c.width),
		record.String("lang", c.language),
		record.Nested("metadata", c.metadata),
		record.Nested("player", c.player),
	}
}

func (c Content) Equal(other any) bool {
	return record.Matches(c, other)
}

func (c Content) Hash() uint64 {
	return record.Hash(c)
}

func (c Content) String() string {
	return record.Display(c)
}

func (c Content) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(c).MarshalLogObject(enc)
}

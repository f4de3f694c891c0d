package mediarss

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"github.com/xybydy/go-mediarss/types"
	"go.uber.org/zap/zapcore"
)

const (
	// Namespace is the XML namespace of Media RSS elements.
	Namespace = "http://search.yahoo.com/mrss/"
	// Prefix is the namespace prefix conventionally used for Media RSS elements.
	Prefix = "media"
)

// Module is the Media RSS extension of a whole feed.
type Module struct {
	metadata record.Optional[types.Metadata]
	player   record.Optional[types.PlayerReference]
}

// NewModule returns the feed level extension. The metadata is copied.
func NewModule(metadata record.Optional[types.Metadata], player record.Optional[types.PlayerReference]) Module {
	m := Module{player: player}
	if md, ok := metadata.Get(); ok {
		m.metadata = record.Some(md.Clone())
	}
	return m
}

func (m Module) Metadata() record.Optional[types.Metadata] {
	if md, ok := m.metadata.Get(); ok {
		return record.Some(md.Clone())
	}
	return m.metadata
}

func (m Module) Player() record.Optional[types.PlayerReference] {
	return m.player
}

func (m Module) Clone() Module {
	return NewModule(m.metadata, m.player)
}

func (Module) Kind() string {
	return "Module"
}

func (m Module) Fields() []record.Field {
	return []record.Field{
		record.Nested("metadata", m.metadata),
		record.Nested("player", m.player),
	}
}

func (m Module) Equal(other any) bool {
	return record.Matches(m, other)
}

func (m Module) Hash() uint64 {
	return record.Hash(m)
}

func (m Module) String() string {
	return record.Display(m)
}

func (m Module) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(m).MarshalLogObject(enc)
}

// EntryModule is the Media RSS extension of a single feed entry.
// An entry has loose contents, groups of alternative contents, or both.
type EntryModule struct {
	contents []types.Content
	groups   []types.Group
	metadata record.Optional[types.Metadata]
	player   record.Optional[types.PlayerReference]
}

// EntryOpt sets an attribute of an EntryModule while it's built.
type EntryOpt func(*EntryModule)

// NewEntryModule returns the entry level extension. Contents and groups are appended in order and copied.
func NewEntryModule(opts ...EntryOpt) EntryModule {
	var e EntryModule
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

// WithContents appends loose contents that aren't part of a group.
func WithContents(contents ...types.Content) EntryOpt {
	return func(e *EntryModule) {
		for _, c := range contents {
			e.contents = append(e.contents, c.Clone())
		}
	}
}

// WithGroups appends groups of alternative contents.
func WithGroups(groups ...types.Group) EntryOpt {
	return func(e *EntryModule) {
		for _, g := range groups {
			e.groups = append(e.groups, g.Clone())
		}
	}
}

// WithMetadata sets the metadata of the entry. It is copied.
func WithMetadata(m types.Metadata) EntryOpt {
	return func(e *EntryModule) { e.metadata = record.Some(m.Clone()) }
}

// WithPlayer sets the player of the entry.
func WithPlayer(p types.PlayerReference) EntryOpt {
	return func(e *EntryModule) { e.player = record.Some(p) }
}

// Contents returns a copy of the entry's loose contents.
func (e EntryModule) Contents() []types.Content {
	return record.CloneAll(e.contents)
}

// Groups returns a copy of the entry's groups.
func (e EntryModule) Groups() []types.Group {
	return record.CloneAll(e.groups)
}

func (e EntryModule) Metadata() record.Optional[types.Metadata] {
	if md, ok := e.metadata.Get(); ok {
		return record.Some(md.Clone())
	}
	return e.metadata
}

func (e EntryModule) Player() record.Optional[types.PlayerReference] {
	return e.player
}

// SubTitles returns every subtitle of the entry: those of the entry's metadata, then for each group
// its own and its contents', then the loose contents'. Equal subtitles are only returned once.
func (e EntryModule) SubTitles() []types.SubTitle {
	var all []types.SubTitle
	collect := func(m record.Optional[types.Metadata]) {
		if md, ok := m.Get(); ok {
			all = append(all, md.SubTitles()...)
		}
	}

	collect(e.metadata)
	for _, g := range e.groups {
		collect(g.Metadata())
		for _, c := range g.Contents() {
			collect(c.Metadata())
		}
	}
	for _, c := range e.contents {
		collect(c.Metadata())
	}
	return record.Dedupe(all)
}

// Clone returns a deep copy of e.
func (e EntryModule) Clone() EntryModule {
	return EntryModule{
		contents: record.CloneAll(e.contents),
		groups:   record.CloneAll(e.groups),
		metadata: e.Metadata(),
		player:   e.player,
	}
}

func (EntryModule) Kind() string {
	return "EntryModule"
}

func (e EntryModule) Fields() []record.Field {
	return []record.Field{
		record.List("contents", e.contents),
		record.List("groups", e.groups),
		record.Nested("metadata", e.metadata),
		record.Nested("player", e.player),
	}
}

func (e EntryModule) Equal(other any) bool {
	return record.Matches(e, other)
}

func (e EntryModule) Hash() uint64 {
	return record.Hash(e)
}

func (e EntryModule) String() string {
	return record.Display(e)
}

func (e EntryModule) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(e).MarshalLogObject(enc)
}

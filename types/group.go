package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Group bundles several Content elements that are different representations of the same object,
// like different bitrates or languages, <media:group>.
type Group struct {
	contents       []Content
	defaultContent record.Optional[int]
	metadata       record.Optional[Metadata]
}

// GroupOpt sets an attribute of a Group while it's built.
type GroupOpt func(*Group)

// NewGroup returns a group of the given contents, in order. The contents are copied.
func NewGroup(contents []Content, opts ...GroupOpt) Group {
	g := Group{contents: record.CloneAll(contents)}
	for _, fn := range opts {
		fn(&g)
	}
	return g
}

// WithDefaultContent sets the index of the default content within the group.
// The index isn't checked against the contents.
func WithDefaultContent(index int) GroupOpt {
	return func(g *Group) { g.defaultContent = record.Some(index) }
}

// WithGroupMetadata sets the metadata shared by all contents of the group. It is copied.
func WithGroupMetadata(m Metadata) GroupOpt {
	return func(g *Group) { g.metadata = record.Some(m.Clone()) }
}

// Contents returns a copy of the group's contents.
func (g Group) Contents() []Content {
	return record.CloneAll(g.contents)
}

func (g Group) DefaultContentIndex() record.Optional[int] {
	return g.defaultContent
}

// DefaultContent returns the content at the default index. Without a valid index,
// it returns the first content marked as default, if any.
func (g Group) DefaultContent() (Content, bool) {
	if i, ok := g.defaultContent.Get(); ok && i >= 0 && i < len(g.contents) {
		return g.contents[i].Clone(), true
	}
	for _, c := range g.contents {
		if c.isDefault.OrElse(false) {
			return c.Clone(), true
		}
	}
	return Content{}, false
}

func (g Group) Metadata() record.Optional[Metadata] {
	if m, ok := g.metadata.Get(); ok {
		return record.Some(m.Clone())
	}
	return g.metadata
}

// Clone returns a deep copy of g.
func (g Group) Clone() Group {
	return Group{
		contents:       record.CloneAll(g.contents),
		defaultContent: g.defaultContent,
		metadata:       g.Metadata(),
	}
}

func (Group) Kind() string {
	return "Group"
}

func (g Group) Fields() []record.Field {
	return []record.Field{
		record.List("contents", g.contents),
		record.Int("defaultContentIndex", g.defaultContent),
		record.Nested("metadata", g.metadata),
	}
}

func (g Group) Equal(other any) bool {
	return record.Matches(g, other)
}

func (g Group) Hash() uint64 {
	return record.Hash(g)
}

func (g Group) String() string {
	return record.Display(g)
}

func (g Group) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(g).MarshalLogObject(enc)
}

package types

import (
	"slices"

	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Metadata holds the optional elements Media RSS allows on a feed, an item, a <media:group> or a <media:content>.
// Elements deeper in the tree override those of their parents, but resolving that is left to the caller.
type Metadata struct {
	title        record.Optional[Title]
	description  record.Optional[Description]
	keywords     []string
	thumbnails   []Thumbnail
	categories   []Category
	credits      []Credit
	copyright    record.Optional[Copyright]
	checksum     record.Optional[Checksum]
	ratings      []Rating
	restrictions []Restriction
	texts        []Text
	subTitles    []SubTitle
	licenses     []License
	peerLinks    []PeerLink
	prices       []Price
	scenes       []Scene
	status       record.Optional[Status]
	embed        record.Optional[Embed]
	backLinks    []URI
	comments     []string
}

// MetadataOpt sets an attribute of a Metadata while it's built.
type MetadataOpt func(*Metadata)

// NewMetadata returns metadata with the given attributes. Options that take several values
// append to what earlier options set. All slices are copied.
func NewMetadata(opts ...MetadataOpt) Metadata {
	var m Metadata
	for _, fn := range opts {
		fn(&m)
	}
	return m
}

// WithTitle sets the title.
func WithTitle(t Title) MetadataOpt {
	return func(m *Metadata) { m.title = record.Some(t) }
}

// WithDescription sets the description.
func WithDescription(d Description) MetadataOpt {
	return func(m *Metadata) { m.description = record.Some(d) }
}

// WithKeywords appends keywords.
func WithKeywords(keywords ...string) MetadataOpt {
	return func(m *Metadata) { m.keywords = append(m.keywords, keywords...) }
}

// WithThumbnails appends thumbnails, the first one being the most important.
func WithThumbnails(thumbnails ...Thumbnail) MetadataOpt {
	return func(m *Metadata) { m.thumbnails = append(m.thumbnails, thumbnails...) }
}

// WithCategories appends categories.
func WithCategories(categories ...Category) MetadataOpt {
	return func(m *Metadata) { m.categories = append(m.categories, categories...) }
}

// WithCredits appends credits.
func WithCredits(credits ...Credit) MetadataOpt {
	return func(m *Metadata) { m.credits = append(m.credits, credits...) }
}

// WithCopyright sets the copyright notice.
func WithCopyright(c Copyright) MetadataOpt {
	return func(m *Metadata) { m.copyright = record.Some(c) }
}

// WithChecksum sets the checksum of the media object, <media:hash>.
func WithChecksum(c Checksum) MetadataOpt {
	return func(m *Metadata) { m.checksum = record.Some(c) }
}

// WithRatings appends ratings.
func WithRatings(ratings ...Rating) MetadataOpt {
	return func(m *Metadata) { m.ratings = append(m.ratings, ratings...) }
}

// WithRestrictions appends restrictions.
func WithRestrictions(restrictions ...Restriction) MetadataOpt {
	return func(m *Metadata) { m.restrictions = append(m.restrictions, restrictions...) }
}

// WithTexts appends transcript segments.
func WithTexts(texts ...Text) MetadataOpt {
	return func(m *Metadata) { m.texts = append(m.texts, texts...) }
}

// WithSubTitles appends subtitles.
func WithSubTitles(subTitles ...SubTitle) MetadataOpt {
	return func(m *Metadata) { m.subTitles = append(m.subTitles, subTitles...) }
}

// WithLicenses appends licenses.
func WithLicenses(licenses ...License) MetadataOpt {
	return func(m *Metadata) { m.licenses = append(m.licenses, licenses...) }
}

// WithPeerLinks appends P2P links.
func WithPeerLinks(peerLinks ...PeerLink) MetadataOpt {
	return func(m *Metadata) { m.peerLinks = append(m.peerLinks, peerLinks...) }
}

// WithPrices appends prices.
func WithPrices(prices ...Price) MetadataOpt {
	return func(m *Metadata) { m.prices = append(m.prices, prices...) }
}

// WithScenes appends scenes.
func WithScenes(scenes ...Scene) MetadataOpt {
	return func(m *Metadata) { m.scenes = append(m.scenes, scenes...) }
}

// WithStatus sets the status.
func WithStatus(s Status) MetadataOpt {
	return func(m *Metadata) { m.status = record.Some(s) }
}

// WithEmbed sets the embed information.
func WithEmbed(e Embed) MetadataOpt {
	return func(m *Metadata) { m.embed = record.Some(e.Clone()) }
}

// WithBackLinks appends links to pages where the media object is referenced.
func WithBackLinks(backLinks ...URI) MetadataOpt {
	return func(m *Metadata) { m.backLinks = append(m.backLinks, backLinks...) }
}

// WithComments appends user comments.
func WithComments(comments ...string) MetadataOpt {
	return func(m *Metadata) { m.comments = append(m.comments, comments...) }
}

func (m Metadata) Title() record.Optional[Title] {
	return m.title
}

func (m Metadata) Description() record.Optional[Description] {
	return m.description
}

func (m Metadata) Keywords() []string {
	return slices.Clone(m.keywords)
}

func (m Metadata) Thumbnails() []Thumbnail {
	return slices.Clone(m.thumbnails)
}

func (m Metadata) Categories() []Category {
	return slices.Clone(m.categories)
}

func (m Metadata) Credits() []Credit {
	return slices.Clone(m.credits)
}

func (m Metadata) Copyright() record.Optional[Copyright] {
	return m.copyright
}

func (m Metadata) Checksum() record.Optional[Checksum] {
	return m.checksum
}

func (m Metadata) Ratings() []Rating {
	return slices.Clone(m.ratings)
}

func (m Metadata) Restrictions() []Restriction {
	return slices.Clone(m.restrictions)
}

func (m Metadata) Texts() []Text {
	return slices.Clone(m.texts)
}

func (m Metadata) SubTitles() []SubTitle {
	return slices.Clone(m.subTitles)
}

func (m Metadata) Licenses() []License {
	return slices.Clone(m.licenses)
}

func (m Metadata) PeerLinks() []PeerLink {
	return slices.Clone(m.peerLinks)
}

func (m Metadata) Prices() []Price {
	return slices.Clone(m.prices)
}

func (m Metadata) Scenes() []Scene {
	return slices.Clone(m.scenes)
}

func (m Metadata) Status() record.Optional[Status] {
	return m.status
}

func (m Metadata) Embed() record.Optional[Embed] {
	if e, ok := m.embed.Get(); ok {
		return record.Some(e.Clone())
	}
	return m.embed
}

func (m Metadata) BackLinks() []URI {
	return slices.Clone(m.backLinks)
}

func (m Metadata) Comments() []string {
	return slices.Clone(m.comments)
}

// Clone returns a deep copy of m. Nil slices stay nil.
func (m Metadata) Clone() Metadata {
	return Metadata{
		title:        m.title,
		description:  m.description,
		keywords:     slices.Clone(m.keywords),
		thumbnails:   record.CloneAll(m.thumbnails),
		categories:   record.CloneAll(m.categories),
		credits:      record.CloneAll(m.credits),
		copyright:    m.copyright,
		checksum:     m.checksum,
		ratings:      record.CloneAll(m.ratings),
		restrictions: record.CloneAll(m.restrictions),
		texts:        record.CloneAll(m.texts),
		subTitles:    record.CloneAll(m.subTitles),
		licenses:     record.CloneAll(m.licenses),
		peerLinks:    record.CloneAll(m.peerLinks),
		prices:       record.CloneAll(m.prices),
		scenes:       record.CloneAll(m.scenes),
		status:       m.status,
		embed:        m.Embed(),
		backLinks:    slices.Clone(m.backLinks),
		comments:     slices.Clone(m.comments),
	}
}

func (Metadata) Kind() string {
	return "Metadata"
}

func (m Metadata) Fields() []record.Field {
	return []record.Field{
		record.Nested("title", m.title),
		record.Nested("description", m.description),
		record.Strings("keywords", m.keywords),
		record.List("thumbnails", m.thumbnails),
		record.List("categories", m.categories),
		record.List("credits", m.credits),
		record.Nested("copyright", m.copyright),
		record.Nested("hash", m.checksum),
		record.List("ratings", m.ratings),
		record.List("restrictions", m.restrictions),
		record.List("texts", m.texts),
		record.List("subTitles", m.subTitles),
		record.List("licenses", m.licenses),
		record.List("peerLinks", m.peerLinks),
		record.List("prices", m.prices),
		record.List("scenes", m.scenes),
		record.Nested("status", m.status),
		record.Nested("embed", m.embed),
		record.Strings("backLinks", m.backLinks),
		record.Strings("comments", m.comments),
	}
}

func (m Metadata) Equal(other any) bool {
	return record.Matches(m, other)
}

func (m Metadata) Hash() uint64 {
	return record.Hash(m)
}

func (m Metadata) String() string {
	return record.Display(m)
}

func (m Metadata) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(m).MarshalLogObject(enc)
}

package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/pkg/record"
	"github.com/xybydy/go-mediarss/types"
)

func TestMetadataEmpty(t *testing.T) {
	// Empty metadata must keep nil slices, not slices with 0 elements.
	m := types.NewMetadata()
	require.Equal(t, m, m.Clone())
	require.Nil(t, m.SubTitles())
	require.Nil(t, m.Keywords())
	require.False(t, m.Title().IsPresent())
}

func TestMetadataAccessorsCopy(t *testing.T) {
	m := fullMetadata()
	before := m.String()

	// Each scenario alters what an accessor returned. None of them may leak into m.
	tests := []struct {
		name string
		f    func(m types.Metadata)
	}{
		{"Keywords", func(m types.Metadata) { m.Keywords()[0] = "changed" }},
		{"SubTitles", func(m types.Metadata) { m.SubTitles()[0] = types.SubTitleOf("changed") }},
		{"Thumbnails", func(m types.Metadata) { m.Thumbnails()[0] = types.ThumbnailOf("changed") }},
		{"Categories", func(m types.Metadata) { m.Categories()[0] = types.CategoryOf("changed") }},
		{"Credits", func(m types.Metadata) { m.Credits()[0] = types.CreditOf("changed", "changed") }},
		{"BackLinks", func(m types.Metadata) { m.BackLinks()[0] = "changed" }},
		{"Comments", func(m types.Metadata) { m.Comments()[0] = "changed" }},
		{"Embed.Params", func(m types.Metadata) {
			e, _ := m.Embed().Get()
			e.Params()[0] = types.ParamOf("changed", "changed")
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.f(m)
			require.Equal(t, before, m.String())
		})
	}
}

func TestMetadataOptionsCopy(t *testing.T) {
	keywords := []string{"a", "b"}
	subTitles := []types.SubTitle{types.SubTitleOf(subtitleURL)}
	m := types.NewMetadata(types.WithKeywords(keywords...), types.WithSubTitles(subTitles...))

	keywords[0] = "changed"
	subTitles[0] = types.SubTitleOf("changed")
	require.Equal(t, []string{"a", "b"}, m.Keywords())
	require.Equal(t, []types.SubTitle{types.SubTitleOf(subtitleURL)}, m.SubTitles())
}

func TestMetadataOptionsAppend(t *testing.T) {
	m := types.NewMetadata(
		types.WithSubTitles(types.SubTitleOf("a")),
		types.WithSubTitles(types.SubTitleOf("b")),
	)
	require.Equal(t, []types.SubTitle{types.SubTitleOf("a"), types.SubTitleOf("b")}, m.SubTitles())
}

func TestEmbedParamsCopy(t *testing.T) {
	params := []types.Param{types.ParamOf("a", "1")}
	e := types.NewEmbed(record.None[types.URI](), record.None[int](), record.None[int](), params...)
	params[0] = types.ParamOf("changed", "changed")
	require.Equal(t, []types.Param{types.ParamOf("a", "1")}, e.Params())

	empty := types.NewEmbed(record.None[types.URI](), record.None[int](), record.None[int]())
	require.Nil(t, empty.Params())
	require.Equal(t, empty, empty.Clone())
}

func TestContent(t *testing.T) {
	c := fullContent()

	ref, ok := c.Reference().Get()
	require.True(t, ok)
	require.Equal(t, record.Some(types.URI("http://www.foo.com/movie.mov")), ref.URL())
	require.Equal(t, record.Some(types.MediumVideo), c.Medium())
	require.Equal(t, record.Some(true), c.IsDefault())
	require.Equal(t, record.Some(int64(185)), c.Duration())
	require.Equal(t, record.Some(400), c.Width())
	require.Equal(t, record.Some(200), c.Height())

	tag, err := c.LanguageTag()
	require.NoError(t, err)
	require.Equal(t, "en", tag.String())

	md, ok := c.Metadata().Get()
	require.True(t, ok)
	require.True(t, md.Equal(fullMetadata()))
}

func TestContentReferenceKinds(t *testing.T) {
	byURL := types.NewContent(types.URLReferenceOf("http://www.foo.com/movie.mov"))
	byPlayer := types.NewContent(types.PlayerReferenceOf("http://www.foo.com/movie.mov"))
	require.False(t, byURL.Equal(byPlayer))

	none := types.NewContent(nil)
	require.False(t, none.Reference().IsPresent())
	require.True(t, none.Equal(none.Clone()))
	require.Contains(t, none.String(), "reference: <absent>")
}

func TestContentDisplay(t *testing.T) {
	c := types.NewContent(types.URLReferenceOf("http://www.foo.com/song.mp3"),
		types.WithMedium(types.MediumAudio),
		types.WithExpression(types.ExpressionSample),
		types.WithBitrate(128.5),
	)
	s := c.String()
	require.Contains(t, s, `reference: URLReference{url: "http://www.foo.com/song.mp3"}`)
	require.Contains(t, s, "medium: audio")
	require.Contains(t, s, "expression: sample")
	require.Contains(t, s, "bitrate: 128.5")
	require.Contains(t, s, "isDefault: <absent>")
}

func TestGroup(t *testing.T) {
	high := types.NewContent(types.URLReferenceOf("http://www.foo.com/high.mov"), types.WithBitrate(1500))
	low := types.NewContent(types.URLReferenceOf("http://www.foo.com/low.mov"), types.WithBitrate(300), types.WithDefault(true))

	contents := []types.Content{high, low}
	g := types.NewGroup(contents)
	contents[0] = low
	require.Equal(t, []types.Content{high, low}, g.Contents())

	def, ok := g.DefaultContent()
	require.True(t, ok)
	require.True(t, def.Equal(low))

	g = types.NewGroup([]types.Content{high, low}, types.WithDefaultContent(0))
	def, ok = g.DefaultContent()
	require.True(t, ok)
	require.True(t, def.Equal(high))

	g = types.NewGroup([]types.Content{high}, types.WithDefaultContent(5))
	_, ok = g.DefaultContent()
	require.False(t, ok)
	require.Equal(t, record.Some(5), g.DefaultContentIndex())
}

func TestPriceZeroSign(t *testing.T) {
	free := types.NewPrice(some(types.PriceRent), record.None[types.URI](), some(0.0), some("EUR"))
	negFree := types.NewPrice(some(types.PriceRent), record.None[types.URI](), some(math.Copysign(0, -1)), some("EUR"))
	require.True(t, free.Equal(negFree))
	require.Equal(t, free.Hash(), negFree.Hash())
	require.Equal(t, free.String(), negFree.String())
}

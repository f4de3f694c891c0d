package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/pkg/record"
)

type point struct {
	x, y  record.Optional[int]
	label record.Optional[string]
}

func (point) Kind() string { return "point" }

func (p point) Fields() []record.Field {
	return []record.Field{
		record.Int("x", p.x),
		record.Int("y", p.y),
		record.String("label", p.label),
	}
}

// Same attributes as point, different kind.
type vector struct {
	x, y  record.Optional[int]
	label record.Optional[string]
}

func (vector) Kind() string { return "vector" }

func (v vector) Fields() []record.Field {
	return []record.Field{
		record.Int("x", v.x),
		record.Int("y", v.y),
		record.String("label", v.label),
	}
}

type shape struct {
	name   record.Optional[string]
	origin record.Optional[point]
	points []point
	tags   []string
	area   record.Optional[float64]
	filled record.Optional[bool]
}

func (shape) Kind() string { return "shape" }

func (s shape) Fields() []record.Field {
	return []record.Field{
		record.String("name", s.name),
		record.Nested("origin", s.origin),
		record.List("points", s.points),
		record.Strings("tags", s.tags),
		record.Float("area", s.area),
		record.Bool("filled", s.filled),
	}
}

func pt(x, y int, label string) point {
	return point{x: record.Some(x), y: record.Some(y), label: record.Some(label)}
}

func TestEqualFloats(t *testing.T) {
	area := func(f float64) shape { return shape{area: record.Some(f)} }

	zero, negZero := area(0), area(math.Copysign(0, -1))
	require.True(t, record.Equal(zero, negZero))
	require.Equal(t, record.Hash(zero), record.Hash(negZero))
	require.Equal(t, record.Display(zero), record.Display(negZero))

	nan := area(math.NaN())
	require.True(t, record.Equal(nan, area(math.NaN())))
	require.Equal(t, record.Hash(nan), record.Hash(area(math.NaN())))
	require.False(t, record.Equal(nan, zero))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    record.Record
		b    any
		want bool
	}{
		{"same values", pt(1, 2, "a"), pt(1, 2, "a"), true},
		{"both absent", point{}, point{}, true},
		{"different value", pt(1, 2, "a"), pt(1, 3, "a"), false},
		{"absent vs present", point{}, point{x: record.Some(0)}, false},
		{"empty string vs absent", point{label: record.Some("")}, point{}, false},
		{"different kind", pt(1, 2, "a"), vector{x: record.Some(1), y: record.Some(2), label: record.Some("a")}, false},
		{"nil", pt(1, 2, "a"), nil, false},
		{"not a record", pt(1, 2, "a"), "point{x: 1}", false},
		{"nil pointer", pt(1, 2, "a"), (*point)(nil), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, record.Equal(test.a, test.b))
		})
	}
}

func TestEqualNilRecord(t *testing.T) {
	require.False(t, record.Equal(nil, pt(1, 2, "a")))
	require.False(t, record.Equal(nil, nil))
}

func TestMatches(t *testing.T) {
	p := pt(1, 2, "a")
	require.True(t, record.Matches(p, pt(1, 2, "a")))
	require.False(t, record.Matches(p, &p))
	require.False(t, record.Matches(p, nil))
	require.False(t, record.Matches(p, pt(2, 2, "a")))
}

func TestEqualNested(t *testing.T) {
	a := shape{
		name:   record.Some("triangle"),
		origin: record.Some(pt(0, 0, "o")),
		points: []point{pt(0, 0, "a"), pt(1, 0, "b"), pt(0, 1, "c")},
		tags:   []string{"closed"},
		area:   record.Some(0.5),
		filled: record.Some(true),
	}
	b := a
	b.points = []point{pt(0, 0, "a"), pt(1, 0, "b"), pt(0, 1, "c")}
	b.tags = []string{"closed"}
	require.True(t, record.Equal(a, b))
	require.Equal(t, record.Hash(a), record.Hash(b))

	b.points = []point{pt(0, 0, "a"), pt(0, 1, "c"), pt(1, 0, "b")}
	require.False(t, record.Equal(a, b), "order of list elements matters")

	b = a
	b.origin = record.None[point]()
	require.False(t, record.Equal(a, b))

	b = a
	b.tags = []string{"open"}
	require.False(t, record.Equal(a, b))

	b = a
	b.filled = record.Some(false)
	require.False(t, record.Equal(a, b))
}

func TestEqualNilAndEmptyList(t *testing.T) {
	a := shape{points: nil, tags: nil}
	b := shape{points: []point{}, tags: []string{}}
	require.True(t, record.Equal(a, b))
	require.Equal(t, record.Hash(a), record.Hash(b))
}

func TestHash(t *testing.T) {
	require.Equal(t, record.Hash(pt(1, 2, "a")), record.Hash(pt(1, 2, "a")))
	require.Equal(t, record.Hash(point{}), record.Hash(point{}))
	require.NotEqual(t, record.Hash(pt(1, 2, "a")), record.Hash(pt(2, 1, "a")))
	require.NotEqual(t, record.Hash(point{}), record.Hash(vector{}))
	require.NotEqual(t, record.Hash(point{label: record.Some("")}), record.Hash(point{}))
	require.Zero(t, record.Hash(nil))

	// Length prefixes keep adjacent strings apart.
	a := shape{tags: []string{"ab", "c"}}
	b := shape{tags: []string{"a", "bc"}}
	require.NotEqual(t, record.Hash(a), record.Hash(b))
}

func TestHashUsableAsMapKey(t *testing.T) {
	seen := map[uint64]point{}
	for _, p := range []point{pt(1, 2, "a"), pt(1, 2, "a"), pt(3, 4, "b")} {
		seen[record.Hash(p)] = p
	}
	require.Len(t, seen, 2)
}

func TestDisplay(t *testing.T) {
	require.Equal(t, `point{x: 1, y: 2, label: "a"}`, record.Display(pt(1, 2, "a")))
	require.Equal(t, `point{x: <absent>, y: <absent>, label: <absent>}`, record.Display(point{}))
	require.Equal(t, "<absent>", record.Display(nil))

	s := shape{
		name:   record.Some("line"),
		points: []point{pt(0, 0, "a"), pt(1, 1, "b")},
		tags:   []string{"x"},
		area:   record.Some(0.25),
		filled: record.Some(false),
	}
	want := `shape{name: "line", origin: <absent>, points: [point{x: 0, y: 0, label: "a"}, point{x: 1, y: 1, label: "b"}], tags: ["x"], area: 0.25, filled: false}`
	require.Equal(t, want, record.Display(s))
	require.Equal(t, record.Display(s), record.Display(s))
}

func TestDedupe(t *testing.T) {
	in := []point{pt(1, 2, "a"), pt(3, 4, "b"), pt(1, 2, "a"), point{}, point{}}
	require.Equal(t, []point{pt(1, 2, "a"), pt(3, 4, "b"), {}}, record.Dedupe(in))
	require.Nil(t, record.Dedupe[point](nil))
	require.Empty(t, record.Dedupe([]point{}))
}

func BenchmarkHash(b *testing.B) {
	s := shape{
		name:   record.Some("triangle"),
		origin: record.Some(pt(0, 0, "o")),
		points: []point{pt(0, 0, "a"), pt(1, 0, "b"), pt(0, 1, "c")},
		tags:   []string{"closed"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		record.Hash(s)
	}
}

func BenchmarkEqual(b *testing.B) {
	p, q := pt(1, 2, "a"), pt(1, 2, "a")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		record.Equal(p, q)
	}
}

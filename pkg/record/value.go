package record

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"
)

// Naming is a comparable attribute type whose values each have a distinct name,
// like an enumeration or a time offset.
type Naming interface {
	comparable
	String() string
}

type scalarKind uint8

const (
	kindString scalarKind = iota + 1
	kindInt
	kindFloat
	kindBool
	kindNamed
)

// scalar is the canonical form of every single-valued attribute.
// It's comparable, so two scalars are equal iff == holds, except for floats
// which are compared by their bits.
type scalar struct {
	kind scalarKind
	ok   bool
	s    string
	i    int64
	f    float64
}

// String returns a field for a string-like attribute.
func String[S ~string](name string, v Optional[S]) Field {
	s, ok := v.Get()
	return Field{Name: name, Value: scalar{kind: kindString, ok: ok, s: string(s)}}
}

// Int returns a field for an integer attribute.
func Int[I ~int | ~int32 | ~int64](name string, v Optional[I]) Field {
	i, ok := v.Get()
	return Field{Name: name, Value: scalar{kind: kindInt, ok: ok, i: int64(i)}}
}

// Float returns a field for a floating point attribute.
// Floats are compared by their bits after folding -0 into 0, so NaN equals NaN and 0 equals -0.
func Float[F ~float32 | ~float64](name string, v Optional[F]) Field {
	f, ok := v.Get()
	x := float64(f)
	if x == 0 {
		x = 0
	}
	return Field{Name: name, Value: scalar{kind: kindFloat, ok: ok, f: x}}
}

// Bool returns a field for a boolean attribute.
func Bool(name string, v Optional[bool]) Field {
	b, ok := v.Get()
	var i int64
	if b {
		i = 1
	}
	return Field{Name: name, Value: scalar{kind: kindBool, ok: ok, i: i}}
}

// Named returns a field for an attribute that is compared and printed by its name.
func Named[E Naming](name string, v Optional[E]) Field {
	e, ok := v.Get()
	var s string
	if ok {
		s = e.String()
	}
	return Field{Name: name, Value: scalar{kind: kindNamed, ok: ok, s: s}}
}

func (v scalar) Equal(other Value) bool {
	o, ok := other.(scalar)
	if !ok || v.kind != o.kind || v.ok != o.ok {
		return false
	}
	if v.kind == kindFloat {
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	}
	return v == o
}

func (v scalar) Hash(d *xxhash.Digest) {
	_, _ = d.Write([]byte{byte(v.kind), presence(v.ok)})
	if !v.ok {
		return
	}
	switch v.kind {
	case kindString, kindNamed:
		writeString(d, v.s)
	case kindInt, kindBool:
		writeUint(d, uint64(v.i))
	case kindFloat:
		writeUint(d, math.Float64bits(v.f))
	}
}

func (v scalar) Format(b *strings.Builder) {
	if !v.ok {
		b.WriteString(absent)
		return
	}
	switch v.kind {
	case kindString:
		b.WriteString(strconv.Quote(v.s))
	case kindNamed:
		b.WriteString(v.s)
	case kindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case kindFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case kindBool:
		b.WriteString(strconv.FormatBool(v.i == 1))
	}
}

func (v scalar) MarshalLog(key string, enc zapcore.ObjectEncoder) error {
	if !v.ok {
		return nil
	}
	switch v.kind {
	case kindString, kindNamed:
		enc.AddString(key, v.s)
	case kindInt:
		enc.AddInt64(key, v.i)
	case kindFloat:
		enc.AddFloat64(key, v.f)
	case kindBool:
		enc.AddBool(key, v.i == 1)
	}
	return nil
}

// nested is an optional child record.
type nested struct {
	r Record
}

// Nested returns a field for an optional child record.
// A present Optional holding a nil interface counts as absent.
func Nested[R Record](name string, v Optional[R]) Field {
	r, ok := v.Get()
	if !ok || Record(r) == nil {
		return Field{Name: name, Value: nested{}}
	}
	return Field{Name: name, Value: nested{r: r}}
}

func (v nested) Equal(other Value) bool {
	o, ok := other.(nested)
	if !ok {
		return false
	}
	return same(v.r, o.r)
}

func (v nested) Hash(d *xxhash.Digest) {
	_, _ = d.Write([]byte{presence(v.r != nil)})
	if v.r != nil {
		writeRecord(d, v.r)
	}
}

func (v nested) Format(b *strings.Builder) {
	if v.r == nil {
		b.WriteString(absent)
		return
	}
	formatRecord(b, v.r)
}

func (v nested) MarshalLog(key string, enc zapcore.ObjectEncoder) error {
	if v.r == nil {
		return nil
	}
	return enc.AddObject(key, Marshaler(v.r))
}

// list is an ordered sequence of child records.
type list struct {
	items []Record
}

// List returns a field for an ordered collection of child records.
// A nil and an empty slice are equal.
func List[R Record](name string, rs []R) Field {
	items := make([]Record, len(rs))
	for i, r := range rs {
		items[i] = r
	}
	return Field{Name: name, Value: list{items: items}}
}

func (v list) Equal(other Value) bool {
	o, ok := other.(list)
	if !ok || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !same(v.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

func (v list) Hash(d *xxhash.Digest) {
	writeUint(d, uint64(len(v.items)))
	for _, r := range v.items {
		writeRecord(d, r)
	}
}

func (v list) Format(b *strings.Builder) {
	b.WriteByte('[')
	for i, r := range v.items {
		if i > 0 {
			b.WriteString(", ")
		}
		formatRecord(b, r)
	}
	b.WriteByte(']')
}

func (v list) MarshalLog(key string, enc zapcore.ObjectEncoder) error {
	if len(v.items) == 0 {
		return nil
	}
	return enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, r := range v.items {
			if err := ae.AppendObject(Marshaler(r)); err != nil {
				return err
			}
		}
		return nil
	}))
}

// strs is an ordered sequence of strings.
type strs struct {
	items []string
}

// Strings returns a field for an ordered collection of string-like values.
// A nil and an empty slice are equal.
func Strings[S ~string](name string, ss []S) Field {
	items := make([]string, len(ss))
	for i, s := range ss {
		items[i] = string(s)
	}
	return Field{Name: name, Value: strs{items: items}}
}

func (v strs) Equal(other Value) bool {
	o, ok := other.(strs)
	if !ok || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

func (v strs) Hash(d *xxhash.Digest) {
	writeUint(d, uint64(len(v.items)))
	for _, s := range v.items {
		writeString(d, s)
	}
}

func (v strs) Format(b *strings.Builder) {
	b.WriteByte('[')
	for i, s := range v.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(s))
	}
	b.WriteByte(']')
}

func (v strs) MarshalLog(key string, enc zapcore.ObjectEncoder) error {
	if len(v.items) == 0 {
		return nil
	}
	return enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, s := range v.items {
			ae.AppendString(s)
		}
		return nil
	}))
}

func presence(ok bool) byte {
	if ok {
		return 1
	}
	return 0
}

// Strings are length-prefixed, so ("ab", "c") and ("a", "bc") hash differently.
func writeString(d *xxhash.Digest, s string) {
	writeUint(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}

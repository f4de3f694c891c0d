package record

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap/zapcore"
)

const absent = "<absent>"

// Record is a value object whose equality, hash and string form derive from its declared attributes.
// A type only declares its attribute list once, in Fields, and Equal, Hash, Display and Object
// then work for it without further code.
type Record interface {
	// Kind names the concrete record type. It must be unique among all record types,
	// because two records of different kinds are never equal.
	Kind() string
	// Fields returns every attribute of the record, always in the same order.
	Fields() []Field
}

// Field is a single named attribute of a Record.
type Field struct {
	Name  string
	Value Value
}

// Value is the comparable, hashable and printable form of an attribute.
// Use the constructors in this package (String, Int, Nested, List, ...) to get one.
type Value interface {
	// Equal reports whether other holds the same kind of attribute with the same content.
	Equal(other Value) bool
	// Hash feeds the attribute into d.
	Hash(d *xxhash.Digest)
	// Format appends the attribute's display form to b.
	Format(b *strings.Builder)
	// MarshalLog adds the attribute to enc under key. Absent attributes add nothing.
	MarshalLog(key string, enc zapcore.ObjectEncoder) error
}

// Equal reports whether a and b are records of the same kind whose declared attributes are pairwise equal.
// It returns false, never panics, if either side is nil or b isn't a Record.
func Equal(a Record, b any) (equal bool) {
	if a == nil || b == nil {
		return false
	}
	// nil pointer records panic in Kind or Fields
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	other, ok := b.(Record)
	if !ok || other == nil || a.Kind() != other.Kind() {
		return false
	}
	af, bf := a.Fields(), other.Fields()
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if af[i].Name != bf[i].Name || !af[i].Value.Equal(bf[i].Value) {
			return false
		}
	}
	return true
}

// Matches reports whether b is an R that is Equal to a.
// Unlike Equal it also tells a record apart from a pointer to one.
func Matches[R Record](a R, b any) bool {
	o, ok := b.(R)
	return ok && Equal(a, o)
}

// Hash returns a 64 bit xxhash of the record's kind and all of its attributes in declared order.
// Records that are Equal have the same hash.
func Hash(r Record) uint64 {
	if r == nil {
		return 0
	}
	d := xxhash.New()
	writeRecord(d, r)
	return d.Sum64()
}

// Display renders the record as "Kind{name: value, ...}" in declared order.
// Absent attributes are shown as "<absent>".
func Display(r Record) string {
	if r == nil {
		return absent
	}
	var b strings.Builder
	formatRecord(&b, r)
	return b.String()
}

// Dedupe returns the records of rs with structural duplicates removed, keeping the first occurrence.
// The result is nil if rs is nil.
func Dedupe[R Record](rs []R) []R {
	if rs == nil {
		return nil
	}
	seen := make(map[uint64][]R, len(rs))
	result := make([]R, 0, len(rs))
outer:
	for _, r := range rs {
		h := Hash(r)
		for _, s := range seen[h] {
			if Equal(s, r) {
				continue outer
			}
		}
		seen[h] = append(seen[h], r)
		result = append(result, r)
	}
	return result
}

// same is Equal, except that two nil records are the same.
func same(a, b Record) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func writeRecord(d *xxhash.Digest, r Record) {
	if r == nil {
		writeString(d, absent)
		return
	}
	writeString(d, r.Kind())
	for _, f := range r.Fields() {
		writeString(d, f.Name)
		f.Value.Hash(d)
	}
}

func formatRecord(b *strings.Builder, r Record) {
	if r == nil {
		b.WriteString(absent)
		return
	}
	b.WriteString(r.Kind())
	b.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		f.Value.Format(b)
	}
	b.WriteByte('}')
}

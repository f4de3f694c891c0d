package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Checksum is the hash of a media object's binary, <media:hash>.
// The algorithm is "md5" or "sha-1"; Media RSS assumes "md5" if none is given.
type Checksum struct {
	algorithm record.Optional[string]
	value     record.Optional[string]
}

// NewChecksum returns a checksum. An absent algorithm stays absent, readers take it as md5.
func NewChecksum(algorithm, value record.Optional[string]) Checksum {
	return Checksum{
		algorithm: algorithm,
		value:     value,
	}
}

// ChecksumOf returns an md5 checksum.
func ChecksumOf(value string) Checksum {
	return NewChecksum(record.Some("md5"), record.Some(value))
}

func (c Checksum) Algorithm() record.Optional[string] {
	return c.algorithm
}

func (c Checksum) Value() record.Optional[string] {
	return c.value
}

func (c Checksum) Clone() Checksum {
	return NewChecksum(c.algorithm, c.value)
}

func (Checksum) Kind() string {
	return "Checksum"
}

func (c Checksum) Fields() []record.Field {
	return []record.Field{
		record.String("algorithm", c.algorithm),
		record.String("value", c.value),
	}
}

func (c Checksum) Equal(other any) bool {
	return record.Matches(c, other)
}

func (c Checksum) Hash() uint64 {
	return record.Hash(c)
}

func (c Checksum) String() string {
	return record.Display(c)
}

func (c Checksum) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(c).MarshalLogObject(enc)
}

package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Status is the availability of a media object, <media:status>.
// Reason is a text or URI explaining a non active state.
type Status struct {
	state  record.Optional[State]
	reason record.Optional[string]
}

// NewStatus returns a status with the given attributes.
func NewStatus(state record.Optional[State], reason record.Optional[string]) Status {
	return Status{state: state, reason: reason}
}

func (s Status) State() record.Optional[State] {
	return s.state
}

func (s Status) Reason() record.Optional[string] {
	return s.reason
}

func (s Status) Clone() Status {
	return NewStatus(s.state, s.reason)
}

func (Status) Kind() string {
	return "Status"
}

func (s Status) Fields() []record.Field {
	return []record.Field{
		record.Named("state", s.state),
		record.String("reason", s.reason),
	}
}

func (s Status) Equal(other any) bool {
	return record.Matches(s, other)
}

func (s Status) Hash() uint64 {
	return record.Hash(s)
}

func (s Status) String() string {
	return record.Display(s)
}

func (s Status) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(s).MarshalLogObject(enc)
}

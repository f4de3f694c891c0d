package record

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type marshaler struct {
	r Record
}

// Marshaler adapts r to zapcore.ObjectMarshaler, so it can be logged as a structured object.
// Absent attributes and empty collections are left out.
func Marshaler(r Record) zapcore.ObjectMarshaler {
	return marshaler{r: r}
}

func (m marshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if m.r == nil {
		return nil
	}
	enc.AddString("kind", m.r.Kind())
	for _, f := range m.r.Fields() {
		if err := f.Value.MarshalLog(f.Name, enc); err != nil {
			return err
		}
	}
	return nil
}

// Object returns a zap field logging r under key.
func Object(key string, r Record) zap.Field {
	return zap.Object(key, Marshaler(r))
}

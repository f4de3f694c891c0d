package record_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestObject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	s := shape{
		name:   record.Some("line"),
		points: []point{pt(0, 0, "a")},
		area:   record.Some(1.5),
	}
	logger.Info("shape", record.Object("shape", s))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, map[string]any{
		"kind": "shape",
		"name": "line",
		"points": []any{
			map[string]any{"kind": "point", "x": int64(0), "y": int64(0), "label": "a"},
		},
		"area": 1.5,
	}, fields["shape"])
}

func TestMarshalerNil(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, record.Marshaler(nil).MarshalLogObject(enc))
	require.Empty(t, enc.Fields)
}

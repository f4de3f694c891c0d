package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/pkg/record"
	"github.com/xybydy/go-mediarss/types"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want types.Time
	}{
		{"0", 0},
		{"12.05", 12050},
		{"01:30", 90000},
		{"00:01:30.5", 90500},
		{"1:00:00", 3600000},
		{"12:05:35.288", 43535288},
		{"npt=00:00:15", 15000},
		{" 45 ", 45000},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := types.ParseTime(test.in)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestParseTimeMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "-5", "a:10", "10:b", "1:x:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := types.ParseTime(in)
			require.ErrorIs(t, err, types.ErrMalformed)
		})
	}
}

func TestTimeString(t *testing.T) {
	require.Equal(t, "00:00:00.000", types.Time(0).String())
	require.Equal(t, "12:05:35.288", types.Time(43535288).String())
	require.Equal(t, "-00:00:01.500", types.Time(-1500).String())

	tm, err := types.ParseTime(types.Time(90500).String())
	require.NoError(t, err)
	require.Equal(t, types.Time(90500), tm)
}

func TestTimeExtremes(t *testing.T) {
	require.Equal(t, "2562047788015:12:55.807", types.Time(math.MaxInt64).String())
	require.Equal(t, "-2562047788015:12:55.808", types.Time(math.MinInt64).String())

	for _, tm := range []types.Time{math.MinInt64, math.MaxInt64} {
		t.Run(tm.String(), func(t *testing.T) {
			a := types.NewThumbnail(record.Some(types.URI("http://www.example.org/t.jpg")), record.None[int](), record.None[int](), record.Some(tm))
			b := a.Clone()
			require.True(t, a.Equal(b))
			require.Equal(t, a.Hash(), b.Hash())
			require.Contains(t, a.String(), tm.String())
			require.False(t, a.Equal(types.ThumbnailOf("http://www.example.org/t.jpg")))
		})
	}
}

func TestTimeDuration(t *testing.T) {
	require.Equal(t, 90*time.Second+500*time.Millisecond, types.Time(90500).Duration())
	require.Equal(t, types.Time(90500), types.TimeOf(90*time.Second+500*time.Millisecond+300*time.Microsecond))
}

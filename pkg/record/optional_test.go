package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/pkg/record"
)

func TestOptional(t *testing.T) {
	some := record.Some("en-us")
	v, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, "en-us", v)
	require.True(t, some.IsPresent())
	require.Equal(t, "en-us", some.OrElse("de"))
	require.Equal(t, "en-us", *some.Ptr())
	require.Equal(t, "en-us", some.String())

	none := record.None[string]()
	v, ok = none.Get()
	require.False(t, ok)
	require.Empty(t, v)
	require.False(t, none.IsPresent())
	require.Equal(t, "de", none.OrElse("de"))
	require.Nil(t, none.Ptr())
	require.Equal(t, "<absent>", none.String())

	// The zero value is absent and comparable.
	var zero record.Optional[string]
	require.True(t, zero == none)
	require.False(t, record.Some("") == none)
}

func TestOptionalFromPtr(t *testing.T) {
	s := "x"
	require.Equal(t, record.Some("x"), record.FromPtr(&s))
	require.Equal(t, record.None[string](), record.FromPtr[string](nil))

	// Ptr returns a copy.
	o := record.Some(1)
	p := o.Ptr()
	*p = 2
	require.Equal(t, 1, o.OrElse(0))
}

func TestOptionalJSON(t *testing.T) {
	type doc struct {
		Lang record.Optional[string] `json:"lang"`
		Size record.Optional[int]    `json:"size"`
	}
	data, err := json.Marshal(doc{Lang: record.Some("en"), Size: record.None[int]()})
	require.NoError(t, err)
	require.JSONEq(t, `{"lang": "en", "size": null}`, string(data))
}

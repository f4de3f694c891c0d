package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xybydy/go-mediarss/types"
)

func TestParseURI(t *testing.T) {
	u, err := types.ParseURI("http://www.example.org/subtitle.smil")
	require.NoError(t, err)
	require.Equal(t, types.URI("http://www.example.org/subtitle.smil"), u)

	parsed, err := u.URL()
	require.NoError(t, err)
	require.Equal(t, "www.example.org", parsed.Host)

	_, err = types.ParseURI("http://[::1")
	require.ErrorIs(t, err, types.ErrMalformed)
}

func TestURIIsOpaque(t *testing.T) {
	// Equivalent locators with different spelling are different values.
	require.False(t, types.SubTitleOf("http://EXAMPLE.org/a").Equal(types.SubTitleOf("http://example.org/a")))
}

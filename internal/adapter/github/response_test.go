package github

import (
	"testing"

	"github.com/m-zajac/contributorgallery/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContributors(t *testing.T) {
	t.Parallel()

	got, err := decodeContributors([]byte(validContributorsJSON))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, app.Contributor{
		ID:            583231,
		Login:         "octocat",
		AvatarURL:     "https://avatars.githubusercontent.com/u/583231?v=4",
		HTMLURL:       "https://github.com/octocat",
		Contributions: 32,
	}, got[0])

	got, err = decodeContributors([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, []app.Contributor{}, got)

	_, err = decodeContributors([]byte(`{"message":"x"}`))
	assert.Error(t, err)
}

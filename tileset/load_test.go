package tileset_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/collapse/tileset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkerboardJSON = `{
  "tiles": [
    {"name": "W", "adjacencies": ["[W>B]", "[W>B]", "[W>B]", "[W>B]"], "payload": {"color": "white"}},
    {"name": "B", "weight": 2, "adjacencies": ["[B>W]", "[B>W]", "[B>W]", "[B>W]"]}
  ]
}`

func TestLoad_Basic(t *testing.T) {
	descriptors, err := tileset.Load(strings.NewReader(checkerboardJSON))
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	assert.Equal(t, "W", descriptors[0].Name)
	assert.NotNil(t, descriptors[0].Payload)
	assert.Equal(t, "B", descriptors[1].Name)
	assert.Equal(t, float64(2), descriptors[1].Weight)
}

func TestLoad_MissingNameIsError(t *testing.T) {
	_, err := tileset.Load(strings.NewReader(`{"tiles": [{"adjacencies": ["a"]}]}`))
	assert.ErrorIs(t, err, tileset.ErrMalformedTile)
}

func TestLoad_MissingAdjacenciesIsError(t *testing.T) {
	_, err := tileset.Load(strings.NewReader(`{"tiles": [{"name": "X"}]}`))
	assert.ErrorIs(t, err, tileset.ErrMalformedTile)
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	_, err := tileset.Load(strings.NewReader(`{"tiles": [{"name": "X", "adjacencies": ["a"], "extra": true}]}`))
	assert.NoError(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := tileset.Load(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

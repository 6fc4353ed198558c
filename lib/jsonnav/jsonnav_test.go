package jsonnav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const payload = `{
	"elements": [
		{
			"value": {
				"com.example.Card": {
					"numViews": 42,
					"premium": true,
					"label": "hello"
				}
			}
		}
	]
}`

func TestTraversal(t *testing.T) {
	root, err := Decode([]byte(payload))
	require.NoError(t, err)

	card := root.Get("elements").Index(0).Get("value").Get("com.example.Card")
	require.True(t, card.Exists())
	require.Equal(t, int64(42), card.Get("numViews").Int())
	require.True(t, card.Get("premium").Bool())
	require.Equal(t, "hello", card.Get("label").Str())
}

func TestMissingNodesDegrade(t *testing.T) {
	root, err := Decode([]byte(payload))
	require.NoError(t, err)

	missing := root.Get("elements").Index(3).Get("nope").Index(-1).Get("deeper")
	require.False(t, missing.Exists())
	require.Equal(t, "", missing.Str())
	require.Equal(t, int64(0), missing.Int())
	require.False(t, missing.Bool())
	require.Nil(t, missing.Arr())
	require.Nil(t, missing.Map())
}

func TestMismatchedTypesDegrade(t *testing.T) {
	root, err := Decode([]byte(`{"a": "string"}`))
	require.NoError(t, err)

	require.Equal(t, int64(0), root.Get("a").Int())
	require.False(t, root.Get("a").Get("b").Exists())
	require.Nil(t, root.Get("a").Arr())
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	require.Error(t, err)
}

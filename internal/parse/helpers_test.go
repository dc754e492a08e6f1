package parse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) object {
	t.Helper()
	var doc object
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestAsArray(t *testing.T) {
	assert.Nil(t, asArray(nil))
	assert.Equal(t, []any{"a", "b"}, asArray([]any{"a", "b"}))
	assert.Equal(t, []any{"scalar"}, asArray("scalar"))

	single := object{"name": "x"}
	assert.Equal(t, []any{single}, asArray(single))
}

func TestAsArrayObjectShaped(t *testing.T) {
	// some serializers emit arrays as {"0": ..., "1": ..., "length": 2}
	doc := decode(t, `{"items": {"1": "second", "0": "first", "length": 2}}`)

	assert.Equal(t, []any{"first", "second"}, asArray(doc["items"]))
}

func TestGetString(t *testing.T) {
	doc := decode(t, `{"s": "text", "n": 4.5, "i": 12, "o": {}}`)

	assert.Equal(t, "text", getString(doc, "s"))
	assert.Equal(t, "4.5", getString(doc, "n"))
	assert.Equal(t, "12", getString(doc, "i"))
	assert.Equal(t, "", getString(doc, "o"))
	assert.Equal(t, "", getString(doc, "missing"))
}

func TestGetFloat(t *testing.T) {
	doc := decode(t, `{"n": 4.5, "s": "57.1", "bad": "abc", "empty": ""}`)

	f, ok := getFloat(doc, "n")
	require.True(t, ok)
	assert.Equal(t, 4.5, f)

	f, ok = getFloat(doc, "s")
	require.True(t, ok)
	assert.Equal(t, 57.1, f)

	_, ok = getFloat(doc, "bad")
	assert.False(t, ok)
	_, ok = getFloat(doc, "empty")
	assert.False(t, ok)
	_, ok = getFloat(doc, "missing")
	assert.False(t, ok)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain", stripHTML("  plain "))
	assert.Equal(t, "Provided by Qype", stripHTML(`Provided by <a href="http://qype.com">Qype</a>`))
	assert.Equal(t, "bold text", stripHTML("<b>bold</b> text"))
}

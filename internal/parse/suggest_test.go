package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
)

func TestSuggestions(t *testing.T) {
	parser := testParser(t)

	suggestions, err := parser.Suggestions([]byte(`{"suggestions": ["berlin", "bern"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"berlin", "bern"}, suggestions)
}

func TestSuggestionsScalar(t *testing.T) {
	parser := testParser(t)

	suggestions, err := parser.Suggestions([]byte(`{"suggestions": "berlin"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"berlin"}, suggestions)
}

func TestSuggestionsMissingElement(t *testing.T) {
	parser := testParser(t)

	_, err := parser.Suggestions([]byte(`{}`))
	assert.Equal(t, domain.ParseError, domain.KindOf(err))
}

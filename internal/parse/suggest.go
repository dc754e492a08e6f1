package parse

import (
	"encoding/json"

	"ovi/geoservices/internal/domain"
)

// Suggestions decodes a text predictions document,
// {"suggestions": [...]}. A single string is accepted in place of the
// array.
func (p *Parser) Suggestions(data []byte) ([]string, error) {
	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.Errorf(domain.ParseError, "decode suggestions: %v", err)
	}

	suggestionsValue, ok := doc["suggestions"]
	if !ok {
		return nil, domain.NewError(domain.ParseError, "suggestions document has no suggestions element")
	}

	suggestions := []string{}
	for _, item := range asArray(suggestionsValue) {
		if s, ok := item.(string); ok && s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}

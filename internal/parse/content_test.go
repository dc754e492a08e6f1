package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
)

func TestContentCollectionImages(t *testing.T) {
	parser := testParser(t)
	collection := domain.NewContentCollection()

	err := parser.ContentCollection([]byte(`{
		"offset": 10,
		"available": 25,
		"previous": "start=0&limit=10",
		"next": "start=20&limit=10",
		"items": [
			{
				"src": "http://img.example/1.jpg",
				"attribution": "By <a href=\"http://qype.example\">Qype</a>",
				"supplier": {"title": "Qype", "href": "http://qype.example", "icon": "http://icons.example/q.png"}
			},
			{"src": "http://img.example/2.jpg"},
			{"attribution": "no image url"}
		]
	}`), domain.ImageContent, collection)
	require.NoError(t, err)

	assert.Equal(t, 25, collection.Total)
	assert.Equal(t, "start=0&limit=10", collection.PreviousParams)
	assert.Equal(t, "start=20&limit=10", collection.NextParams)

	// items land at their absolute collection index
	require.Len(t, collection.Items, 2)
	assert.Equal(t, "http://img.example/1.jpg", collection.Items[10].Image.URL)
	assert.Equal(t, "By Qype", collection.Items[10].Image.Attribution)
	assert.Equal(t, "Qype", collection.Items[10].Image.Supplier.Name)
	assert.Equal(t, "http://img.example/2.jpg", collection.Items[11].Image.URL)
}

func TestContentCollectionWithoutOffsetAppends(t *testing.T) {
	parser := testParser(t)
	collection := domain.NewContentCollection()
	collection.Insert(4, domain.Content{Type: domain.ImageContent, Image: &domain.Image{URL: "existing"}})

	err := parser.ContentCollection([]byte(`{
		"items": [{"src": "http://img.example/new.jpg"}]
	}`), domain.ImageContent, collection)
	require.NoError(t, err)

	assert.Equal(t, "http://img.example/new.jpg", collection.Items[5].Image.URL)
}

func TestContentCollectionPagesMergeWithoutOverwrite(t *testing.T) {
	parser := testParser(t)
	collection := domain.NewContentCollection()

	page := []byte(`{"offset": 0, "items": [{"src": "http://img.example/1.jpg"}]}`)
	require.NoError(t, parser.ContentCollection(page, domain.ImageContent, collection))
	require.NoError(t, parser.ContentCollection(page, domain.ImageContent, collection))

	assert.Len(t, collection.Items, 1)
}

func TestContentCollectionReviews(t *testing.T) {
	parser := testParser(t)
	collection := domain.NewContentCollection()

	err := parser.ContentCollection([]byte(`{
		"offset": 0,
		"available": 1,
		"items": [{
			"title": "Nice",
			"description": "Good food.",
			"rating": 4,
			"date": "2011-06-21",
			"language": "en",
			"user": {"id": "user-9", "title": "anna"}
		}]
	}`), domain.ReviewContent, collection)
	require.NoError(t, err)

	require.Len(t, collection.Items, 1)
	review := collection.Items[0].Review
	require.NotNil(t, review)
	assert.Equal(t, "Nice", review.Title)
	assert.Equal(t, "Good food.", review.Text)
	assert.Equal(t, 4.0, review.Rating)
	assert.Equal(t, "anna", review.User)
	assert.Equal(t, "user-9", review.UserID)
}

func TestContentCollectionEditorials(t *testing.T) {
	parser := testParser(t)
	collection := domain.NewContentCollection()

	err := parser.ContentCollection([]byte(`{
		"offset": 0,
		"items": [{"description": "A classic.", "language": "en"}]
	}`), domain.EditorialContent, collection)
	require.NoError(t, err)

	require.Len(t, collection.Items, 1)
	require.NotNil(t, collection.Items[0].Editorial)
	assert.Equal(t, "A classic.", collection.Items[0].Editorial.Text)
}

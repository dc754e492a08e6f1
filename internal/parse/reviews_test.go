package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovi/geoservices/internal/domain"
)

func TestReviews(t *testing.T) {
	parser := testParser(t)

	reviews, total, err := parser.Reviews([]byte(`{
		"reviews": {
			"totalNumberOfReviews": 17,
			"review": [
				{
					"a_id": "rev-1",
					"title": "Great",
					"description": "Loved it.",
					"user": "anna",
					"uuid": "user-9",
					"rating": "4.5",
					"creationDate": "2011-06-21T11:30:00",
					"originatorUrl": "http://qype.example/rev-1",
					"vendor": "qype",
					"vendorDisplayName": "Qype",
					"vendorIconUrl": "http://icons.example/qype.png"
				},
				{"a_id": "rev-2", "creationDate": "2011-06-22"}
			]
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 17, total)
	require.Len(t, reviews, 2)

	review := reviews[0]
	assert.Equal(t, "rev-1", review.ID)
	assert.Equal(t, "Great", review.Title)
	assert.Equal(t, "Loved it.", review.Text)
	assert.Equal(t, "anna", review.User)
	assert.Equal(t, "user-9", review.UserID)
	assert.Equal(t, 4.5, review.Rating)
	assert.Equal(t, time.Date(2011, 6, 21, 11, 30, 0, 0, time.UTC), review.Date)
	assert.Equal(t, "Qype", review.Supplier.Name)

	assert.Equal(t, time.Date(2011, 6, 22, 0, 0, 0, 0, time.UTC), reviews[1].Date)
}

func TestReviewsSingleObject(t *testing.T) {
	parser := testParser(t)

	reviews, total, err := parser.Reviews([]byte(`{
		"reviews": {"totalNumberOfReviews": 1, "review": {"a_id": "only"}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, reviews, 1)
	assert.Equal(t, "only", reviews[0].ID)
}

func TestReviewsMissingElement(t *testing.T) {
	parser := testParser(t)

	_, _, err := parser.Reviews([]byte(`{}`))
	assert.Equal(t, domain.ParseError, domain.KindOf(err))
}

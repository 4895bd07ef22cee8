package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	p := Product{RatingCount: 3, RatingTotal: decimal.NewFromInt(12)}
	assert.Equal(t, "4", p.AverageRating().String())

	// Removing a 3-star review leaves {5, 4}
	p = Product{RatingCount: 2, RatingTotal: decimal.NewFromInt(9)}
	assert.Equal(t, "4.5", p.AverageRating().String())

	p = Product{RatingCount: 3, RatingTotal: decimal.NewFromInt(10)}
	assert.Equal(t, "3.33", p.AverageRating().String())
}

func TestAverageRatingNoReviews(t *testing.T) {
	p := Product{}
	assert.True(t, p.AverageRating().IsZero())
}

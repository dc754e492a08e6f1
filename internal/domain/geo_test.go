package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateIsValid(t *testing.T) {
	assert.False(t, Coordinate{}.IsValid())
	assert.False(t, Coordinate{Latitude: 52, Longitude: 13}.IsValid())
	assert.True(t, NewCoordinate(52, 13).IsValid())
	assert.True(t, NewCoordinate(0, 0).IsValid())
	assert.False(t, NewCoordinate(91, 0).IsValid())
	assert.False(t, NewCoordinate(0, -181).IsValid())
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{
		TopLeft:     NewCoordinate(53, 12),
		BottomRight: NewCoordinate(51, 14),
	}

	assert.True(t, box.Contains(NewCoordinate(52, 13)))
	assert.True(t, box.Contains(NewCoordinate(53, 12)))
	assert.False(t, box.Contains(NewCoordinate(54, 13)))
	assert.False(t, box.Contains(NewCoordinate(52, 15)))
	assert.False(t, box.Contains(Coordinate{Latitude: 52, Longitude: 13}))
	assert.False(t, BoundingBox{}.Contains(NewCoordinate(52, 13)))
}

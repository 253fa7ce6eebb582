package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConverter_ToPercentage(t *testing.T) {
	conv := NewScoreConverterService()
	assert.Equal(t, 40.0, conv.ToPercentage(2, 5))
	assert.Equal(t, 100.0, conv.ToPercentage(5, 5))
	assert.Equal(t, 33.33, conv.ToPercentage(1, 3))
	assert.Equal(t, 0.0, conv.ToPercentage(3, 0))
}

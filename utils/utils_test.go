package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundProgress(t *testing.T) {
	tests := []struct {
		completed int64
		total     int64
		want      float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{1, 4, 25},
		{3, 4, 75},
		{1, 3, 33},
		{2, 3, 67},
		{4, 4, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.completed, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, RoundProgress(tt.completed, tt.total))
		})
	}
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.7, RoundRating(14.0/3.0))
	assert.Equal(t, 0.0, RoundRating(0))
	assert.Equal(t, 5.0, RoundRating(5))
	assert.Equal(t, 3.5, RoundRating(3.45))
}

func TestGenerateCertificateNumber(t *testing.T) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^TGA-%d-[0-9A-F]{8}$`, time.Now().Year()))

	first := GenerateCertificateNumber()
	second := GenerateCertificateNumber()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestGeneratePaymentReference(t *testing.T) {
	pattern := regexp.MustCompile(`^tga_[0-9a-f]{32}$`)

	first := GeneratePaymentReference()
	second := GeneratePaymentReference()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

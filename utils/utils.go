package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoundProgress rounds a completion ratio to a whole percentage.
func RoundProgress(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed) / float64(total) * 100)
}

// RoundRating rounds an average rating to 1 decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// GenerateCertificateNumber produces a unique, human-readable certificate
// number, e.g. TGA-2026-4F9A2C1B.
func GenerateCertificateNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("TGA-%d-%s", time.Now().Year(), id[:8])
}

// GeneratePaymentReference produces a unique gateway transaction reference.
func GeneratePaymentReference() string {
	return "tga_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

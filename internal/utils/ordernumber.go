package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber formats ORD-<year>-<last 6 digits of unix ms><3 random digits>.
func GenerateOrderNumber(now time.Time) string {
	suffix := now.UnixMilli() % 1_000_000

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 1000)
	}

	return fmt.Sprintf("ORD-%d-%06d%03d", now.Year(), suffix, n.Int64())
}

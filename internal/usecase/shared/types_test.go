//go:build unit

package shared_test

import (
	"testing"
	"time"

	"lunchbox/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyRecordExpired(t *testing.T) {
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	record := &shared.IdempotencyRecord{ExpiresAt: base}

	t.Run("live before the deadline", func(t *testing.T) {
		assert.False(t, record.Expired(base.Add(-time.Second)))
	})

	t.Run("live exactly at the deadline", func(t *testing.T) {
		assert.False(t, record.Expired(base))
	})

	t.Run("expired after the deadline", func(t *testing.T) {
		assert.True(t, record.Expired(base.Add(time.Second)))
	})
}

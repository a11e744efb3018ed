package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatermarkAdvanced(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("no watermark always advances", func(t *testing.T) {
		assert.True(t, watermarkAdvanced(base, nil))
	})

	t.Run("echoed watermark with sub-second storage is unchanged", func(t *testing.T) {
		// Stored timestamps carry sub-second precision; the client echoes
		// back whole seconds. The round trip must compare as unchanged.
		stored := base.Add(500 * time.Millisecond)
		echoed := time.Unix(stored.Unix(), 0)

		assert.False(t, watermarkAdvanced(stored, &echoed))
	})

	t.Run("equal watermark is unchanged", func(t *testing.T) {
		assert.False(t, watermarkAdvanced(base, &base))
	})

	t.Run("older watermark advances", func(t *testing.T) {
		since := base.Add(-time.Minute)

		assert.True(t, watermarkAdvanced(base, &since))
	})

	t.Run("newer update after the echo advances", func(t *testing.T) {
		stored := base.Add(time.Second + 250*time.Millisecond)

		assert.True(t, watermarkAdvanced(stored, &base))
	})
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"museum-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAttemptResult(t *testing.T) {
	at := time.Date(2025, 1, 1, 17, 0, 5, 0, time.UTC)

	t.Run("automated success needs verification", func(t *testing.T) {
		r := booking.NewSuccess(booking.ProvenanceDirectAPI, "SM123", "ABC", at)
		assert.True(t, r.Success())
		assert.True(t, r.NeedsVerification())
		assert.Nil(t, r.ManualRecordID())
	})

	t.Run("success without booking id is not verified", func(t *testing.T) {
		r := booking.NewSuccess(booking.ProvenanceBrowser, "", "", at)
		assert.False(t, r.NeedsVerification())
	})

	t.Run("failure", func(t *testing.T) {
		r := booking.NewFailure(booking.ProvenanceEnhancedAPI, "timeout", at)
		assert.False(t, r.Success())
		assert.False(t, r.NeedsVerification())
		assert.Equal(t, "timeout", r.ErrorDetail())
	})

	t.Run("manual success is never verified and copies instructions", func(t *testing.T) {
		steps := []string{"one", "two"}
		id := uuid.New()
		r := booking.NewManualSuccess("SM250101ABCD", id, at.Add(30*time.Minute), steps, at)
		steps[0] = "changed"

		assert.True(t, r.Success())
		assert.True(t, r.IsManual())
		assert.False(t, r.NeedsVerification())
		assert.Equal(t, []string{"one", "two"}, r.Instructions())
		assert.Equal(t, id, *r.ManualRecordID())
	})
}

//go:build unit

package manual_test

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"

	"github.com/stretchr/testify/assert"
)

var referencePattern = regexp.MustCompile(`^(SM|QH)\d{6}[A-Z0-9]{4}$`)

func TestReferenceGenerator(t *testing.T) {
	visit := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("prefix and date per museum", func(t *testing.T) {
		g := manual.NewReferenceGenerator()

		main := g.Generate(booking.MuseumMain, visit)
		assert.Regexp(t, referencePattern, main)
		assert.Equal(t, "SM250115", main[:8])

		qinhan := g.Generate(booking.MuseumQinHan, visit)
		assert.Regexp(t, referencePattern, qinhan)
		assert.Equal(t, "QH250115", qinhan[:8])
	})

	t.Run("deterministic source", func(t *testing.T) {
		src := bytes.Repeat([]byte{0}, 64)
		a := manual.NewReferenceGeneratorWithSource(bytes.NewReader(src)).Generate(booking.MuseumMain, visit)
		b := manual.NewReferenceGeneratorWithSource(bytes.NewReader(src)).Generate(booking.MuseumMain, visit)
		assert.Equal(t, a, b)
	})

	t.Run("exhausted source still yields a reference", func(t *testing.T) {
		ref := manual.NewReferenceGeneratorWithSource(bytes.NewReader(nil)).Generate(booking.MuseumMain, visit)
		assert.Regexp(t, referencePattern, ref)
	})
}

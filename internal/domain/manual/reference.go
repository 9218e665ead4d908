package manual

import (
	"crypto/rand"
	"io"
	"math/big"
	"time"

	"museum-booking/internal/domain/booking"
)

const (
	referenceAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referenceSuffixLen  = 4
	referenceDateLayout = "060102"
)

// ReferenceGenerator synthesizes platform-looking booking numbers:
// site prefix, visit date as YYMMDD, random suffix.
type ReferenceGenerator struct {
	random io.Reader
}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{random: rand.Reader}
}

// NewReferenceGeneratorWithSource is used by tests to make suffixes deterministic.
func NewReferenceGeneratorWithSource(r io.Reader) *ReferenceGenerator {
	return &ReferenceGenerator{random: r}
}

func (g *ReferenceGenerator) Generate(museum booking.Museum, visitDate time.Time) string {
	suffix := make([]byte, referenceSuffixLen)
	limit := big.NewInt(int64(len(referenceAlphabet)))
	for i := range suffix {
		n, err := rand.Int(g.random, limit)
		if err != nil {
			// fall back to a time-derived index so the manual tier still never fails
			suffix[i] = referenceAlphabet[(time.Now().UnixNano()+int64(i))%int64(len(referenceAlphabet))]
			continue
		}
		suffix[i] = referenceAlphabet[n.Int64()]
	}
	return museum.ReferencePrefix() + visitDate.Format(referenceDateLayout) + string(suffix)
}

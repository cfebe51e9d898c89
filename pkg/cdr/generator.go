package cdr

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	// PhonePrefix starts every generated number (Dutch mobile, international format).
	PhonePrefix = "00316"
	phoneDigits = 8

	MinDurationSeconds = 5
	MaxDurationSeconds = 5400
)

// Generator produces call records from a catalog and a caller-owned random source.
// It is not safe for concurrent use; give each goroutine its own *rand.Rand.
type Generator struct {
	catalog Catalog
	rand    *rand.Rand
}

// NewGenerator returns a generator drawing towers from catalog.
func NewGenerator(catalog Catalog, r *rand.Rand) *Generator {
	return &Generator{catalog: catalog, rand: r}
}

// Next samples one record whose start lies in [startBound, endBound) epoch seconds.
// Bounds are not validated here; Generate does that once for the whole run.
func (g *Generator) Next(startBound, endBound int64) CallRecord {
	startEpoch := startBound + g.rand.Int64N(endBound-startBound)
	start := time.Unix(startEpoch, 0).UTC()

	duration := MinDurationSeconds + g.rand.Int64N(MaxDurationSeconds-MinDurationSeconds+1)
	end := start.Add(time.Duration(duration) * time.Second)

	tower := g.catalog.At(g.rand.IntN(g.catalog.Len()))

	return CallRecord{
		Start:      start,
		End:        end,
		TowerID:    tower.ID,
		TowerName:  tower.Name,
		FromNumber: PhoneNumber(g.rand),
		ToNumber:   PhoneNumber(g.rand),
	}
}

// PhoneNumber returns PhonePrefix followed by 8 uniformly random digits.
func PhoneNumber(r *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(len(PhonePrefix) + phoneDigits)
	sb.WriteString(PhonePrefix)
	for i := 0; i < phoneDigits; i++ {
		sb.WriteByte(byte('0' + r.IntN(10)))
	}
	return sb.String()
}

// Option configures Generate.
type Option func(*options)

type options struct {
	progress Progress
}

// WithProgress reports each generated record to p.
func WithProgress(p Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}

// Generate returns count records with start times uniformly sampled from
// [startBound, endBound) epoch seconds (UTC).
//
// A count of zero or less yields an empty slice, not an error. Bounds and
// catalog are checked before any randomness is consumed.
func Generate(count int, startBound, endBound int64, catalog Catalog, r *rand.Rand, opts ...Option) ([]CallRecord, error) {
	if startBound >= endBound {
		return nil, fmt.Errorf("%w: %d >= %d", ErrInvalidRange, startBound, endBound)
	}
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if count <= 0 {
		return []CallRecord{}, nil
	}

	g := NewGenerator(catalog, r)
	records := make([]CallRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.Next(startBound, endBound))
		if o.progress != nil {
			_ = o.progress.Add(1)
		}
	}
	return records, nil
}

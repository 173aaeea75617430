// Package ledger collects decoded TaxBit records and orders them
// deterministically for downstream tax-lot processing. It owns the
// collection; the record type itself stays a plain value.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/rocjay1/taxbit-ledger/internal/models"
)

// Ledger is an ordered collection of export records loaded from one or more
// sources. It is not safe for concurrent use; callers that share a Ledger
// across goroutines must synchronize, the records themselves need none once
// loading is done.
type Ledger struct {
	source  RecordSource
	records []models.Record
}

// New creates a ledger that loads records through source.
func New(source RecordSource) *Ledger {
	return &Ledger{source: source}
}

// Load reads and appends the records of each export path, in order.
func (l *Ledger) Load(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		records, err := l.source.Records(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}
		l.records = append(l.records, records...)
	}
	return nil
}

// Sort orders the records by the record total order. The sort is stable,
// and since the order is total, re-sorting a sorted ledger is a no-op.
func (l *Ledger) Sort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Less(&l.records[j])
	})
}

// Records returns the ledger's records in their current order.
func (l *Ledger) Records() []models.Record {
	return l.records
}

// Len returns the number of loaded records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Assets returns the distinct assets the ledger's records concern, in first
// seen order. Unlike Record.Asset, an unclassified record here is bad data
// rather than a caller bug, so it is reported as an error instead of a
// panic.
func (l *Ledger) Assets() ([]string, error) {
	var assets []string
	seen := make(map[string]bool)
	for i := range l.records {
		rec := &l.records[i]
		if rec.Type == models.TxTypeUnknown {
			return nil, fmt.Errorf("record %d is unclassified: %s", i+1, rec)
		}
		asset := rec.Asset()
		if !seen[asset] {
			seen[asset] = true
			assets = append(assets, asset)
		}
	}
	return assets, nil
}

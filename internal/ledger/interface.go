package ledger

import (
	"context"

	"github.com/rocjay1/taxbit-ledger/internal/models"
)

// RecordSource defines the interface for fetching decoded export records.
// The ledger depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go RecordSource
type RecordSource interface {
	Records(ctx context.Context, path string) ([]models.Record, error)
}

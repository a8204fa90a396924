// Package repositories defines the data source interfaces the services are
// built against.
package repositories

import (
	"context"

	"github.com/asakaida/landtree/internal/ingest"
)

// RelationSource streams company relation records in source order.
type RelationSource interface {
	// Relations invokes fn for every relation record in the source, in
	// order. Iteration stops at the first error, which is returned.
	Relations(ctx context.Context, fn func(ingest.RelationRecord) error) error
}

// OwnershipSource streams land ownership records in source order.
type OwnershipSource interface {
	// Ownerships invokes fn for every ownership record in the source, in
	// order. Iteration stops at the first error, which is returned.
	Ownerships(ctx context.Context, fn func(ingest.OwnershipRecord) error) error
}

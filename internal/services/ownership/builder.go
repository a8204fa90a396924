// Package ownership implements the corporate ownership core: building the
// company relation graph and the land-parcel index from record streams,
// resolving top-level ancestors, and rendering aggregated ownership trees.
package ownership

import (
	"github.com/asakaida/landtree/internal/entities"
	"github.com/asakaida/landtree/internal/ingest"
)

// GraphBuilder accumulates company relation records into a graph keyed by
// company ID.
//
// Records may name a parent that has not been seen yet. Such a parent is
// created immediately with only its ID known; its name and parent are filled
// in later when/if its own record arrives. A child always has at most one
// parent, and a parent of "" means the company is top-level. Duplicate
// records for the same company ID are not validated: the last one wins.
type GraphBuilder struct {
	companies map[string]*entities.Company
}

// NewGraphBuilder creates an empty GraphBuilder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{companies: make(map[string]*entities.Company)}
}

// Add processes one relation record in stream order.
func (b *GraphBuilder) Add(rec ingest.RelationRecord) {
	// Register the child with its parent, creating the parent on first
	// reference. A parent of "" must never become a graph entry.
	if rec.Parent != "" {
		parent, ok := b.companies[rec.Parent]
		if !ok {
			parent = &entities.Company{ID: rec.Parent}
			b.companies[rec.Parent] = parent
		}
		parent.AddChild(rec.CompanyID)
	}

	// The subject company may itself already exist if an earlier record
	// referenced it as a parent; complete it from this record.
	company, ok := b.companies[rec.CompanyID]
	if !ok {
		company = &entities.Company{ID: rec.CompanyID}
		b.companies[rec.CompanyID] = company
	}
	company.Name = rec.Name
	company.ParentID = rec.Parent
}

// Graph returns the accumulated graph. The map is owned by the builder;
// callers must not keep adding records after reading it concurrently.
func (b *GraphBuilder) Graph() map[string]*entities.Company {
	return b.companies
}

// IndexBuilder accumulates land ownership records into a mapping from
// company ID to the land parcel IDs it directly owns, in stream order.
// A company that owns no parcels is simply absent from the index.
type IndexBuilder struct {
	parcels map[string][]string
}

// NewIndexBuilder creates an empty IndexBuilder.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{parcels: make(map[string][]string)}
}

// Add processes one ownership record in stream order.
func (b *IndexBuilder) Add(rec ingest.OwnershipRecord) {
	b.parcels[rec.CompanyID] = append(b.parcels[rec.CompanyID], rec.LandID)
}

// Index returns the accumulated company → parcels index.
func (b *IndexBuilder) Index() map[string][]string {
	return b.parcels
}

package services

import (
	"context"
	"fmt"

	"github.com/asakaida/landtree/internal/entities"
	"github.com/asakaida/landtree/internal/ingest"
	"github.com/asakaida/landtree/internal/repositories"
	"github.com/asakaida/landtree/internal/services/ownership"
)

// RegistryInterface defines the read-only query operations over a loaded
// ownership registry.
type RegistryInterface interface {
	Company(id string) (*entities.Company, error)
	RootOf(id string) (string, error)
	Tree(id string, fromRoot bool) (string, error)
	ParcelCount(id string) int
	CompanyCount() int
}

// Registry holds the company relation graph and the land-parcel index for
// one run. It is built once by LoadRegistry and read-only afterwards.
type Registry struct {
	graph map[string]*entities.Company
	index map[string][]string
}

// LoadRegistry streams both data sources and builds the registry.
// Any failure aborts the load; there is no partial-failure recovery.
func LoadRegistry(
	ctx context.Context,
	relations repositories.RelationSource,
	ownerships repositories.OwnershipSource,
) (*Registry, error) {
	graphBuilder := ownership.NewGraphBuilder()
	err := relations.Relations(ctx, func(rec ingest.RelationRecord) error {
		graphBuilder.Add(rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load company relations: %w", err)
	}

	indexBuilder := ownership.NewIndexBuilder()
	err = ownerships.Ownerships(ctx, func(rec ingest.OwnershipRecord) error {
		indexBuilder.Add(rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load land ownership: %w", err)
	}

	return &Registry{
		graph: graphBuilder.Graph(),
		index: indexBuilder.Index(),
	}, nil
}

// NewRegistry creates a registry from an already-built graph and index.
// Used by tests and by callers that assemble data without a repository.
func NewRegistry(graph map[string]*entities.Company, index map[string][]string) *Registry {
	return &Registry{graph: graph, index: index}
}

// Company returns the company with the given ID.
// Returns *ownership.UnknownCompanyError if the ID has no graph entry.
func (r *Registry) Company(id string) (*entities.Company, error) {
	company, ok := r.graph[id]
	if !ok {
		return nil, &ownership.UnknownCompanyError{ID: id}
	}
	return company, nil
}

// RootOf resolves the top-level ancestor of the given company.
func (r *Registry) RootOf(id string) (string, error) {
	return ownership.ResolveRoot(id, r.graph)
}

// Tree renders the ownership tree for the given company. With fromRoot set,
// the tree is rendered from the company's top-level ancestor; otherwise the
// company itself is the tree root. The company remains the render target
// either way.
func (r *Registry) Tree(id string, fromRoot bool) (string, error) {
	rootID := id
	if fromRoot {
		resolved, err := ownership.ResolveRoot(id, r.graph)
		if err != nil {
			return "", err
		}
		rootID = resolved
	}
	return ownership.FormatTree(r.graph, r.index, rootID, id)
}

// ParcelCount returns the number of land parcels the company owns directly.
// A company absent from the index owns zero parcels.
func (r *Registry) ParcelCount(id string) int {
	return len(r.index[id])
}

// CompanyCount returns the number of companies in the relation graph.
func (r *Registry) CompanyCount() int {
	return len(r.graph)
}

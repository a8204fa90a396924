package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/asakaida/landtree/internal/ingest"
	"github.com/asakaida/landtree/internal/services/ownership"
)

// mockRelationSource replays a fixed slice of relation records.
type mockRelationSource struct {
	records []ingest.RelationRecord
	err     error
}

func (m *mockRelationSource) Relations(ctx context.Context, fn func(ingest.RelationRecord) error) error {
	if m.err != nil {
		return m.err
	}
	for _, rec := range m.records {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// mockOwnershipSource replays a fixed slice of ownership records.
type mockOwnershipSource struct {
	records []ingest.OwnershipRecord
	err     error
}

func (m *mockOwnershipSource) Ownerships(ctx context.Context, fn func(ingest.OwnershipRecord) error) error {
	if m.err != nil {
		return m.err
	}
	for _, rec := range m.records {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func loadTestRegistry(t *testing.T) *Registry {
	t.Helper()

	relations := &mockRelationSource{records: []ingest.RelationRecord{
		{CompanyID: "B", Name: "Company B", Parent: "A"},
		{CompanyID: "C", Name: "Company C", Parent: "B"},
		{CompanyID: "A", Name: "Company A", Parent: ""},
	}}
	ownerships := &mockOwnershipSource{records: []ingest.OwnershipRecord{
		{LandID: "T1", CompanyID: "A"},
		{LandID: "T2", CompanyID: "C"},
		{LandID: "T3", CompanyID: "C"},
	}}

	registry, err := LoadRegistry(context.Background(), relations, ownerships)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return registry
}

func TestLoadRegistry(t *testing.T) {
	registry := loadTestRegistry(t)

	if registry.CompanyCount() != 3 {
		t.Errorf("CompanyCount() = %d, want 3", registry.CompanyCount())
	}

	a, err := registry.Company("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Company A" {
		t.Errorf("Name = %q, want Company A (forward reference must be completed)", a.Name)
	}
	if len(a.ChildrenIDs) != 1 || a.ChildrenIDs[0] != "B" {
		t.Errorf("ChildrenIDs = %v, want [B]", a.ChildrenIDs)
	}

	if got := registry.ParcelCount("C"); got != 2 {
		t.Errorf("ParcelCount(C) = %d, want 2", got)
	}
	if got := registry.ParcelCount("B"); got != 0 {
		t.Errorf("ParcelCount(B) = %d, want 0", got)
	}
}

func TestLoadRegistry_SourceError(t *testing.T) {
	sentinel := errors.New("disk gone")

	_, err := LoadRegistry(
		context.Background(),
		&mockRelationSource{err: sentinel},
		&mockOwnershipSource{},
	)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped source error, got %v", err)
	}

	_, err = LoadRegistry(
		context.Background(),
		&mockRelationSource{},
		&mockOwnershipSource{err: sentinel},
	)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestRegistry_RootOf(t *testing.T) {
	registry := loadTestRegistry(t)

	root, err := registry.RootOf("C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "A" {
		t.Errorf("RootOf(C) = %s, want A", root)
	}

	root, err = registry.RootOf("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "A" {
		t.Errorf("RootOf(A) = %s, want A", root)
	}
}

func TestRegistry_Tree(t *testing.T) {
	registry := loadTestRegistry(t)

	got, err := registry.Tree("C", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"A; Company A; owner of 3 land parcels",
		"| - B; Company B; owner of 2 land parcels",
		"| | - C; Company C; owner of 2 land parcels",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Tree(C, fromRoot) =\n%q\nwant\n%q", got, want)
	}

	// Without fromRoot the company itself is the render root.
	got, err = registry.Tree("B", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "B; Company B; owner of 2 land parcels\n") {
		t.Errorf("Tree(B) = %q, want render rooted at B", got)
	}
}

func TestRegistry_UnknownCompany(t *testing.T) {
	registry := loadTestRegistry(t)

	_, err := registry.Tree("nope", false)
	var unknown *ownership.UnknownCompanyError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownCompanyError, got %v", err)
	}

	_, err = registry.RootOf("nope")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownCompanyError, got %v", err)
	}

	_, err = registry.Company("nope")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownCompanyError, got %v", err)
	}
}

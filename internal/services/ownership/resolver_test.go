package ownership

import (
	"errors"
	"testing"

	"github.com/asakaida/landtree/internal/entities"
)

// testGraph builds two independent company trees:
//
//	A ── B ── C
//	D ── E ── F
//	 └── X
func testGraph() map[string]*entities.Company {
	return map[string]*entities.Company{
		"A": {ID: "A", Name: "Company A", ChildrenIDs: []string{"B"}},
		"B": {ID: "B", Name: "Company B", ParentID: "A", ChildrenIDs: []string{"C"}},
		"C": {ID: "C", Name: "Company C", ParentID: "B"},
		"D": {ID: "D", Name: "Company D", ChildrenIDs: []string{"E", "X"}},
		"E": {ID: "E", Name: "Company E", ParentID: "D", ChildrenIDs: []string{"F"}},
		"F": {ID: "F", Name: "Company F", ParentID: "E"},
		"X": {ID: "X", Name: "Company X", ParentID: "D"},
	}
}

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		companyID string
		want      string
	}{
		{"C", "A"},
		{"B", "A"},
		{"A", "A"},
		{"F", "D"},
		{"E", "D"},
		{"D", "D"},
		{"X", "D"},
	}

	graph := testGraph()
	for _, tt := range tests {
		t.Run(tt.companyID, func(t *testing.T) {
			got, err := ResolveRoot(tt.companyID, graph)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRoot(%s) = %s, want %s", tt.companyID, got, tt.want)
			}
		})
	}
}

func TestResolveRoot_Idempotent(t *testing.T) {
	graph := testGraph()

	root, err := ResolveRoot("C", graph)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := ResolveRoot(root, graph)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != root {
		t.Errorf("ResolveRoot(%s) = %s, want %s (resolving a root must be identity)", root, again, root)
	}
}

func TestResolveRoot_UnknownCompany(t *testing.T) {
	_, err := ResolveRoot("nope", testGraph())

	var unknown *UnknownCompanyError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownCompanyError, got %v", err)
	}
	if unknown.ID != "nope" {
		t.Errorf("UnknownCompanyError.ID = %s, want nope", unknown.ID)
	}
}

package ownership

import (
	"testing"

	"github.com/asakaida/landtree/internal/ingest"
)

func TestGraphBuilder_ForwardReferences(t *testing.T) {
	b := NewGraphBuilder()
	for _, rec := range []ingest.RelationRecord{
		{CompanyID: "C100517359149", Name: "Leseetan Midlands Group Limited", Parent: "R764915829891"},
		{CompanyID: "C101307938502", Name: "Cheales lesitech Plc", Parent: "S100240634395"},
		{CompanyID: "C47634269492", Name: "leseetan new group", Parent: "R764915829891"},
	} {
		b.Add(rec)
	}
	graph := b.Graph()

	sample, ok := graph["C100517359149"]
	if !ok {
		t.Fatal("expected C100517359149 in graph")
	}
	if sample.Name != "Leseetan Midlands Group Limited" {
		t.Errorf("Name = %q, want Leseetan Midlands Group Limited", sample.Name)
	}
	if sample.ParentID != "R764915829891" {
		t.Errorf("ParentID = %q, want R764915829891", sample.ParentID)
	}
	if len(sample.ChildrenIDs) != 0 {
		t.Errorf("ChildrenIDs = %v, want empty", sample.ChildrenIDs)
	}

	// The parent was only ever referenced, never defined: unknown name and
	// parent, children registered in first-seen order.
	parent, ok := graph["R764915829891"]
	if !ok {
		t.Fatal("expected referenced parent R764915829891 in graph")
	}
	if parent.Name != "" {
		t.Errorf("referenced-only parent Name = %q, want empty", parent.Name)
	}
	if parent.ParentID != "" {
		t.Errorf("referenced-only parent ParentID = %q, want empty", parent.ParentID)
	}
	wantChildren := []string{"C100517359149", "C47634269492"}
	if len(parent.ChildrenIDs) != len(wantChildren) {
		t.Fatalf("ChildrenIDs = %v, want %v", parent.ChildrenIDs, wantChildren)
	}
	for i, id := range wantChildren {
		if parent.ChildrenIDs[i] != id {
			t.Errorf("ChildrenIDs[%d] = %s, want %s", i, parent.ChildrenIDs[i], id)
		}
	}
}

func TestGraphBuilder_ForwardReferenceCompletedLater(t *testing.T) {
	b := NewGraphBuilder()
	b.Add(ingest.RelationRecord{CompanyID: "bar", Name: "Bar Limited", Parent: "foo"})
	b.Add(ingest.RelationRecord{CompanyID: "foo", Name: "Foo Limited", Parent: ""})
	graph := b.Graph()

	foo, ok := graph["foo"]
	if !ok {
		t.Fatal("expected foo in graph")
	}
	if foo.Name != "Foo Limited" {
		t.Errorf("Name = %q, want Foo Limited (own record must complete the node)", foo.Name)
	}
	if foo.ParentID != "" {
		t.Errorf("ParentID = %q, want empty", foo.ParentID)
	}
	if len(foo.ChildrenIDs) != 1 || foo.ChildrenIDs[0] != "bar" {
		t.Errorf("ChildrenIDs = %v, want [bar]", foo.ChildrenIDs)
	}
}

func TestGraphBuilder_NoEmptyKeys(t *testing.T) {
	tests := []struct {
		name    string
		records []ingest.RelationRecord
	}{
		{
			name: "top-level company created directly",
			records: []ingest.RelationRecord{
				{CompanyID: "foo", Name: "Bar Limited", Parent: ""},
			},
		},
		{
			name: "top-level parent created indirectly",
			records: []ingest.RelationRecord{
				{CompanyID: "bar", Name: "Bar Limited", Parent: "foo"},
				{CompanyID: "foo", Name: "Foo Limited", Parent: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewGraphBuilder()
			for _, rec := range tt.records {
				b.Add(rec)
			}
			graph := b.Graph()

			if _, ok := graph[""]; ok {
				t.Error("graph contains a company keyed by empty string")
			}
			for id, company := range graph {
				if id == "" || company.ID == "" {
					t.Errorf("graph entry with empty ID: %+v", company)
				}
			}
			if foo := graph["foo"]; foo.ParentID != "" {
				t.Errorf("top-level company ParentID = %q, want empty", foo.ParentID)
			}
		})
	}
}

func TestGraphBuilder_DuplicateRecordLastWriteWins(t *testing.T) {
	b := NewGraphBuilder()
	b.Add(ingest.RelationRecord{CompanyID: "C1", Name: "First Name", Parent: "R1"})
	b.Add(ingest.RelationRecord{CompanyID: "C1", Name: "Second Name", Parent: "R2"})
	graph := b.Graph()

	c1 := graph["C1"]
	if c1.Name != "Second Name" {
		t.Errorf("Name = %q, want Second Name", c1.Name)
	}
	if c1.ParentID != "R2" {
		t.Errorf("ParentID = %q, want R2", c1.ParentID)
	}
}

func TestIndexBuilder(t *testing.T) {
	b := NewIndexBuilder()
	for _, rec := range []ingest.OwnershipRecord{
		{LandID: "T1", CompanyID: "R1"},
		{LandID: "T2", CompanyID: "C1"},
		{LandID: "T3", CompanyID: "R1"},
	} {
		b.Add(rec)
	}
	index := b.Index()

	r1 := index["R1"]
	if len(r1) != 2 || r1[0] != "T1" || r1[1] != "T3" {
		t.Errorf("index[R1] = %v, want [T1 T3]", r1)
	}
	c1 := index["C1"]
	if len(c1) != 1 || c1[0] != "T2" {
		t.Errorf("index[C1] = %v, want [T2]", c1)
	}

	// A company with no parcels is absent, and lookup yields zero.
	if _, ok := index["C2"]; ok {
		t.Error("expected C2 to be absent from index")
	}
	if len(index["C2"]) != 0 {
		t.Error("expected zero parcels for absent company")
	}
}

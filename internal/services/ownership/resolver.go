package ownership

import "github.com/asakaida/landtree/internal/entities"

// ResolveRoot follows parent links from companyID up to the top-level
// ancestor and returns its ID. A company with no parent resolves to itself.
// Returns *UnknownCompanyError if companyID has no entry in the graph.
//
// The graph is assumed acyclic: a cycle among parent links makes this loop
// forever. That matches the data contract and is deliberately not guarded.
func ResolveRoot(companyID string, graph map[string]*entities.Company) (string, error) {
	company, ok := graph[companyID]
	if !ok {
		return "", &UnknownCompanyError{ID: companyID}
	}

	for !company.IsTopLevel() {
		parent, ok := graph[company.ParentID]
		if !ok {
			return "", &UnknownCompanyError{ID: company.ParentID}
		}
		company = parent
	}

	return company.ID, nil
}

package ownership

import (
	"fmt"
	"strings"

	"github.com/asakaida/landtree/internal/entities"
)

// FormatTree renders the ownership subtree rooted at rootID as an indented
// text block. Each company line carries the aggregate parcel count of the
// company and all of its descendants. Children are emitted in first-seen
// order, each child's block following its parent's line.
//
// targetID names the company the caller asked about. It is intended to stop
// expansion once the target is reached, but expansion currently always
// covers the whole subtree; the parameter is accepted and ignored.
//
// Returns *UnknownCompanyError if rootID has no entry in the graph.
func FormatTree(
	graph map[string]*entities.Company,
	index map[string][]string,
	rootID string,
	targetID string,
) (string, error) {
	out, _, err := formatNode(graph, index, rootID, targetID, 0)
	return out, err
}

// formatNode renders one company and its descendants, returning the block
// and the aggregate parcel count. Counts are summed bottom-up; the node's
// own line is emitted ahead of the already-rendered child blocks.
func formatNode(
	graph map[string]*entities.Company,
	index map[string][]string,
	companyID string,
	targetID string,
	depth int,
) (string, int, error) {
	company, ok := graph[companyID]
	if !ok {
		return "", 0, &UnknownCompanyError{ID: companyID}
	}

	total := len(index[companyID])

	var children strings.Builder
	for _, childID := range company.ChildrenIDs {
		childOut, childTotal, err := formatNode(graph, index, childID, targetID, depth+1)
		if err != nil {
			return "", 0, err
		}
		children.WriteString(childOut)
		total += childTotal
	}

	indent := ""
	if depth > 0 {
		indent = strings.Repeat("| ", depth) + "- "
	}

	line := fmt.Sprintf("%s%s; %s; owner of %d land parcels\n", indent, company.ID, company.Name, total)
	return line + children.String(), total, nil
}

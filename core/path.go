// SPDX-License-Identifier: MIT

package core

// TrivialPath is the answer to any search whose start and end coincide.
func TrivialPath(id string) *Path {
	return &Path{NodeIDs: []string{id}, EdgeIDs: []string{}}
}

// TracePath rebuilds the start→end route from the parent links recorded by a
// search: parentNode[v] is the node v was discovered from and parentEdge[v] the
// edge used to reach it. It returns nil when a link is missing or the links
// cycle without reaching startID.
//
// Complexity: O(path length).
func TracePath(startID, endID string, parentNode, parentEdge map[string]string) *Path {
	nodes := []string{}
	edges := []string{}
	for cur := endID; cur != startID; {
		if len(edges) > len(parentNode) {
			return nil
		}
		p, okP := parentNode[cur]
		e, okE := parentEdge[cur]
		if !okP || !okE {
			return nil
		}
		nodes = append(nodes, cur)
		edges = append(edges, e)
		cur = p
	}
	nodes = append(nodes, startID)

	reverse(nodes)
	reverse(edges)

	return &Path{NodeIDs: nodes, EdgeIDs: edges}
}

// Hops returns the number of edges on the path.
func (p *Path) Hops() int { return len(p.EdgeIDs) }

// Cost sums the weights of the path's edges as resolved by idx.
// Steps that idx does not know contribute nothing.
func (p *Path) Cost(idx *AdjacencyIndex) float64 {
	var total float64
	for i, eid := range p.EdgeIDs {
		for _, nb := range idx.Neighbors(p.NodeIDs[i]) {
			if nb.EdgeID == eid {
				total += nb.Weight
				break
			}
		}
	}

	return total
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Package search provides fuzzy lookup over the bookmark tree.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/marks/pkg/bookmarks"
)

// Match is a node matched by a query, with its slash-separated id path
// from the root. Lower ranks are better.
type Match struct {
	Node bookmarks.Node
	Path string
	Rank int
}

// Find walks the tree and returns nodes whose display name or URL
// fuzzy-matches the query, best matches first. Traversal errors
// (unrecognized node types) propagate.
func Find(root *bookmarks.Directory, query string) ([]Match, error) {
	var matches []Match
	err := bookmarks.Walk(root, func(n bookmarks.Node, depth int) error {
		rank := rankNode(n, query)
		if rank < 0 {
			return nil
		}
		matches = append(matches, Match{
			Node: n,
			Path: idPath(n),
			Rank: rank,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rank < matches[j].Rank
	})
	return matches, nil
}

// rankNode returns the best rank over the matchable fields, or -1
func rankNode(n bookmarks.Node, query string) int {
	best := fuzzy.RankMatchNormalizedFold(query, n.DisplayName())
	if b, ok := n.(*bookmarks.Bookmark); ok {
		if urlRank := fuzzy.RankMatchNormalizedFold(query, b.URL()); urlRank >= 0 {
			if best < 0 || urlRank < best {
				best = urlRank
			}
		}
	}
	return best
}

// idPath renders the node's tree path as slash-separated ids, root
// omitted
func idPath(n bookmarks.Node) string {
	path := n.TreePath()
	ids := make([]string, 0, len(path))
	for _, ancestor := range path[1:] {
		ids = append(ids, ancestor.ID())
	}
	return strings.Join(ids, "/")
}

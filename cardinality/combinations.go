package cardinality

import "github.com/xDarkicex/boolexpr/node"

// combinations returns every r-element subset of xs, in lexicographic
// index order, matching Python's itertools.combinations used throughout
// original_source's cardinality expansion.
func combinations(xs []*node.Node, r int) [][]*node.Node {
	n := len(xs)
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]*node.Node{{}}
	}

	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	var out [][]*node.Node
	for {
		combo := make([]*node.Node, r)
		for i, ix := range idx {
			combo[i] = xs[ix]
		}
		out = append(out, combo)

		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

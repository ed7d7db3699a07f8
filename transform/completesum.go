package transform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xDarkicex/boolexpr/node"
)

// CompleteSum returns an equivalent DNF containing exactly the prime
// implicants of x (the Blake canonical form), via the classical iterated
// consensus method: generate every consensus of two cubes that can
// produce one, add it unless an identical cube is already present, repeat
// to a fixed point,
// then drop every cube subsumed by another (spec.md §4.3, §9 Open
// Questions — "any algorithm satisfying the two absorption/expansion
// properties is acceptable").
func CompleteSum(a *node.Arena, x *node.Node) *node.Node {
	dnf := ToDNF(a, x)
	if dnf.IsConstant() {
		return dnf
	}
	cubes := cubesFromDNF(a, dnf)

	for {
		grown := false
		for i := 0; i < len(cubes); i++ {
			for j := i + 1; j < len(cubes); j++ {
				c, ok := consensus(cubes[i], cubes[j])
				if !ok {
					continue
				}
				if containsCube(cubes, c) {
					continue
				}
				cubes = append(cubes, c)
				grown = true
			}
		}
		if !grown {
			break
		}
	}

	cubes = dropSubsumed(cubes)
	return buildCover(a, cubes)
}

// cubesFromDNF extracts each Or-term of a DNF node as a Point (cube).
func cubesFromDNF(a *node.Arena, dnf *node.Node) []Point {
	var terms []*node.Node
	if dnf.Kind() == node.Or {
		terms = dnf.Children()
	} else {
		terms = []*node.Node{dnf}
	}

	cubes := make([]Point, 0, len(terms))
	for _, t := range terms {
		cubes = append(cubes, cubeOf(t))
	}
	return cubes
}

func cubeOf(term *node.Node) Point {
	p := make(Point)
	if idx, ok := term.VarIndex(); ok {
		p[idx] = term.Kind() == node.Var
		return p
	}
	if term.Kind() == node.And {
		for _, lit := range term.Children() {
			if idx, ok := lit.VarIndex(); ok {
				p[idx] = lit.Kind() == node.Var
			}
		}
	}
	return p
}

// consensus computes the consensus of two cubes on the unique variable
// where they disagree, provided they agree on every other shared
// variable. Returns ok=false if no such variable exists or there is more
// than one disagreement.
func consensus(c1, c2 Point) (Point, bool) {
	var conflictVar int
	conflicts := 0
	for v, val1 := range c1 {
		if val2, shared := c2[v]; shared {
			if val1 != val2 {
				conflicts++
				conflictVar = v
				if conflicts > 1 {
					return nil, false
				}
			}
		}
	}
	if conflicts != 1 {
		return nil, false
	}

	out := make(Point, len(c1)+len(c2))
	for v, val := range c1 {
		if v != conflictVar {
			out[v] = val
		}
	}
	for v, val := range c2 {
		if v != conflictVar {
			if existing, ok := out[v]; ok && existing != val {
				return nil, false
			}
			out[v] = val
		}
	}
	return out, true
}

// subsumes reports whether d's literals are a subset of c's (same
// polarities) — d ⊆ c means d is weaker and makes c redundant.
func subsumes(d, c Point) bool {
	if len(d) >= len(c) {
		return false
	}
	for v, val := range d {
		if cv, ok := c[v]; !ok || cv != val {
			return false
		}
	}
	return true
}

func containsCube(cubes []Point, c Point) bool {
	for _, existing := range cubes {
		if cubeKey(existing) == cubeKey(c) {
			return true
		}
	}
	return false
}

func dropSubsumed(cubes []Point) []Point {
	keep := make([]Point, 0, len(cubes))
	for i, c := range cubes {
		redundant := false
		for j, d := range cubes {
			if i == j {
				continue
			}
			if subsumes(d, c) {
				redundant = true
				break
			}
		}
		if !redundant {
			keep = append(keep, c)
		}
	}
	return dedupCubes(keep)
}

func dedupCubes(cubes []Point) []Point {
	seen := make(map[string]bool, len(cubes))
	out := make([]Point, 0, len(cubes))
	for _, c := range cubes {
		k := cubeKey(c)
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	return out
}

func cubeKey(c Point) string {
	vars := make([]int, 0, len(c))
	for v := range c {
		vars = append(vars, v)
	}
	sort.Ints(vars)
	var b strings.Builder
	for _, v := range vars {
		b.WriteString(strconv.Itoa(v))
		if c[v] {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func buildCover(a *node.Arena, cubes []Point) *node.Node {
	terms := make([]*node.Node, len(cubes))
	for i, c := range cubes {
		terms[i] = pointToTerm(a, c)
	}
	return a.Or(terms...)
}

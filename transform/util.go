package transform

import (
	"strconv"

	"github.com/xDarkicex/boolexpr/node"
)

// cacheKey builds the key used for an arena's optional long-lived memo
// cache (node.Arena.WithMemoCacheSize): the transform name plus the source
// node's identifier, since memoization must always be keyed by node
// identity rather than structural equality (spec.md §9).
func cacheKey(transformName string, x *node.Node) string {
	return transformName + ":" + strconv.Itoa(int(x.ID()))
}

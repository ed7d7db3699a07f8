package node

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/xDarkicex/boolexpr/internal/telemetry"
)

// Stats reports arena-wide counters, in the teacher's plain-struct-of-
// counters style (compare sat.SolverStatistics).
type Stats struct {
	NodeCount   int
	InternHits  int
	InternMisses int
}

// Arena owns every node ever created through it and guarantees structural
// uniqueness (spec.md §4.1). An Arena is created alongside a variable
// universe and torn down with it; it is not safe for concurrent mutation
// (spec.md §5).
type Arena struct {
	nodes []*Node
	cons  map[string]*Node

	zero *Node
	one  *Node

	logger telemetry.Logger
	memo   *lru.Cache[string, *Node]

	stats Stats
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithLogger attaches an hclog-backed logger; the arena emits a Trace line
// through it on every hash-cons hit, and nothing else. The zero value is a
// no-op logger.
func WithLogger(l telemetry.Logger) Option {
	return func(a *Arena) { a.logger = l }
}

// WithMemoCacheSize enables a long-lived LRU cache (keyed by transform name
// plus source node identifier) shared across transform.Simplify/ToCNF/ToDNF
// calls against this arena, bounded to size entries. Zero (the default)
// disables the long-lived cache; transforms then use a per-call memo table
// only (spec.md §5).
func WithMemoCacheSize(size int) Option {
	return func(a *Arena) {
		if size <= 0 {
			return
		}
		c, err := lru.New[string, *Node](size)
		if err == nil {
			a.memo = c
		}
	}
}

// NewArena creates an empty arena with its two constant singletons already
// interned.
func NewArena(opts ...Option) *Arena {
	a := &Arena{
		cons:   make(map[string]*Node),
		logger: telemetry.NoOp(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.zero = a.intern(Zero, 0, nil)
	a.one = a.intern(One, 0, nil)
	return a
}

// Stats returns a snapshot of the arena's node-count and hash-cons hit
// ratio counters.
func (a *Arena) Stats() Stats { return a.stats }

// Logger returns the arena's attached logger (never nil).
func (a *Arena) Logger() telemetry.Logger { return a.logger }

// MemoGet/MemoPut expose the optional long-lived transform cache to the
// transform package. A nil cache (the default) makes these always miss.
func (a *Arena) MemoGet(key string) (*Node, bool) {
	if a.memo == nil {
		return nil, false
	}
	return a.memo.Get(key)
}

func (a *Arena) MemoPut(key string, n *Node) {
	if a.memo == nil {
		return
	}
	a.memo.Add(key, n)
}

// consKey builds the hash-cons key for (kind, data, canonical children).
// String keys keep the cons table a plain map[string]*Node, matching the
// "strash" (structural hash) idea of keying on a flat encoding of shape
// rather than a composite struct with slice fields (slices aren't
// comparable, so they can't be map keys directly).
func consKey(k Kind, data int64, kids []*Node) string {
	var b strings.Builder
	b.WriteByte(byte(k))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(data, 10))
	for _, c := range kids {
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(int64(c.id), 10))
	}
	return b.String()
}

// intern returns the unique node for (kind, data, kids), allocating one if
// this is the first time this shape has been seen. kids must already be in
// canonical order.
func (a *Arena) intern(k Kind, data int64, kids []*Node) *Node {
	key := consKey(k, data, kids)
	if existing, ok := a.cons[key]; ok {
		a.stats.InternHits++
		a.logger.Trace("hash-cons hit", "kind", k.String(), "id", existing.id)
		return existing
	}

	n := &Node{
		kind:  k,
		id:    int32(len(a.nodes)),
		data:  data,
		kids:  kids,
		depth: depthOf(k, kids),
	}
	a.nodes = append(a.nodes, n)
	a.cons[key] = n
	a.stats.InternMisses++
	a.stats.NodeCount++
	return n
}

func depthOf(k Kind, kids []*Node) int32 {
	if k.IsAtom() {
		return 0
	}
	var maxDepth int32
	for _, c := range kids {
		if c.depth > maxDepth {
			maxDepth = c.depth
		}
	}
	return maxDepth + 1
}

// Zero returns the constant-false singleton.
func (a *Arena) Zero() *Node { return a.zero }

// One returns the constant-true singleton.
func (a *Arena) One() *Node { return a.one }

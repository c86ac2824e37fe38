package colortrade

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

const (

	// MaxWorkers caps the number of goroutines any parallel phase will fork.
	MaxWorkers = 256
)

// Key is the canonical encoding of a coloring: a comparable, hashable string that is identical for
// any two colorings having the same vertex -> color assignment.
//
// For each vertex, in ascending order of vertex name:
//
//	uvarint(len(name)) name uvarint(len(color)) color
type Key string

// KeyEntry is a single (vertex, color) pair of a Key.
type KeyEntry struct {
	Vertex string
	Color  string
}

// AppendKeyEntry appends one (vertex, color) pair to a canonical key being built in out.
func AppendKeyEntry(out []byte, vertex, color string) []byte {
	out = binary.AppendUvarint(out, uint64(len(vertex)))
	out = append(out, vertex...)
	out = binary.AppendUvarint(out, uint64(len(color)))
	out = append(out, color...)
	return out
}

// Entries decodes this Key back into its (vertex, color) pairs.
func (key Key) Entries() ([]KeyEntry, error) {
	var entries []KeyEntry
	buf := []byte(key)
	for len(buf) > 0 {
		var pair [2]string
		for i := range pair {
			n, sz := binary.Uvarint(buf)
			if sz <= 0 || uint64(len(buf)-sz) < n {
				return nil, errors.Wrapf(ErrBadKey, "truncated at entry %d", len(entries))
			}
			pair[i] = string(buf[sz : sz+int(n)])
			buf = buf[sz+int(n):]
		}
		entries = append(entries, KeyEntry{
			Vertex: pair[0],
			Color:  pair[1],
		})
	}
	return entries, nil
}

// String renders this key as "v1=red v2=blue ..."
func (key Key) String() string {
	entries, err := key.Entries()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	b := strings.Builder{}
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Vertex)
		b.WriteByte('=')
		b.WriteString(e.Color)
	}
	return b.String()
}

// TradeRule selects which relation connects two colorings in a trade graph.
type TradeRule int32

const (

	// TradeElementary connects two colorings whose difference set D cannot be split into two parts that
	// could each be recolored on their own while staying proper (a single atomic Kempe-style trade).
	TradeElementary TradeRule = iota

	// TradeConnected connects two colorings whose difference set induces a connected subgraph.
	TradeConnected

	// TradeTotal connects two colorings that differ at every vertex.
	TradeTotal
)

var tradeRuleNames = [...]string{
	TradeElementary: "elementary",
	TradeConnected:  "connected",
	TradeTotal:      "total",
}

func (rule TradeRule) String() string {
	if rule < 0 || int(rule) >= len(tradeRuleNames) {
		return "unknown"
	}
	return tradeRuleNames[rule]
}

// ParseTradeRule maps a rule name back to its TradeRule.
func ParseTradeRule(name string) (TradeRule, error) {
	for i, ni := range tradeRuleNames {
		if strings.EqualFold(ni, name) {
			return TradeRule(i), nil
		}
	}
	return TradeElementary, errors.Wrapf(ErrBadTradeRule, "%q", name)
}

// CanonicSet allows adding canonical coloring keys and reporting if an equal key has already been added.
//
// Implementations are safe for concurrent use.
type CanonicSet interface {

	// TryAdd adds the given key if it is not already present.
	//
	// If key is already in this CanonicSet, this call has no effect and TryAdd() returns false.
	// If key isn't in this set, a copy of key is added and TryAdd() returns true.
	TryAdd(key Key) bool

	// Len returns the number of distinct keys added so far.
	Len() int

	// Close removes all previously added items from this set.
	Close()
}

// DedupeMode selects a CanonicSet implementation.
type DedupeMode int32

const (
	DedupeHash DedupeMode = iota // hash table over a pooled key buffer
	DedupeLSM                    // in-memory LSM (badger)
)

// EnumOpts specifies params for enumerating the colorings of a graph.
type EnumOpts struct {
	Workers int        // 0 or 1 denotes a single sequential search
	Dedupe  DedupeMode // which CanonicSet dedupes the enumerated colorings
}

// BuildOpts specifies params for assembling a trade graph.
type BuildOpts struct {
	Rule      TradeRule // how two colorings are related
	Workers   int       // 0 or 1 denotes sequential pair detection
	SortByKey bool      // if set, nodes are listed in canonical key order (vs input order)
	Annotate  bool      // if set, each edge retains its Trade description
}

// StatsOpts specifies what is computed over a trade graph.
type StatsOpts struct {
	Distances bool // if set, diameter and radius are computed per component (all-pairs BFS)
}

// Stats is the statistics record of a trade graph.
type Stats struct {
	NodeCount      int              `json:"nodeCount"`
	EdgeCount      int              `json:"edgeCount"`
	Degrees        []int            `json:"degrees"`    // degree of each node, by node index
	DegreeHist     []DegreeCount    `json:"degreeHist"` // ascending by degree
	MinDegree      int              `json:"minDegree"`
	MaxDegree      int              `json:"maxDegree"`
	MeanDegree     float64          `json:"meanDegree"`
	IsolatedCount  int              `json:"isolatedCount"`
	ComponentCount int              `json:"componentCount"`
	ComponentSizes []int            `json:"componentSizes"` // descending
	Components     []ComponentStats `json:"components"`     // in order of each component's first node
}

// DegreeCount is one row of a degree histogram.
type DegreeCount struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// ComponentStats describes one connected component of a trade graph.
type ComponentStats struct {
	Size     int `json:"size"`
	Edges    int `json:"edges"`
	Diameter int `json:"diameter"` // -1 when distances were not computed
	Radius   int `json:"radius"`   // -1 when distances were not computed
}

// PrintOpts specifies what is printed when printing colorings.
type PrintOpts struct {
	Label   string // Prefix label
	Ordinal bool   // If set, each row is prefixed with its ordinal
	Key     bool   // If set, prints the canonical key form (vs vertex order)
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Ordinal: true,
}

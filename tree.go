package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman tree.  Nodes live in a flat arena and refer to their
// children by index, so no traversal in this package recurses.
type Tree struct {
	nodes []node
	root  int32
}

type node struct {
	weight uint64
	symbol Symbol
	left   int32
	right  int32
}

const noChild = int32(-1)

func (n *node) isLeaf() bool {
	return n.left == noChild
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) int32 {
	t.nodes = append(t.nodes, node{weight: weight, symbol: symbol, left: noChild, right: noChild})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) addInternal(left, right int32) int32 {
	// Compute weight using saturating addition
	weight := t.nodes[left].weight + t.nodes[right].weight
	if weight < t.nodes[left].weight {
		weight = math.MaxUint64
	}
	t.nodes = append(t.nodes, node{weight: weight, symbol: InvalidSymbol, left: left, right: right})
	return int32(len(t.nodes) - 1)
}

// BuildTree constructs the Huffman tree for the given frequency table.  Every
// symbol with a non-zero count gets one leaf.  The EOF leaf is always present
// and has a weight of at least 1.
//
// Ties between nodes of equal weight are broken in favor of leaves with lower
// symbol values, then merged nodes in the order they were created.  When two
// nodes are merged, the first one removed from the queue becomes the left
// child.
//
func BuildTree(counts *Counts) *Tree {
	t := &Tree{nodes: make([]node, 0, 2*NumSymbols-1)}

	h := freqHeap{list: make([]treeItem, 0, NumSymbols)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		weight := counts[symbol]
		if symbol == EOF && weight == 0 {
			weight = 1
		}
		if weight == 0 {
			continue
		}
		index := t.addLeaf(symbol, weight)
		h.list = append(h.list, treeItem{index: index, weight: weight, order: uint32(symbol)})
	}
	h.Init()

	order := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(treeItem)
		b := heap.Pop(&h).(treeItem)
		index := t.addInternal(a.index, b.index)
		heap.Push(&h, treeItem{index: index, weight: t.nodes[index].weight, order: order})
		order++
	}

	t.root = heap.Pop(&h).(treeItem).index
	return t
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the total of all leaf weights.
// Trees read from a header have no weights.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Codes walks the tree and returns the path to each leaf.  A tree consisting
// of a single leaf assigns that leaf the empty Code.
func (t *Tree) Codes() (*CodeTable, error) {
	table := &CodeTable{}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)
	stackPush := func(index int32, code Code) error {
		n := &t.nodes[index]
		if n.isLeaf() {
			table.set(n.symbol, code)
			return nil
		}
		if code.Size >= MaxCodeSize {
			return fmt.Errorf("%w: tree is deeper than %d levels", ErrCodeTooLong, MaxCodeSize)
		}
		stack = append(stack, stackItem{index: index, code: code})
		return nil
	}

	if err := stackPush(t.root, Code{}); err != nil {
		return nil, err
	}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := &t.nodes[top.index]
		var err error
		switch x {
		case 0:
			err = stackPush(n.left, top.code.Append(0))
		case 1:
			err = stackPush(n.right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

// CodeTable maps each Symbol present in a Tree to its Code.
type CodeTable struct {
	codes [NumSymbols]Code
	valid [NumSymbols]bool
}

func (table *CodeTable) set(symbol Symbol, code Code) {
	assert.Assertf(symbol.IsValid(), "symbol %d out of range", int32(symbol))
	assert.Assertf(!table.valid[symbol], "symbol %v appears twice in tree", symbol)
	table.codes[symbol] = code
	table.valid[symbol] = true
}

// Lookup returns the Code for symbol.  The second result is false if the
// symbol is not in the table.
func (table *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	return table.codes[symbol], table.valid[symbol]
}

// MinSize is the bit length of the shortest code in the table.
func (table *CodeTable) MinSize() byte {
	minSize := byte(MaxCodeSize)
	for symbol := range table.codes {
		if table.valid[symbol] && table.codes[symbol].Size < minSize {
			minSize = table.codes[symbol].Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code in the table.
func (table *CodeTable) MaxSize() byte {
	var maxSize byte
	for symbol := range table.codes {
		if table.valid[symbol] && table.codes[symbol].Size > maxSize {
			maxSize = table.codes[symbol].Size
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols without a code are omitted.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if table.valid[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", symbol, table.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type treeItem + type freqHeap {{{

type treeItem struct {
	index  int32
	weight uint64
	order  uint32
}

type freqHeap struct {
	list []treeItem
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.order < b.order
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeItem))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}

package container

// QuickList backs the LIST QUICKLIST encoding: a doubly-linked list of
// ziplist (or plain) nodes. Real quicklists report an approximate size
// from per-node compression bookkeeping, so estimate_size samples rather
// than computes exactly (spec.md §4.9).
type QuickList struct {
	nodes []*ZipList
}

// NewQuickList builds a QuickList from the given ziplist nodes.
func NewQuickList(nodes ...*ZipList) *QuickList {
	return &QuickList{nodes: nodes}
}

func (q *QuickList) Count() int {
	total := 0
	for _, n := range q.nodes {
		total += n.Count()
	}
	return total
}

func (q *QuickList) ExactSize() (int64, bool) { return 0, false }

func (q *QuickList) Sample(n int) [][]byte {
	var all [][]byte
	for _, node := range q.nodes {
		all = append(all, node.entries...)
	}
	return sampleSlice(all, n)
}

// PushNode appends a ziplist node to the tail of the quicklist.
func (q *QuickList) PushNode(node *ZipList) {
	q.nodes = append(q.nodes, node)
}

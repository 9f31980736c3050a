package btree

// Stats is a point-in-time snapshot of a tree's structure and of its
// rebalancing activity since construction.
type Stats struct {
	Size   int // number of records
	Height int // levels in the tree; 1 for a single leaf, 0 when empty
	Nodes  int // allocated nodes
	Order  int // branching factor

	Splits    uint64
	Merges    uint64
	Rotations uint64
}

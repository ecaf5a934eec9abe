package ui

// nodeArena hands out Nodes for one frame and recycles them in bulk at the
// start of the next. Storage is chunked so a chunk never reallocates:
// pointers handed out stay valid for the whole frame even as more nodes are
// allocated. Chunks are kept across frames, so a steady UI allocates
// nothing after the first few frames.
type nodeArena struct {
	chunks [][]Node
	chunk  int // chunk currently being filled
	used   int // nodes used in that chunk
}

const arenaChunkSize = 256

func newNodeArena() *nodeArena {
	a := &nodeArena{}
	a.chunks = append(a.chunks, make([]Node, arenaChunkSize))
	return a
}

// alloc returns a zeroed Node owned by the arena until the next Reset.
func (a *nodeArena) alloc() *Node {
	if a.used == arenaChunkSize {
		a.chunk++
		a.used = 0
		if a.chunk == len(a.chunks) {
			a.chunks = append(a.chunks, make([]Node, arenaChunkSize))
		}
	}
	n := &a.chunks[a.chunk][a.used]
	a.used++
	// Zero on reuse so a recycled node carries nothing over, in particular
	// no stale Children slice from the previous frame's tree.
	*n = Node{}
	return n
}

// Reset recycles every node handed out since the last Reset. Previously
// returned pointers become invalid for the caller; the old tree is dropped
// wholesale instead of being released node by node.
func (a *nodeArena) Reset() {
	a.chunk = 0
	a.used = 0
}

// Len returns the number of live nodes allocated this frame.
func (a *nodeArena) Len() int {
	return a.chunk*arenaChunkSize + a.used
}

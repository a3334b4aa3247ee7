package euler

import "github.com/bits-and-blooms/bitset"

// searchState is the backtracking frame shared by one Search invocation.
// marked holds the positions (in Graph.Edges order) of the edges on the
// current path; edges/vertices/positions grow and shrink together.
type searchState struct {
	start     string
	marked    *bitset.BitSet
	edges     []string
	vertices  []string
	positions []uint
}

func newSearchState(edgeCount int) *searchState {
	return &searchState{
		marked:    bitset.New(uint(edgeCount)),
		edges:     make([]string, 0, edgeCount),
		vertices:  make([]string, 0, edgeCount+1),
		positions: make([]uint, 0, edgeCount),
	}
}

// reset empties the path and places the walk at start.
func (s *searchState) reset(start string) {
	s.start = start
	s.marked.ClearAll()
	s.edges = s.edges[:0]
	s.positions = s.positions[:0]
	s.vertices = append(s.vertices[:0], start)
}

// push marks edge e (at position pos) and extends the walk to vertex v.
func (s *searchState) push(pos uint, e, v string) {
	s.marked.Set(pos)
	s.edges = append(s.edges, e)
	s.vertices = append(s.vertices, v)
	s.positions = append(s.positions, pos)
}

// pop undoes exactly the last push.
func (s *searchState) pop() {
	last := len(s.positions) - 1
	s.marked.Clear(s.positions[last])
	s.positions = s.positions[:last]
	s.edges = s.edges[:last]
	s.vertices = s.vertices[:last+1]
}

func (s *searchState) isMarked(pos uint) bool { return s.marked.Test(pos) }

func (s *searchState) markedCount() int { return int(s.marked.Count()) }

func (s *searchState) current() string { return s.vertices[len(s.vertices)-1] }

// trail returns a detached copy of the current walk.
func (s *searchState) trail() Trail {
	t := Trail{
		Start:    s.start,
		Edges:    make([]string, len(s.edges)),
		Vertices: make([]string, len(s.vertices)),
	}
	copy(t.Edges, s.edges)
	copy(t.Vertices, s.vertices)

	return t
}

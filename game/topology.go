package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize   = errors.New("board size must be at least 1")
	ErrBoardTooLarge = errors.New("board does not fit in a bitset")
)

// Coord is a position in the skewed axial system used by the board.
type Coord struct {
	X int
	Y int
}

// Neighbour offsets, ordered cyclically around a hex.
var directions = [...]Coord{{-1, 0}, {-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}}

/*
Topology is the static, precomputed description of a board. size = 3:

	 0 1 2 3 4
	0 _ _ O O O
	 1 _ O O O O
	  2 O O O O O
	   3 O O O O _
	    4 O O O _ _
*/
type Topology struct {
	Size        int // Length of a side
	CoordsRange int // Maximum coordinate value + 1
	Count       int // Number of points on the board

	Coords      []Coord     // Coordinates, indexed by point
	Adjacencies [][]int     // Neighbouring points, indexed by point
	Patterns    [][]Pattern // Playout responses, indexed by the point just played

	index    []int  // Point at x*CoordsRange+y, -1 when off-board
	boundary []bool // Whether the point lies on an edge line, indexed by point
}

// PointCount returns the number of points on a board with the given side length.
func PointCount(size int) int {
	coordsRange := 2*size - 1
	return coordsRange*coordsRange - size*(size-1)
}

func NewTopology(size int) (*Topology, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	count := PointCount(size)
	if count > Capacity {
		return nil, fmt.Errorf("%w: size %d has %d points, capacity is %d", ErrBoardTooLarge, size, count, Capacity)
	}

	t := &Topology{
		Size:        size,
		CoordsRange: 2*size - 1,
		Count:       count,
		Coords:      make([]Coord, 0, count),
		Adjacencies: make([][]int, count),
		boundary:    make([]bool, count),
	}

	t.index = make([]int, t.CoordsRange*t.CoordsRange)
	for i := range t.index {
		t.index[i] = -1
	}
	for x := 0; x < t.CoordsRange; x++ {
		for y := 0; y < t.CoordsRange; y++ {
			if !t.inBounds(x, y) {
				continue
			}
			t.index[x*t.CoordsRange+y] = len(t.Coords)
			t.Coords = append(t.Coords, Coord{X: x, Y: y})
		}
	}

	for i, c := range t.Coords {
		t.boundary[i] = t.onEdge(c)
		adj := make([]int, 0, len(directions))
		for _, d := range directions {
			if j, ok := t.Index(c.X+d.X, c.Y+d.Y); ok {
				adj = append(adj, j)
			}
		}
		t.Adjacencies[i] = adj
	}

	t.Patterns = buildPatterns(t)
	return t, nil
}

func (t *Topology) inBounds(x, y int) bool {
	if x < 0 || y < 0 || x >= t.CoordsRange || y >= t.CoordsRange {
		return false
	}
	s := x + y
	return s >= t.Size-1 && s <= 3*t.Size-3
}

func (t *Topology) onEdge(c Coord) bool {
	last := t.CoordsRange - 1
	return c.X == 0 || c.Y == 0 || c.X == last || c.Y == last ||
		c.X+c.Y == t.Size-1 || c.X+c.Y == 3*t.Size-3
}

// Index returns the point at (x, y), or false when the coordinate is off the board.
func (t *Topology) Index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= t.CoordsRange || y >= t.CoordsRange {
		return -1, false
	}
	i := t.index[x*t.CoordsRange+y]
	return i, i >= 0
}

// MustIndex is Index for coordinates known to be valid.
func (t *Topology) MustIndex(x, y int) int {
	i, ok := t.Index(x, y)
	if !ok {
		panic(fmt.Sprintf("coordinate (%d, %d) is not on a size %d board", x, y, t.Size))
	}
	return i
}

func (t *Topology) OnBoundary(point int) bool {
	return t.boundary[point]
}

// Pack encodes a coordinate as a single integer, x + y*CoordsRange.
func (t *Topology) Pack(x, y int) int {
	return x + y*t.CoordsRange
}

func (t *Topology) Unpack(packed int) (x, y int) {
	return packed % t.CoordsRange, packed / t.CoordsRange
}

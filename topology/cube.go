package topology

import "fmt"

// Cube directions, fixed at six per cell: the natural generalization of
// Square's four-neighborhood to a three-dimensional voxel lattice.
const (
	PlusX Direction = iota
	MinusX
	PlusY
	MinusY
	PlusZ
	MinusZ
)

// cube is a Width x Height x Depth voxel lattice with six-neighborhoods.
// Cell (x,y,z) is stored at dense index x + y*Width + z*Width*Height,
// the three-dimensional analogue of Square's row-major indexing.
type cube struct {
	width, height, depth int
}

// NewCube returns a width x height x depth voxel lattice topology.
func NewCube(width, height, depth int) (Topology, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("topology: Cube(%d,%d,%d): %w", width, height, depth, ErrBadDimensions)
	}
	return &cube{width: width, height: height, depth: depth}, nil
}

func (c *cube) CellCount() int { return c.width * c.height * c.depth }
func (c *cube) EdgeCount() int { return 6 }

func (c *cube) Coord(idx int) Coord {
	plane := c.width * c.height
	z := idx / plane
	rem := idx % plane
	y := rem / c.width
	x := rem % c.width
	return Coord{X: x, Y: y, Z: z}
}

func (c *cube) Coords() []Coord {
	out := make([]Coord, 0, c.CellCount())
	for z := 0; z < c.depth; z++ {
		for y := 0; y < c.height; y++ {
			for x := 0; x < c.width; x++ {
				out = append(out, Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

func (c *cube) Index(co Coord) (int, bool) {
	if co.X < 0 || co.X >= c.width || co.Y < 0 || co.Y >= c.height || co.Z < 0 || co.Z >= c.depth {
		return 0, false
	}
	return co.X + co.Y*c.width + co.Z*c.width*c.height, true
}

func (c *cube) Neighbors(idx int) []Neighbor {
	co := c.Coord(idx)
	offsets := []struct {
		dir        Direction
		dx, dy, dz int
	}{
		{PlusX, 1, 0, 0},
		{MinusX, -1, 0, 0},
		{PlusY, 0, 1, 0},
		{MinusY, 0, -1, 0},
		{PlusZ, 0, 0, 1},
		{MinusZ, 0, 0, -1},
	}

	out := make([]Neighbor, len(offsets))
	for i, o := range offsets {
		n := Coord{X: co.X + o.dx, Y: co.Y + o.dy, Z: co.Z + o.dz}
		nidx, ok := c.Index(n)
		if !ok {
			nidx = -1
		}
		out[i] = Neighbor{Direction: o.dir, Index: nidx}
	}
	return out
}

func (c *cube) Inverse(dir Direction) Direction {
	switch dir {
	case PlusX:
		return MinusX
	case MinusX:
		return PlusX
	case PlusY:
		return MinusY
	case MinusY:
		return PlusY
	case PlusZ:
		return MinusZ
	case MinusZ:
		return PlusZ
	default:
		return dir
	}
}

func (c *cube) Orientation(idx int) string { return DefaultOrientation }

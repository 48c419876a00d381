package sdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/paths"
)

// ErrBadCube is returned by Parse for malformed cube notation.
var ErrBadCube = errors.New("sdp: malformed cube")

// Cube is a ternary product term with one Bit per link slot.
// Cubes crossing list boundaries are copied with Clone; no two lists share one.
type Cube []Bit

// NewCube returns a cube of n DontCare bits.
func NewCube(n int) Cube { return make(Cube, n) }

// PathToCube builds the term of a path: all DontCare except the traversed
// links, which are Up. It panics if a link ID is outside [0, linkCount).
func PathToCube(linkCount int, links []int) Cube {
	c := NewCube(linkCount)
	for _, id := range links {
		if id < 0 || id >= linkCount {
			panic(fmt.Sprintf("sdp: link %d outside cube of length %d", id, linkCount))
		}
		c[id] = UpBit()
	}

	return c
}

// FromPath builds the term of p on topo.
// It panics if two consecutive vertices of p are not linked.
func FromPath(topo core.Topology, p paths.Path) Cube {
	return PathToCube(topo.LinkCount(), paths.Links(topo, p))
}

// Clone returns a deep copy of c.
func (c Cube) Clone() Cube {
	out := make(Cube, len(c))
	copy(out, c)

	return out
}

// Equal reports whether c and o hold identical bits.
func (c Cube) Equal(o Cube) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i].Symbol() != o[i].Symbol() || c[i].Group() != o[i].Group() {
			return false
		}
	}

	return true
}

// String renders the cube as space-separated bits, link 0 first.
func (c Cube) String() string {
	parts := make([]string, len(c))
	for i, b := range c {
		parts[i] = b.String()
	}

	return strings.Join(parts, " ")
}

// Parse reads the notation produced by Cube.String.
func Parse(s string) (Cube, error) {
	fields := strings.Fields(s)
	c := make(Cube, len(fields))
	for i, f := range fields {
		switch {
		case f == "1":
			c[i] = UpBit()
		case f == "x":
			c[i] = DontCareBit()
		case f == "0":
			c[i] = DownBit(0)
		case strings.HasPrefix(f, "0:"):
			g, err := strconv.ParseUint(f[2:], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("sdp: Parse(%q) bit %d: %w", s, i, ErrBadCube)
			}
			c[i] = DownBit(uint32(g))
		default:
			return nil, fmt.Errorf("sdp: Parse(%q) bit %d: %w", s, i, ErrBadCube)
		}
	}

	return c, nil
}

// MustParse is Parse that panics on error; intended for fixtures.
func MustParse(s string) Cube {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// MaxGroup returns the highest group label among c's Down bits (0 if none).
func MaxGroup(c Cube) uint32 {
	var m uint32
	for _, b := range c {
		if g := b.Group(); g > m {
			m = g
		}
	}

	return m
}

func mustSameLen(a, b Cube) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("sdp: cube length mismatch %d != %d", len(a), len(b)))
	}
}

package legacygen

import (
	"testing"

	"github.com/kitemc/server/server/internal/legacyrand"
)

// TestEllipsoidMaskIsDeterministicForFixedSeed checks that ellipsoidMask
// fills at least one cell for seed 1, that the result is deterministic, and
// that it has no "neighbour bleed" outside
// the 1..14 / 1..6 interior the source's own loop bounds restrict fill to
// (spec.md §8 scenario 4's "zero neighbor bleed").
func TestEllipsoidMaskIsDeterministicForFixedSeed(t *testing.T) {
	first := ellipsoidMask(legacyrand.New(1))
	second := ellipsoidMask(legacyrand.New(1))

	if first != second {
		t.Fatal("expected ellipsoidMask to be a pure function of the PRNG seed")
	}

	filled := 0
	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 0; y < lakeHeight; y++ {
				if !first[x][z][y] {
					continue
				}
				filled++
				if x == 0 || x == lakeWidth-1 || z == 0 || z == lakeWidth-1 || y == 0 || y == lakeHeight-1 {
					t.Fatalf("fill mask leaked onto the box border at (%d,%d,%d); the source's own loop "+
						"bounds (x,z in 1..15, y in 1..7) never touch it", x, y, z)
				}
			}
		}
	}
	if filled == 0 {
		t.Fatal("expected seed 1 to fill at least one cell")
	}
}

// TestEllipsoidMaskMatchesKnownSeedFillCount pins the total filled-cell
// count for PRNG seed 1 so a future change to the ellipsoid sampling (count
// distribution, draw order, or scaling) is caught even if it still produces
// a plausible-looking mask.
func TestEllipsoidMaskMatchesKnownSeedFillCount(t *testing.T) {
	mask := ellipsoidMask(legacyrand.New(1))

	filled := 0
	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 0; y < lakeHeight; y++ {
				if mask[x][z][y] {
					filled++
				}
			}
		}
	}

	const wantFilled = 260
	if filled != wantFilled {
		t.Fatalf("ellipsoidMask(seed 1) filled %d cells, want %d (sampling no longer matches the reference draw sequence)", filled, wantFilled)
	}
}

func TestShellCellIgnoresOutOfBoundsNeighbours(t *testing.T) {
	var mask lakeMask
	mask[0][0][0] = true

	if shellCell(&mask, 0, 0, 0) {
		t.Fatal("a filled cell is never its own shell")
	}
	if !shellCell(&mask, 1, 0, 0) {
		t.Fatal("expected (1,0,0) to border the filled (0,0,0) cell")
	}
	if shellCell(&mask, lakeWidth-1, lakeWidth-1, lakeHeight-1) {
		t.Fatal("a corner cell with no filled neighbour must not be treated as a shell cell")
	}
}

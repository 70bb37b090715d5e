package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewSavesSpawnPosRaisedBySaveOffset(t *testing.T) {
	spawn := mgl64.Vec3{8, 64, 8}
	p := New("Steve", "world", spawn)

	if want := spawn.Add(mgl64.Vec3{0, saveYOffset, 0}); !closeVec(p.pos, want) {
		t.Fatalf("expected saved pos %v, got %v", want, p.pos)
	}

	pos, stance := p.RestorePos()
	if !closeVec(pos, spawn) {
		t.Fatalf("expected restored pos %v, got %v", spawn, pos)
	}
	wantStance := spawn[1] + stanceYOffset
	if math.Abs(stance-wantStance) > 1e-9 {
		t.Fatalf("expected stance %v, got %v", wantStance, stance)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	p := New("Steve", "world", mgl64.Vec3{0, 64, 0})
	moved := mgl64.Vec3{12.5, 70.25, -4}
	p.Save(moved, 1.5, -0.3)

	pos, stance := p.RestorePos()
	if !closeVec(pos, moved) {
		t.Fatalf("expected restored pos %v, got %v", moved, pos)
	}
	if stance != pos[1]+stanceYOffset {
		t.Fatalf("stance not derived from restored pos: got %v", stance)
	}
	if p.Yaw != 1.5 || p.Pitch != -0.3 {
		t.Fatalf("expected yaw/pitch to be saved, got %v/%v", p.Yaw, p.Pitch)
	}
}

func TestMainSlotWireIndexWrapsHotbarToEnd(t *testing.T) {
	cases := map[int]int{
		0:  27,
		26: 17,
		27: 18,
		35: 26,
	}
	for in, want := range cases {
		if got := MainSlotWireIndex(in); got != want {
			t.Fatalf("MainSlotWireIndex(%d) = %d, want %d", in, got, want)
		}
	}
}

func closeVec(a, b mgl64.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

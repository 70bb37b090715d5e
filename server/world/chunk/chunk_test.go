package chunk

import "testing"

func TestSetBlockRoundTrip(t *testing.T) {
	c := New()
	c.SetBlock(1, 64, 2, 5, 7)
	id, meta := c.Block(1, 64, 2)
	if id != 5 || meta != 7 {
		t.Fatalf("got id=%d meta=%d, want id=5 meta=7", id, meta)
	}
}

func TestOutOfBoundsReturnsAir(t *testing.T) {
	c := New()
	id, meta := c.Block(-1, 0, 0)
	if id != 0 || meta != 0 {
		t.Fatalf("expected air sentinel out of bounds, got id=%d meta=%d", id, meta)
	}
}

func TestHeightMapLazyRecompute(t *testing.T) {
	c := New()
	isAir := func(id uint8) bool { return id == 0 }
	if h := c.HeightMap(0, 0, isAir); h != 0 {
		t.Fatalf("expected empty column height 0, got %d", h)
	}
	c.SetBlock(0, 40, 0, 1, 0)
	if h := c.HeightMap(0, 0, isAir); h != 40 {
		t.Fatalf("expected height 40 after placing a block, got %d", h)
	}
}

func TestPopulatedMask(t *testing.T) {
	c := New()
	if c.FullyPopulated() {
		t.Fatal("new chunk should not be fully populated")
	}
	c.SetPopulatedBit(PopulatedNN)
	c.SetPopulatedBit(PopulatedPN)
	c.SetPopulatedBit(PopulatedNP)
	if c.FullyPopulated() {
		t.Fatal("three of four bits set should not be fully populated")
	}
	c.SetPopulatedBit(PopulatedPP)
	if !c.FullyPopulated() {
		t.Fatal("all four bits set should be fully populated")
	}
}

func TestNibbleArrayPacking(t *testing.T) {
	n := newNibbleArray()
	n.set(0, 0xA)
	n.set(1, 0x3)
	if n.get(0) != 0xA || n.get(1) != 0x3 {
		t.Fatalf("nibble packing broken: got %x, %x", n.get(0), n.get(1))
	}
}

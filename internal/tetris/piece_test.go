package tetris

import "testing"

func TestBaseMasksHaveFourCells(t *testing.T) {
	for _, k := range Kinds {
		m := BaseMask(k)
		if m.Count() != 4 {
			t.Errorf("%s has %d cells, want 4", k, m.Count())
		}
		if m.Size() != k.Size() {
			t.Errorf("%s mask size %d, want %d", k, m.Size(), k.Size())
		}
	}
}

func TestRotateClockwise(t *testing.T) {
	got := BaseMask(KindT).Rotate().String()
	want := "..#\n.##\n..#"
	if got != want {
		t.Errorf("Rotated T:\n%s\nwant:\n%s", got, want)
	}
}

func TestFourRotationsIsIdentity(t *testing.T) {
	for _, k := range []Kind{KindL, KindJ, KindO, KindZ, KindT, KindS} {
		m := BaseMask(k)
		r := m.Rotate().Rotate().Rotate().Rotate()
		if r != m {
			t.Errorf("%s changed after four rotations:\n%s", k, r)
		}
	}
}

func TestORotationIsStable(t *testing.T) {
	m := BaseMask(KindO)
	if m.Rotate() != m {
		t.Error("O should look the same after rotation")
	}
}

func TestIBarToggles(t *testing.T) {
	h := BaseMask(KindI)
	v := h.Rotate()

	for i := 0; i < 4; i++ {
		if !v.At(i, 1) {
			t.Errorf("Vertical I missing cell (%d,1)", i)
		}
	}
	if v.Count() != 4 {
		t.Errorf("Vertical I has %d cells", v.Count())
	}
	if v.Rotate() != h {
		t.Error("Rotating the vertical I should give back the horizontal bar")
	}
}

func TestMaskAtOutside(t *testing.T) {
	m := BaseMask(KindO)
	if m.At(2, 0) || m.At(-1, 0) || m.At(0, 5) {
		t.Error("Cells outside the mask must be empty")
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g1 := NewGenerator(7)
	g2 := NewGenerator(7)

	for i := 0; i < 50; i++ {
		a, b := g1.Next(), g2.Next()
		if a != b {
			t.Fatalf("Piece %d differs:\n%s\nvs\n%s", i, a, b)
		}
		if a.Count() != 4 {
			t.Fatalf("Generated piece has %d cells", a.Count())
		}
	}
}

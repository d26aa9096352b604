package graph

import "testing"

func TestLinearIDRoundTrip(t *testing.T) {
	side := 9
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				id := LinearID(x, y, z, side)
				gx, gy, gz := FromLinearID(id, side)
				if gx != x || gy != y || gz != z {
					t.Fatalf("round trip failed for (%d,%d,%d): got (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestBoxOf(t *testing.T) {
	cases := []struct{ x, y, m, want int }{
		{0, 0, 3, 0},
		{8, 8, 3, 8},
		{3, 0, 3, 1},
		{0, 3, 3, 3},
		{4, 4, 3, 4},
	}
	for _, c := range cases {
		if got := BoxOf(c.x, c.y, c.m); got != c.want {
			t.Errorf("BoxOf(%d,%d,%d) = %d, want %d", c.x, c.y, c.m, got, c.want)
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	// '0' is the blank symbol, so the 36-character alphabet renders the 35
	// digits z = 0..34.
	for z := 0; z < len(symbolAlphabet)-1; z++ {
		sym := SymbolOf(z)
		got, ok := ValueOf(sym)
		if !ok {
			t.Fatalf("ValueOf(%q) reported not ok for z=%d", sym, z)
		}
		if got != z {
			t.Errorf("round trip for z=%d produced symbol %q -> %d", z, sym, got)
		}
	}
}

func TestValueOfBlank(t *testing.T) {
	for _, c := range []byte{'0', '.', ' '} {
		z, ok := ValueOf(c)
		if !ok || z != -1 {
			t.Errorf("ValueOf(%q) = (%d,%v), want (-1,true)", c, z, ok)
		}
	}
}

func TestValueOfInvalid(t *testing.T) {
	if _, ok := ValueOf('!'); ok {
		t.Error("ValueOf('!') should report not ok")
	}
}

func TestValidMagnitude(t *testing.T) {
	if ValidMagnitude(1) {
		t.Error("magnitude 1 should be invalid")
	}
	if !ValidMagnitude(2) || !ValidMagnitude(3) || !ValidMagnitude(5) {
		t.Error("magnitudes 2, 3, 5 should be valid")
	}
	if ValidMagnitude(6) {
		t.Error("magnitude 6 should be invalid")
	}
}

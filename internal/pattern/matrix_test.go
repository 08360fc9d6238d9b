package pattern

import (
	"errors"
	"fmt"
	"testing"
)

func allBinaryKeys() []string {
	keys := make([]string, 0, 16)
	for i := 0; i < 16; i++ {
		keys = append(keys, fmt.Sprintf("%04b", i))
	}
	return keys
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 2}, {2, 0}, {-1, 3}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d,%d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestAtSetBounds(t *testing.T) {
	m, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Set(1, 2, 7); err != nil {
		t.Fatalf("Set(1,2): %v", err)
	}
	if v, err := m.At(1, 2); err != nil || v != 7 {
		t.Fatalf("At(1,2) = %d, %v; want 7", v, err)
	}
	for _, idx := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		if _, err := m.At(idx[0], idx[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("At(%d,%d) error = %v, want ErrIndexOutOfBounds", idx[0], idx[1], err)
		}
		if err := m.Set(idx[0], idx[1], 1); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("Set(%d,%d) error = %v, want ErrIndexOutOfBounds", idx[0], idx[1], err)
		}
	}
}

func TestRotateClockwiseNonSquare(t *testing.T) {
	// 1 2 3
	// 4 5 6
	m, _ := New(2, 3)
	for i := 0; i < 6; i++ {
		_ = m.Set(i/3, i%3, uint8(i+1))
	}
	r := m.RotateClockwise()
	if r.Rows() != 3 || r.Cols() != 2 {
		t.Fatalf("rotated shape %dx%d, want 3x2", r.Rows(), r.Cols())
	}
	// 4 1
	// 5 2
	// 6 3
	if got := r.Encode(); got != "415263" {
		t.Fatalf("rotated = %s, want 415263", got)
	}
	if got := m.Encode(); got != "123456" {
		t.Fatalf("source mutated to %s", got)
	}
}

func TestRotationClosure(t *testing.T) {
	for _, key := range allBinaryKeys() {
		m, err := Decode(key)
		if err != nil {
			t.Fatalf("Decode(%q): %v", key, err)
		}
		r := m
		for i := 0; i < 4; i++ {
			r = r.RotateClockwise()
		}
		if !r.Equal(m) {
			t.Fatalf("four rotations of %s gave %s", key, r.Encode())
		}
	}
}

func TestRotateCorner(t *testing.T) {
	m, _ := Decode("0001")
	want := []string{"0010", "1000", "0100", "0001"}
	for i, w := range want {
		m = m.RotateClockwise()
		if got := m.Encode(); got != w {
			t.Fatalf("rotation %d = %s, want %s", i+1, got, w)
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := Decode("0110")
	b, _ := Decode("0110")
	c, _ := Decode("0111")
	wide, _ := New(1, 4)
	if !a.Equal(b) {
		t.Fatal("identical matrices should be equal")
	}
	if a.Equal(c) {
		t.Fatal("different values should not be equal")
	}
	if a.Equal(wide) {
		t.Fatal("different shapes should not be equal")
	}
	if a.Equal(nil) {
		t.Fatal("nil should not be equal")
	}
}

func TestLargeMatrixMatchesSerialPath(t *testing.T) {
	const n = 200
	m, _ := New(n, n+3)
	for i := 0; i < n; i++ {
		for j := 0; j < n+3; j++ {
			_ = m.Set(i, j, uint8((i*7+j*3)%5))
		}
	}
	r := m.RotateClockwise()
	for i := 0; i < n; i++ {
		for j := 0; j < n+3; j++ {
			src, _ := m.At(i, j)
			dst, err := r.At(j, n-1-i)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", j, n-1-i, err)
			}
			if src != dst {
				t.Fatalf("rotated (%d,%d) = %d, want %d", j, n-1-i, dst, src)
			}
		}
	}

	back := r.RotateClockwise().RotateClockwise().RotateClockwise()
	if !back.Equal(m) {
		t.Fatal("four rotations of a large matrix should be identity")
	}
	_ = back.Set(n-1, n+2, 9)
	if back.Equal(m) {
		t.Fatal("a single differing element must break equality")
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, key := range append(allBinaryKeys(), "012345678", "7") {
		m, err := Decode(key)
		if err != nil {
			t.Fatalf("Decode(%q): %v", key, err)
		}
		if got := m.Encode(); got != key {
			t.Fatalf("Encode(Decode(%q)) = %q", key, got)
		}
	}
}

func TestDecodeInvalidFormat(t *testing.T) {
	for _, key := range []string{"", "010", "01011", "01a1"} {
		if _, err := Decode(key); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Decode(%q) error = %v, want ErrInvalidFormat", key, err)
		}
	}
}

func TestCorners(t *testing.T) {
	m, err := FromCorners(1, 0, 0, 1)
	if err != nil {
		t.Fatalf("FromCorners: %v", err)
	}
	if m.Encode() != "1001" {
		t.Fatalf("FromCorners encode = %s", m.Encode())
	}
	tl, tr, bl, br, ok := m.Corners()
	if !ok || tl != 1 || tr != 0 || bl != 0 || br != 1 {
		t.Fatalf("Corners = %d %d %d %d %v", tl, tr, bl, br, ok)
	}
	big, _ := New(3, 3)
	if _, _, _, _, ok := big.Corners(); ok {
		t.Fatal("Corners should reject 3x3")
	}
}

func TestValuesAboveNineRejected(t *testing.T) {
	m, _ := New(2, 2)
	if err := m.Set(0, 0, 10); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set(0,0,10) error = %v, want ErrInvalidValue", err)
	}
	if got := m.Encode(); got != "0000" {
		t.Fatalf("rejected Set changed the matrix: %s", got)
	}
	if err := m.Set(1, 1, MaxValue); err != nil {
		t.Fatalf("Set(1,1,%d): %v", MaxValue, err)
	}
	back, err := Decode(m.Encode())
	if err != nil || !back.Equal(m) {
		t.Fatalf("Decode(%q) did not round trip: %v", m.Encode(), err)
	}
	if _, err := FromCorners(0, 12, 0, 0); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("FromCorners with 12 error = %v, want ErrInvalidValue", err)
	}
}

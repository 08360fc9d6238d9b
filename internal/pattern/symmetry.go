package pattern

// RotationCount returns how many additional clockwise rotations of m produce
// orientations distinct from m itself: 0 for fully symmetric patterns, 1 for
// 180-degree symmetric ones and 3 for asymmetric ones.
//
// 2x2 patterns use the direct corner comparison. Other sizes compare the
// matrix against its own rotations.
func RotationCount(m *Matrix) int {
	if tl, tr, bl, br, ok := m.Corners(); ok {
		return cornerRotationCount(tl, tr, bl, br)
	}
	return Orientations(m) - 1
}

func cornerRotationCount(tl, tr, bl, br uint8) int {
	if tr == tl && bl == tl && br == tl {
		return 0
	}
	if br == tl && tr == bl {
		return 1
	}
	return 3
}

// Orientations counts the distinct matrices reachable from m by clockwise
// rotation (1, 2 or 4).
func Orientations(m *Matrix) int {
	r := m.RotateClockwise()
	if r.Equal(m) {
		return 1
	}
	if r.RotateClockwise().Equal(m) {
		return 2
	}
	return 4
}

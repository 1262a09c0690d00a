package bitrules

import "testing"

func TestExactPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint8
		width int
		want  string
	}{
		{0b1010, 4, "1 0 1 0"},
		{0xa5, 8, "1 0 1 0 0 1 0 1"},
		{0x01, 1, "1"},
		{0x02, 1, "0"},
		{0xff, 12, "0 0 0 0 1 1 1 1 1 1 1 1"},
		{0xff, 0, ""},
		{0xff, -3, ""},
	}

	for _, tc := range tests {
		got := ExactPattern(tc.value, tc.width).String()
		if got != tc.want {
			t.Fatalf("ExactPattern(%#x, %d)=%q, want %q", tc.value, tc.width, got, tc.want)
		}
	}
}

func TestExactPatternRoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []uint8{0x00, 0x01, 0x80, 0xa5, 0xff} {
		m := CompileMask[uint8](ExactPattern(value, 8))

		for v := 0; v < 256; v++ {
			want := uint8(v) == value
			if got := m.Match(uint8(v)); got != want {
				t.Fatalf("ExactPattern(%#x, 8).Match(%#x)=%v, want %v", value, v, got, want)
			}
		}
	}
}

func TestMaskedPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint8
		care  uint8
		width int
		want  string
	}{
		{0b10100000, 0b11110000, 8, "1 0 1 0 _ _ _ _"},
		{0xff, 0x00, 8, "_ _ _ _ _ _ _ _"},
		{0xff, 0xf0, 8, "1 1 1 1 _ _ _ _"},
		{0x05, 0x07, 4, "_ 1 0 1"},
		{0xff, 0xff, 0, ""},
	}

	for _, tc := range tests {
		got := MaskedPattern(tc.value, tc.care, tc.width).String()
		if got != tc.want {
			t.Fatalf("MaskedPattern(%#x, %#x, %d)=%q, want %q", tc.value, tc.care, tc.width, got, tc.want)
		}
	}
}

func TestMaskedPatternRoundTrip(t *testing.T) {
	t.Parallel()

	m := CompileMask[uint8](MaskedPattern[uint8](0xa0, 0xf0, 8))
	if m.Relevant != 0xf0 || m.Ones != 0xa0 {
		t.Fatalf("mask=%+v, want relevant 0xf0 ones 0xa0", m)
	}

	for v := 0; v < 256; v++ {
		want := uint8(v)&0xf0 == 0xa0
		if got := m.Match(uint8(v)); got != want {
			t.Fatalf("Match(%#x)=%v, want %v", v, got, want)
		}
	}
}

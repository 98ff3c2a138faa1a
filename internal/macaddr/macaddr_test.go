package macaddr

import "testing"

func TestDecode_LeadingZero(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"05", 5},
		{"012", 12},
		{"007", 7},
	}
	for _, c := range cases {
		got, err := Decode(c.in)
		if err != nil {
			t.Errorf("Decode(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Decode(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDecode_WeightedFirstDigit(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"9", 9},
		{"100", 255},
		{"101", 256},
		{"255", 565},
		{"999", 2394},
		{"2001", 511},
	}
	for _, c := range cases {
		got, err := Decode(c.in)
		if err != nil {
			t.Errorf("Decode(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Decode(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{"", "12a", "a12", "12345", "1 2"} {
		if _, err := Decode(in); err == nil {
			t.Errorf("Decode(%q) expected error, got nil", in)
		}
	}
}

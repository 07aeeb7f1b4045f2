package editor

import (
	"encoding/binary"
	"testing"
)

func TestComputeLabels_Integers(t *testing.T) {
	content := []byte{0xFF, 0x01}

	labels := computeLabels(content, 0, binary.LittleEndian, 8, "")
	checks := map[string]string{
		"Signed 8 bit":    "-1",
		"Unsigned 8 bit":  "255",
		"Signed 16 bit":   "511",
		"Unsigned 16 bit": "511",
		"Unsigned 64 bit": "511",
		"Offset":          "0x0",
		"Binary":          "11111111",
		"Octal":           "377",
		"Hexadecimal":     "ff",
	}
	for _, lb := range labels {
		if want, ok := checks[lb.title]; ok && lb.value != want {
			t.Errorf("%s: got %q, want %q", lb.title, lb.value, want)
		}
	}
}

func TestComputeLabels_BigEndian(t *testing.T) {
	content := []byte{0x01, 0x02, 0x03, 0x04}

	labels := computeLabels(content, 0, binary.BigEndian, 8, "")
	for _, lb := range labels {
		if lb.title == "Unsigned 32 bit" {
			if got, want := lb.value, "16909060"; got != want {
				t.Fatalf("u32: got %q, want %q", got, want)
			}
		}
	}
}

func TestComputeLabels_ShortTailReadsZero(t *testing.T) {
	content := []byte{0x01}

	labels := computeLabels(content, 0, binary.LittleEndian, 8, "")
	for _, lb := range labels {
		if lb.title == "Unsigned 64 bit" {
			if got, want := lb.value, "1"; got != want {
				t.Fatalf("u64 with short tail: got %q, want %q", got, want)
			}
		}
	}
}

func TestStreamString(t *testing.T) {
	cases := []struct {
		v            uint64
		length, bits int
		want         string
	}{
		{0b101, 3, 1, "101"},
		{0b101, 5, 1, "00101"},
		{0xFF, 8, 3, "377"},
		{0xAB, 8, 4, "ab"},
		{0x5, 12, 4, "005"},
		{0, 0, 1, ""},
	}
	for _, c := range cases {
		if got := streamString(c.v, c.length, c.bits); got != c.want {
			t.Errorf("streamString(%#x, %d, %d) = %q, want %q", c.v, c.length, c.bits, got, c.want)
		}
	}
}

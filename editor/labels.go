package editor

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// labelCount is the size of the interpretation grid under the panes.
const labelCount = 16

// maxStreamLength caps the bit-stream labels at one machine word.
const maxStreamLength = 64

type label struct {
	title string
	value string
}

// computeLabels interprets the bytes at offset as integers, floats and bit
// streams of the given endianness. Missing trailing bytes read as zero.
func computeLabels(content []byte, offset int, order binary.ByteOrder, streamLen int, notification string) []label {
	var p [8]byte
	copy(p[:], content[offset:])

	u64 := order.Uint64(p[:])
	stream := u64
	if streamLen < maxStreamLength {
		stream &= 1<<uint(streamLen) - 1
	}

	labels := []label{
		{"Signed 8 bit", strconv.FormatInt(int64(int8(p[0])), 10)},
		{"Signed 16 bit", strconv.FormatInt(int64(int16(order.Uint16(p[:2]))), 10)},
		{"Signed 32 bit", strconv.FormatInt(int64(int32(order.Uint32(p[:4]))), 10)},
		{"Signed 64 bit", strconv.FormatInt(int64(u64), 10)},
		{"Unsigned 8 bit", strconv.FormatUint(uint64(p[0]), 10)},
		{"Unsigned 16 bit", strconv.FormatUint(uint64(order.Uint16(p[:2])), 10)},
		{"Unsigned 32 bit", strconv.FormatUint(uint64(order.Uint32(p[:4])), 10)},
		{"Unsigned 64 bit", strconv.FormatUint(u64, 10)},
		{"Float 32 bit", strconv.FormatFloat(float64(math.Float32frombits(order.Uint32(p[:4]))), 'e', -1, 32)},
		{"Float 64 bit", strconv.FormatFloat(math.Float64frombits(u64), 'e', -1, 64)},
		{"Binary", streamString(stream, streamLen, 1)},
		{"Octal", streamString(stream, streamLen, 3)},
		{"Hexadecimal", streamString(stream, streamLen, 4)},
		{"Offset", fmt.Sprintf("0x%X", offset)},
		{"Stream Length", strconv.Itoa(streamLen)},
		{"Notification", notification},
	}
	return labels
}

// streamString renders the low streamLen bits of v with one digit per
// bitsPerDigit bits, zero padded to the stream width.
func streamString(v uint64, streamLen, bitsPerDigit int) string {
	if streamLen == 0 {
		return ""
	}
	width := (streamLen + bitsPerDigit - 1) / bitsPerDigit
	base := 1 << uint(bitsPerDigit)
	s := strconv.FormatUint(v, base)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// lzssEncode compresses input into the flag-octet/token stream described in
// spec.md §3-§4.B, using a searchBuffer for match finding. It reports
// ok=false if the cumulative encoded size would meet or exceed len(input)
// at any flush point, signaling the caller to store input raw instead.
//
// Each group of up to 8 tokens is preceded by one flag byte; bit k (LSB
// first) is 1 for a 2-byte back-reference token, 0 for a 1-byte literal.
// A back-reference word is 16 bits little-endian: the low 4 bits hold
// length-3 (encoded lengths 3..18), the high 12 bits hold offset-1
// (encoded distances 1..4096).
func lzssEncode(input []byte) (output []byte, ok bool) {
	n := len(input)
	if n == 0 {
		return nil, true
	}

	sb := newSearchBuffer(input)

	var flagByte byte
	var flagIdx uint
	tokens := make([]byte, 0, 16)

	i := 0
	for i < n {
		pos, matchLen, found := sb.findBestMatch(i)

		if found && matchLen >= matchThreshold {
			offset := i - pos - 1
			length := matchLen - matchThreshold
			word := uint16(offset<<4) | uint16(length)
			tokens = append(tokens, byte(word), byte(word>>8))
			flagByte |= 1 << flagIdx

			sb.slide(matchLen)
			i += matchLen
		} else {
			tokens = append(tokens, input[i])
			sb.slide(1)
			i++
		}
		flagIdx++

		if flagIdx == 8 || i == n {
			toWrite := len(tokens) + 1
			if len(output)+toWrite >= n {
				return nil, false
			}

			output = append(output, flagByte)
			output = append(output, tokens...)
			tokens = tokens[:0]
			flagByte = 0
			flagIdx = 0
		}
	}

	return output, true
}

// lzssDecode reverses lzssEncode: it reads flag octets and 1-8 tokens per
// octet, expanding back-reference tokens with an overlapping copy loop
// (the source position advances as the destination grows, which is how
// run-length repeats compress). It returns an error on any malformed or
// truncated token rather than producing partial output.
func lzssDecode(encoded []byte) ([]byte, error) {
	var output []byte

	i := 0
	for i < len(encoded) {
		flags := encoded[i]
		i++

		for k := uint(0); k < 8 && i < len(encoded); k++ {
			if flags&(1<<k) != 0 {
				if i+2 > len(encoded) {
					return nil, ErrTruncatedToken
				}
				word := uint16(encoded[i]) | uint16(encoded[i+1])<<8
				i += 2

				length := int(word&0x0F) + matchThreshold
				offset := int(word>>4) + 1
				src := len(output) - offset
				if src < 0 {
					return nil, ErrBadBackReference
				}

				for j := 0; j < length; j++ {
					output = append(output, output[src+j])
				}
			} else {
				output = append(output, encoded[i])
				i++
			}
		}
	}

	return output, nil
}

// lzssEncodeOrFullSize encodes data and reports its nominal encoded size:
// len(out) on success, or len(data) if the encoder aborted. This is the
// shape the adaptive block selector (spec.md §4.D step 5) compares against,
// since an aborted encode is priced the same as "no smaller than raw".
func lzssEncodeOrFullSize(data []byte) (out []byte, size int) {
	out, ok := lzssEncode(data)
	if !ok {
		return nil, len(data)
	}
	return out, len(out)
}

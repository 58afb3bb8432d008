// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// encodeSingleBlock implements the non-adaptive container path (spec.md
// §4.D "Non-adaptive path"): the whole raster is treated as one block.
func encodeSingleBlock(input []byte, width int, model bool) []byte {
	// The C original mutates its input buffer in place when applying the
	// model; we copy first so Compress never surprises the caller by
	// overwriting their raster (spec.md §9 design note).
	work := append([]byte(nil), input...)
	if model {
		height := len(work) / width
		applyDifference(work, width, height)
	}

	out := make([]byte, 4, 9+len(work))
	out[0] = byte(width / widthGranularity)
	if model {
		out[1] = 1
	}
	out[2] = 0
	out[3] = 1

	out = append(out, flagBeenEncoded|flagHorizontal, 0, 0, 0, 0)
	recordStart := len(out) - 5

	encoded, ok := lzssEncode(work)
	if ok {
		out = append(out, encoded...)
	} else {
		out = out[:recordStart+5]
		out = append(out, work...)
		out[recordStart] &^= flagBeenEncoded
	}

	size := len(out) - (recordStart + 5)
	putLE32(out[recordStart+1:recordStart+5], size)

	return out
}

// decodeSingleBlock implements the non-adaptive half of spec.md §4.D
// "Decode contract": one block record covering the whole W×H raster.
func decodeSingleBlock(data []byte, width int, model bool) ([]byte, error) {
	if len(data) < 9 {
		return nil, ErrTruncatedBlock
	}

	flags := data[4]
	size := int(getLE32(data[5:9]))
	if 9+size > len(data) {
		return nil, ErrTruncatedBlock
	}
	payload := data[9 : 9+size]

	var raster []byte
	if flags&flagBeenEncoded != 0 {
		decoded, err := lzssDecode(payload)
		if err != nil {
			return nil, err
		}
		raster = decoded
	} else {
		raster = append([]byte(nil), payload...)
	}

	if model {
		if width == 0 || len(raster)%width != 0 {
			return nil, ErrCorruptBlock
		}
		removeDifference(raster, width, len(raster)/width)
	}

	return raster, nil
}

// encodeAdaptive implements the adaptive container path (spec.md §4.D
// "Adaptive path"): the raster is split into blockDim×blockDim tiles, each
// independently scored as horizontal/vertical/raw and framed as its own
// block record.
func encodeAdaptive(input []byte, width int, model bool) []byte {
	height := len(input) / width
	blocksPerRow := width / blockDim
	blockCount := blocksPerRow * (height / blockDim)

	out := make([]byte, 4, 4+blockCount*5+len(input))
	out[0] = byte(width / widthGranularity)
	if model {
		out[1] = 1
	}
	out[2] = byte(blockCount >> 8)
	out[3] = byte(blockCount)

	hBlock := acquireBlockBuf()
	vBlock := acquireBlockBuf()
	defer releaseBlockBuf(hBlock)
	defer releaseBlockBuf(vBlock)

	for by := 0; by < height; by += blockDim {
		for bx := 0; bx < width; bx += blockDim {
			extractBlock(hBlock, input, width, bx, by)
			copy(vBlock, hBlock)
			transposeBlockInPlace(vBlock)

			if model {
				applyDifference(hBlock, blockDim, blockDim)
				applyDifference(vBlock, blockDim, blockDim)
			}

			hOut, h := lzssEncodeOrFullSize(hBlock)
			vOut, v := lzssEncodeOrFullSize(vBlock)

			var flags byte
			var payload []byte
			switch {
			case h < v:
				flags = flagBeenEncoded | flagHorizontal
				payload = hOut
			case v != blockArea:
				flags = flagBeenEncoded
				payload = vOut
			default:
				flags = flagHorizontal
				payload = hBlock
			}

			out = append(out, flags, 0, 0, 0, 0)
			putLE32(out[len(out)-4:], len(payload))
			out = append(out, payload...)
		}
	}

	return out
}

// decodeAdaptive implements the adaptive half of spec.md §4.D "Decode
// contract": blockCount block records, each expanded to a blockDim×blockDim
// tile and spliced back into the output raster at its row-major position.
func decodeAdaptive(data []byte, width int, model bool, blockCount int) ([]byte, error) {
	blocksPerRow := width / blockDim
	// blockCount must tile the claimed width exactly into whole rows of
	// blockDim×blockDim blocks; otherwise the implied raster isn't a
	// rectangle and spliceBlock would index past the end of output.
	if blocksPerRow <= 0 || blockCount <= 0 || blockCount%blocksPerRow != 0 {
		return nil, ErrCorruptBlock
	}
	output := make([]byte, blockCount*blockArea)

	pos := 4
	for i := 0; i < blockCount; i++ {
		if pos+5 > len(data) {
			return nil, ErrTruncatedBlock
		}
		flags := data[pos]
		size := int(getLE32(data[pos+1 : pos+5]))
		pos += 5
		if pos+size > len(data) {
			return nil, ErrTruncatedBlock
		}
		payload := data[pos : pos+size]
		pos += size

		var block []byte
		if flags&flagBeenEncoded != 0 {
			decoded, err := lzssDecode(payload)
			if err != nil {
				return nil, err
			}
			block = decoded
		} else {
			block = append([]byte(nil), payload...)
		}
		if len(block) != blockArea {
			return nil, ErrCorruptBlock
		}

		if model {
			removeDifference(block, blockDim, blockDim)
		}
		if flags&flagHorizontal == 0 {
			transposeBlockInPlace(block)
		}

		bx := (i % blocksPerRow) * blockDim
		by := (i / blocksPerRow) * blockDim
		spliceBlock(output, block, width, bx, by)
	}

	return output, nil
}

func putLE32(dst []byte, v int) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func getLE32(src []byte) uint32 {
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}

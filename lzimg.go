// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// Compress encodes src (a raw Width-wide, 8-bit grayscale raster) into a
// self-describing container (spec.md §3). opts is required; Width must be
// a positive multiple of 256, at most 65280. When opts.Adaptive is set,
// len(src)/Width (the raster height) must also be a positive multiple of
// 256.
func Compress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	width := opts.Width
	if width <= 0 || width%widthGranularity != 0 || width > maxWidth {
		return nil, ErrInvalidWidth
	}

	if opts.Adaptive {
		if len(src) == 0 || len(src)%width != 0 {
			return nil, ErrInvalidHeight
		}
		height := len(src) / width
		if height <= 0 || height%widthGranularity != 0 {
			return nil, ErrInvalidHeight
		}
		return encodeAdaptive(src, width, opts.Model), nil
	}

	return encodeSingleBlock(src, width, opts.Model), nil
}

// Decompress reverses Compress: it reads the container header and each
// block record, reversing the model/scan transforms that were applied, and
// returns the reconstructed raster. It fails if the container is shorter
// than the 4-byte header or any block record overruns the buffer.
func Decompress(container []byte) ([]byte, error) {
	if len(container) < 4 {
		return nil, ErrTruncatedHeader
	}

	width := int(container[0]) * widthGranularity
	model := container[1] == 1
	blockCount := int(container[2])<<8 | int(container[3])

	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	if blockCount > 1 {
		return decodeAdaptive(container, width, model, blockCount)
	}
	return decodeSingleBlock(container, width, model)
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

/*
Package lzimg implements a lossless codec for raw 8-bit grayscale rasters.

A raster is a contiguous W×H byte buffer in row-major order, one byte per
pixel. Compress applies two optional, independent transforms before entropy
reduction: a per-row differential predictor ("model"), and an adaptive
64×64 block scan that picks row-major or column-major order per tile
("adaptive"). Entropy reduction itself is an LZSS back-reference coder over
a 4096-byte sliding window, self-framed into a small container format.

# Compress

	out, err := lzimg.Compress(raster, &lzimg.Options{
		Width:    256,
		Adaptive: true,
		Model:    true,
	})

Width must be a positive multiple of 256, no larger than 65280. When
Adaptive is set, height (len(raster)/Width) must also be a positive
multiple of 256.

# Decompress

	raster, err := lzimg.Decompress(out)

Decompress reads the container's self-describing header and returns the
original raster, or an error if the container is truncated or malformed.

The codec is synchronous and single-threaded: a single Compress or
Decompress call owns its input buffer and scratch state exclusively, and
performs no I/O of its own.
*/
package lzimg

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// LZSS sliding-window parameters (spec.md §3/§4.A/§4.B).
const (
	windowSize     = 4096 // sliding window size in bytes; also the arena capacity
	lookaheadSize  = 18   // upper bound on match length (and key comparison length)
	matchThreshold = 3    // minimum match length that is worth encoding as a back-reference
)

// Adaptive block-scan parameters (spec.md §3/§4.C/§4.D).
const (
	blockDim  = 64               // block edge length
	blockArea = blockDim * blockDim // bytes per block (4096)
)

// Raster geometry constraints (spec.md §6).
const (
	widthGranularity = 256   // width (and, in adaptive mode, height) must be a multiple of this
	maxWidth         = 65280 // 255 * 256, the largest width/256 that fits one byte
)

// Block-record flag bits (spec.md §3 "Block record").
const (
	flagBeenEncoded byte = 1 << 0 // 1 = LZSS-compressed payload, 0 = raw payload
	flagHorizontal  byte = 1 << 1 // 1 = row-major scan, 0 = column-major (transposed) scan
)

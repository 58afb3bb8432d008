// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// Options configures Compress.
type Options struct {
	// Width is the raster width in bytes/pixels; must be a positive
	// multiple of 256, at most 65280.
	Width int
	// Adaptive enables per-64×64-block row/column scan selection. When
	// set, height (len(src)/Width) must also be a positive multiple of
	// 256.
	Adaptive bool
	// Model enables the per-row differential predictor.
	Model bool
}

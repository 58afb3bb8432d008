// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

import "errors"

// Sentinel errors for Compress preconditions and Decompress malformation.
var (
	// ErrOptionsRequired is returned when Compress is called with nil options.
	ErrOptionsRequired = errors.New("options required: Width must be set")
	// ErrInvalidWidth is returned when Width is not a positive multiple of
	// 256, or exceeds 65280 (the largest value representable as Width/256
	// in one byte).
	ErrInvalidWidth = errors.New("width must be a positive multiple of 256, at most 65280")
	// ErrInvalidHeight is returned in adaptive mode when len(src)/Width is
	// not a positive multiple of 256.
	ErrInvalidHeight = errors.New("height must be a positive multiple of 256 in adaptive mode")

	// ErrTruncatedHeader is returned when the container is shorter than the
	// 4-byte container header.
	ErrTruncatedHeader = errors.New("container shorter than header")
	// ErrTruncatedBlock is returned when a block record's fixed header or
	// declared payload runs past the end of the container.
	ErrTruncatedBlock = errors.New("block record truncated")
	// ErrTruncatedToken is returned when an LZSS token is cut off mid-stream.
	ErrTruncatedToken = errors.New("lzss token truncated")
	// ErrBadBackReference is returned when a decoded back-reference points
	// before the start of the output produced so far.
	ErrBadBackReference = errors.New("lzss back-reference underflows output")
	// ErrCorruptBlock is returned when a decoded adaptive block's length
	// does not match the fixed 64×64 block size, or when an adaptive
	// container's block count does not fill whole rows of blocks for its
	// width.
	ErrCorruptBlock = errors.New("decoded block size mismatch")
)

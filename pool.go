// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

import "sync"

// blockBufPool recycles blockArea-sized scratch buffers across the
// adaptive block loop, avoiding one allocation per 64×64 tile on large
// rasters.
var blockBufPool = sync.Pool{
	New: func() any {
		return make([]byte, blockArea)
	},
}

func acquireBlockBuf() []byte {
	return blockBufPool.Get().([]byte)[:blockArea]
}

func releaseBlockBuf(b []byte) {
	blockBufPool.Put(b) //nolint:staticcheck // fixed-size slice, safe to pool
}

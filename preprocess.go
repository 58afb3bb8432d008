// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

package lzimg

// applyDifference replaces buf[y*width+x] (x>=1) with the wrapping
// difference buf[y*width+x] - buf[y*width+x-1], row by row. The first
// column of each row is left unchanged. Go's uint8 subtraction already
// wraps modulo 256, matching the C original's unsigned-byte arithmetic.
func applyDifference(buf []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := buf[y*width : y*width+width]
		last := row[0]
		for x := 1; x < width; x++ {
			cur := row[x]
			row[x] = cur - last
			last = cur
		}
	}
}

// removeDifference reverses applyDifference via a running prefix sum,
// row by row.
func removeDifference(buf []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := buf[y*width : y*width+width]
		for x := 1; x < width; x++ {
			row[x] += row[x-1]
		}
	}
}

// transposeBlockInPlace transposes a blockDim×blockDim byte matrix in place.
func transposeBlockInPlace(b []byte) {
	for y := 0; y < blockDim; y++ {
		for x := y + 1; x < blockDim; x++ {
			i, j := y*blockDim+x, x*blockDim+y
			b[i], b[j] = b[j], b[i]
		}
	}
}

// extractBlock copies the blockDim×blockDim tile at (bx,by) out of a
// row-major raster of the given width into dst (row-major within the tile).
func extractBlock(dst, raster []byte, width, bx, by int) {
	for y := 0; y < blockDim; y++ {
		srcOff := (by+y)*width + bx
		copy(dst[y*blockDim:(y+1)*blockDim], raster[srcOff:srcOff+blockDim])
	}
}

// spliceBlock writes a blockDim×blockDim tile back into a row-major raster
// of the given width at (bx,by).
func spliceBlock(raster, block []byte, width, bx, by int) {
	for y := 0; y < blockDim; y++ {
		dstOff := (by+y)*width + bx
		copy(raster[dstOff:dstOff+blockDim], block[y*blockDim:(y+1)*blockDim])
	}
}

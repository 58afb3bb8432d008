package lzimg

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// benchmarkRasterSets builds synthetic 256-wide rasters spanning the shapes
// this format treats differently: smooth gradients (compress very well),
// repeating tiles (compress well once windowed), and noise (forces the raw
// fallback). There is no external compatibility corpus for this container
// format, so these fixtures stand in for one.
func benchmarkRasterSets() map[string][]byte {
	const width = 256

	gradient := make([]byte, width*256)
	for i := range gradient {
		gradient[i] = byte(i % width)
	}

	tiled := bytes.Repeat([]byte("ABCDEFGH"), width*256/8)

	noise := make([]byte, width*256)
	rand.New(rand.NewSource(7)).Read(noise)

	return map[string][]byte{
		"gradient": gradient,
		"tiled":    tiled,
		"noise":    noise,
	}
}

func BenchmarkCompress(b *testing.B) {
	for name, data := range benchmarkRasterSets() {
		for _, adaptive := range []bool{false, true} {
			for _, model := range []bool{false, true} {
				caseName := fmt.Sprintf("%s/adaptive-%v/model-%v", name, adaptive, model)
				opts := &Options{Width: 256, Adaptive: adaptive, Model: model}

				b.Run(caseName, func(b *testing.B) {
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))
					b.ResetTimer()

					for i := 0; i < b.N; i++ {
						if _, err := Compress(data, opts); err != nil {
							b.Fatalf("Compress failed: %v", err)
						}
					}
				})
			}
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for name, data := range benchmarkRasterSets() {
		for _, adaptive := range []bool{false, true} {
			opts := &Options{Width: 256, Adaptive: adaptive}
			compressed, err := Compress(data, opts)
			if err != nil {
				b.Fatalf("setup Compress failed for %s adaptive=%v: %v", name, adaptive, err)
			}

			caseName := fmt.Sprintf("%s/adaptive-%v", name, adaptive)
			b.Run(caseName, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Decompress(compressed); err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	data := bytes.Repeat([]byte("RoundTripRaster"), 4370)[:256*256]
	opts := &Options{Width: 256, Adaptive: true, Model: true}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Compress(data, opts)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		if _, err := Decompress(compressed); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}

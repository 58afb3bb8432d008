// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzimg

// Command lzimg is a thin CLI collaborator around the lzimg package: it
// parses flags, reads the input file, calls Compress or Decompress, and
// writes the result. All format logic lives in the library; this binary
// owns only argument handling, I/O, and progress/logging.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/woozymasta/lzimg"
)

var (
	compressFlag   bool
	decompressFlag bool
	inputPath      string
	outputPath     string
	width          int
	modelFlag      bool
	adaptiveFlag   bool
	quiet          bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lzimg",
		Short:         "Compress or decompress raw 8-bit grayscale rasters",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}

	cmd.Flags().BoolVarP(&compressFlag, "compress", "c", false, "compression mode")
	cmd.Flags().BoolVarP(&decompressFlag, "decompress", "d", false, "decompression mode")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (required)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "image width in bytes, required with -c (multiple of 256)")
	cmd.Flags().BoolVarP(&modelFlag, "model", "m", false, "apply the per-row differential predictor")
	cmd.Flags().BoolVarP(&adaptiveFlag, "adaptive", "a", false, "apply the adaptive 64x64 block scan")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("compress", "decompress")
	cmd.MarkFlagsOneRequired("compress", "decompress")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if compressFlag && width <= 0 {
		return fmt.Errorf("-w is required with -c and must be a positive multiple of 256")
	}

	input, err := readFileWithProgress(inputPath)
	if err != nil {
		logger.Error("reading input file", zap.String("path", inputPath), zap.Error(err))
		return err
	}

	var output []byte
	if compressFlag {
		logger.Info("compressing",
			zap.String("input", inputPath),
			zap.Int("width", width),
			zap.Bool("adaptive", adaptiveFlag),
			zap.Bool("model", modelFlag),
			zap.Int("bytes_in", len(input)),
		)

		output, err = lzimg.Compress(input, &lzimg.Options{
			Width:    width,
			Adaptive: adaptiveFlag,
			Model:    modelFlag,
		})
		if err != nil {
			logger.Error("compress failed", zap.Error(err))
			return err
		}

		ratio := 0.0
		if len(input) > 0 {
			ratio = float64(len(output)) / float64(len(input)) * 100
		}
		logger.Info("compressed",
			zap.Int("bytes_in", len(input)),
			zap.Int("bytes_out", len(output)),
			zap.Float64("ratio_pct", ratio),
		)
	} else {
		logger.Info("decompressing", zap.String("input", inputPath), zap.Int("bytes_in", len(input)))

		output, err = lzimg.Decompress(input)
		if err != nil {
			logger.Error("decompress failed", zap.Error(err))
			return err
		}

		logger.Info("decompressed", zap.Int("bytes_in", len(input)), zap.Int("bytes_out", len(output)))
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		logger.Error("writing output file", zap.String("path", outputPath), zap.Error(err))
		return err
	}

	return nil
}

// readFileWithProgress reads path into memory, driving a byte-count
// progress bar (suppressed with -q, or when stderr is not a terminal, via
// progressbar's own auto-detection) as it goes.
func readFileWithProgress(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Size()))

	if quiet {
		_, err = io.Copy(&buf, f)
		return buf.Bytes(), err
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading "+path)
	_, err = io.Copy(io.MultiWriter(&buf, bar), f)
	return buf.Bytes(), err
}

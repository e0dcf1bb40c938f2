package utils

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Magic bytes for compressed listings
var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// GzipCompress compresses data using gzip
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ZstdCompress compresses data using zstandard
func ZstdCompress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

// XZCompress compresses data using xz
func XZCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CompressFor compresses data according to the suffix of path
// (.gz, .zst or .xz). Other paths get data back unchanged.
func CompressFor(path string, data []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return GzipCompress(data)
	case strings.HasSuffix(path, ".zst"):
		return ZstdCompress(data)
	case strings.HasSuffix(path, ".xz"):
		return XZCompress(data)
	default:
		return data, nil
	}
}

// Decompress detects gzip, zstd and xz data by magic bytes and returns
// the decompressed content. Anything else is returned as is.
func Decompress(data []byte) ([]byte, error) {
	var r io.Reader

	switch {
	case bytes.HasPrefix(data, gzipMagic):
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gr.Close()
		r = gr
	case bytes.HasPrefix(data, zstdMagic):
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		defer zr.Close()
		r = zr
	case bytes.HasPrefix(data, xzMagic):
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open xz stream: %w", err)
		}
		r = xr
	default:
		return data, nil
	}

	return io.ReadAll(r)
}

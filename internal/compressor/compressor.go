// Package compressor shrinks report payloads before they hit the store.
// Diff records are JSON with long repeated text runs, so lz4 pays for
// itself on anything beyond trivial documents.
package compressor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("compression failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("compression failed: %v", err)
	}
	return buf.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(data))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompression failed: %v", err)
	}
	return buf.Bytes(), nil
}

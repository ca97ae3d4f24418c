package storage

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptSave is returned when a save blob cannot be decoded.
var ErrCorruptSave = errors.New("storage: corrupt save blob")

// maxSaveSize bounds the declared uncompressed length of a blob.
const maxSaveSize = 16 << 20

// CompressString encodes text as a save blob: base64 of the 4-byte
// little-endian uncompressed length followed by the gzip stream.
func CompressString(text string) (string, error) {
	raw := []byte(text)

	var buf bytes.Buffer
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(raw)))
	buf.Write(length[:])

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("storage: cannot compress save: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("storage: cannot compress save: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecompressString decodes a save blob produced by CompressString.
func DecompressString(blob string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if len(data) < 4 {
		return "", fmt.Errorf("%w: missing length prefix", ErrCorruptSave)
	}

	length := binary.LittleEndian.Uint32(data[:4])
	if length > maxSaveSize {
		return "", fmt.Errorf("%w: declared length %d too large", ErrCorruptSave, length)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data[4:]))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	defer zr.Close()

	out := make([]byte, length)
	if _, err := io.ReadFull(zr, out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	return string(out), nil
}

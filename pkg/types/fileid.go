package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// FileID is a SHA-1 content hash (20 bytes) identifying one version of a
// source file. The incremental build cache is keyed by it.
type FileID [20]byte

// ComputeFileID hashes file content: SHA-1("dspa {len}\0{content}").
func ComputeFileID(content []byte) FileID {
	h := sha1.New()
	fmt.Fprintf(h, "dspa %d\x00", len(content))
	h.Write(content)

	var id FileID
	copy(id[:], h.Sum(nil))
	return id
}

// Hex returns the 40-character hex string.
func (id FileID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements Stringer (returns Hex()).
func (id FileID) String() string {
	return id.Hex()
}

// ParseFileID parses a 40-char hex string back to a FileID.
func ParseFileID(hexStr string) (FileID, error) {
	if len(hexStr) != 40 {
		return FileID{}, fmt.Errorf("invalid file ID length: expected 40, got %d", len(hexStr))
	}
	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return FileID{}, fmt.Errorf("invalid hex string: %w", err)
	}
	var id FileID
	copy(id[:], decoded)
	return id, nil
}

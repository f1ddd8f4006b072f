package cache

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Key derives a cache key from the given parts using BLAKE3-256.
// Parts are length-prefixed so ("ab","c") and ("a","bc") produce different keys.
// The result is 64 lowercase hex characters, safe for use as a file name.
func Key(parts ...[]byte) string {
	h := blake3.New()
	var lenBuf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(p)))
		_, _ = h.Write(lenBuf[:])
		_, _ = h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

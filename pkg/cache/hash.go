package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint hashes the dimensions and pixel content of an entry. Two
// entries with equal fingerprints display identically.
func Fingerprint(e *Entry) string {
	img := e.Pixmap.Image()
	h := sha256.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[:4], uint32(e.Pixmap.Width()))
	binary.BigEndian.PutUint32(dims[4:], uint32(e.Pixmap.Height()))
	h.Write(dims[:])
	h.Write(img.Pix)
	return hex.EncodeToString(h.Sum(nil))
}

package tutorial

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns a deterministic BLAKE3 hash of the section content.
// Null delimiters keep the slug/title/body boundaries unambiguous.
func (s Section) Digest() string {
	h := blake3.New()
	h.Write([]byte(s.Slug))
	h.Write([]byte{0})
	h.Write([]byte(s.Title))
	h.Write([]byte{0})
	h.Write([]byte(s.Body))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

// Digest covers the guide header and every topic in order; a change
// anywhere in the catalog changes it.
func (c Catalog) Digest() string {
	h := blake3.New()
	h.Write([]byte(c.Title))
	h.Write([]byte{0})
	h.Write([]byte(c.Tagline))
	for _, s := range c.Topics() {
		h.Write([]byte{0})
		h.Write([]byte(s.Digest()))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

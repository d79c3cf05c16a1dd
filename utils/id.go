package utils

import (
	"crypto/rand"
	"io"
	"log"
)

const surpriseIDLength = 8

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSurpriseID returns a short random token used as the shareable URL path
// segment and upload path prefix of a surprise. Collisions are not checked
// against existing records; the primary-key constraint catches the
// astronomically unlikely duplicate at insert time.
func NewSurpriseID() string {
	return newSurpriseID(rand.Reader)
}

func newSurpriseID(r io.Reader) string {
	b := make([]byte, surpriseIDLength)
	if _, err := io.ReadFull(r, b); err != nil {
		// An empty id would silently become the upload path prefix and
		// record id; a broken entropy source is not recoverable here.
		log.Panic("failed to generate surprise id: " + err.Error())
	}
	for i, v := range b {
		b[i] = base36[int(v)%len(base36)]
	}
	return string(b)
}

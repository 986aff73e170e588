package utils

import (
	"crypto/rand"
	"math/big"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferenceLength is the length of a booking reference.
const ReferenceLength = 8

// GenerateBookingReference returns a random booking reference drawn
// uniformly from A-Z and 0-9.
func GenerateBookingReference() (string, error) {
	ref := make([]byte, ReferenceLength)
	max := big.NewInt(int64(len(referenceCharset)))
	for i := range ref {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		ref[i] = referenceCharset[n.Int64()]
	}
	return string(ref), nil
}

package booking

import (
	"crypto/rand"
	"math/big"
)

const (
	codeLength  = 8
	codeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewConfirmationCode returns an 8-character uppercase alphanumeric pickup
// code. Codes are not guaranteed globally unique; collisions are accepted.
func NewConfirmationCode() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is effectively unrecoverable; fall back to
			// a fixed character rather than panicking in the booking path.
			buf[i] = codeCharset[0]
			continue
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf)
}

package auth

import (
	"crypto/rand"
	"math/big"
)

// VerificationCodeLength is the fixed length of email verification codes.
const VerificationCodeLength = 6

// GenerateVerificationCode returns a string of exactly six digits drawn
// uniformly from crypto/rand, suitable as a single-use security token.
func GenerateVerificationCode() (string, error) {
	const digits = "0123456789"

	code := make([]byte, VerificationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}

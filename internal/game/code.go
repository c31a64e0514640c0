package game

import "crypto/rand"

// Card-flavored alphabet, no ambiguous characters.
const codeAlphabet = "ACEKQJ23456789"

const codeLength = 5

// NewCode generates a short join code. Uniqueness is enforced by the store;
// the caller retries on collision.
func NewCode() string {
	buf := make([]byte, codeLength)
	rand.Read(buf)

	code := make([]byte, codeLength)
	for i, b := range buf {
		code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(code)
}

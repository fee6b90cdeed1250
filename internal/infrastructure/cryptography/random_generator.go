package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	cryptoDomain "github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
)

// fragmentSize is the number of random bytes sampled per fragment
const fragmentSize = 16

// randomStringGenerator draws base-36 strings from a cryptographically secure source
type randomStringGenerator struct {
	reader io.Reader
}

// NewRandomStringGenerator creates a generator backed by crypto/rand
func NewRandomStringGenerator() cryptoDomain.RandomStringGenerator {
	return &randomStringGenerator{reader: rand.Reader}
}

// RandomString samples random fragments over RandomAlphabet and concatenates them
// until at least length characters are available, then truncates to exactly length.
func (g *randomStringGenerator) RandomString(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", cryptoDomain.ErrInvalidLength, length)
	}

	alphabetSize := len(cryptoDomain.RandomAlphabet)
	// bytes at or above this bound are rejected so every character is equally likely
	limit := 256 - 256%alphabetSize

	var sb strings.Builder
	sb.Grow(length + fragmentSize)
	fragment := make([]byte, fragmentSize)
	for sb.Len() < length {
		if _, err := io.ReadFull(g.reader, fragment); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range fragment {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(cryptoDomain.RandomAlphabet[int(b)%alphabetSize])
		}
	}

	return sb.String()[:length], nil
}

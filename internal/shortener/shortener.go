package shortener

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	Alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	CodeLength = 6

	// Bytes at or above this value are discarded so every symbol is equally likely.
	rejectAbove = 256 - 256%len(Alphabet)
)

type Shortener struct {
	length int
	rand   io.Reader
}

func New() *Shortener {
	return &Shortener{length: CodeLength, rand: rand.Reader}
}

// NewWithReader is New with an injectable entropy source.
func NewWithReader(r io.Reader) *Shortener {
	return &Shortener{length: CodeLength, rand: r}
}

// Generate draws one code; callers own the retry-until-unique loop.
func (s *Shortener) Generate() (string, error) {
	code := make([]byte, 0, s.length)
	buf := make([]byte, s.length*2)

	for len(code) < s.length {
		if _, err := io.ReadFull(s.rand, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == s.length {
				break
			}
		}
	}
	return string(code), nil
}

// IsValid reports whether code is non-empty and only ASCII letters and digits.
func IsValid(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

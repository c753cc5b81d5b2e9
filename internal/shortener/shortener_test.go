package shortener_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/shortener"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	s := shortener.New()

	for range 1000 {
		code, err := s.Generate()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	s := shortener.New()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		code, err := s.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 62^6 possible codes; a collision in 1000 draws is ~1e-5 likely.
	assert.GreaterOrEqual(t, len(seen), 999)
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	// 248 and above are discarded; 0 -> 'A', 61 -> '9', 62 -> 'A'.
	src := bytes.NewReader([]byte{
		255, 250, 248, 0, 61, 62, 1, 2, 3,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	s := shortener.NewWithReader(src)

	code, err := s.Generate()
	require.NoError(t, err)
	assert.Equal(t, "A9ABCD", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_ReaderError(t *testing.T) {
	s := shortener.NewWithReader(failingReader{})

	_, err := s.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"abc123", true},
		{"ABCdef", true},
		{"x", true},
		{"", false},
		{"ab!123", false},
		{"ab-123", false},
		{"ab_123", false},
		{"ab 123", false},
		{"ünï", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, shortener.IsValid(tt.code))
		})
	}
}

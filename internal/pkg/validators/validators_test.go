//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cbcInput struct {
	Key string `validate:"aeskey"`
	IV  string `validate:"aesiv"`
}

type rsaInput struct {
	KeySize int `validate:"rsakeysize"`
}

func TestAESValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name          string
		input         cbcInput
		expectedError bool
	}{
		{"aes-128", cbcInput{Key: "0123456789abcdef", IV: "fedcba9876543210"}, false},
		{"aes-192", cbcInput{Key: "0123456789abcdef01234567", IV: "fedcba9876543210"}, false},
		{"aes-256", cbcInput{Key: "0123456789abcdef0123456789abcdef", IV: "fedcba9876543210"}, false},
		{"short key", cbcInput{Key: "short", IV: "fedcba9876543210"}, true},
		{"multibyte key counts bytes", cbcInput{Key: "密钥密钥密钥12", IV: "fedcba9876543210"}, true},
		{"short iv", cbcInput{Key: "0123456789abcdef", IV: "iv"}, true},
		{"empty", cbcInput{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRSAKeySizeValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	for _, size := range []int{1024, 2048, 3072, 4096} {
		assert.NoError(t, validate.Struct(rsaInput{KeySize: size}), "size %d", size)
	}
	for _, size := range []int{0, 512, 2000, 8192} {
		assert.Error(t, validate.Struct(rsaInput{KeySize: size}), "size %d", size)
	}
}

// Package validators holds custom go-playground/validator tags for key material.
package validators

import (
	"fmt"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by Register
const (
	TagAESKey     = "aeskey"
	TagAESIV      = "aesiv"
	TagRSAKeySize = "rsakeysize"
)

// AESKeyValidation accepts strings whose UTF-8 encoding is 16, 24 or 32 bytes.
func AESKeyValidation(fl validator.FieldLevel) bool {
	switch len(fl.Field().String()) {
	case crypto.AESKeySize128, crypto.AESKeySize192, crypto.AESKeySize256:
		return true
	default:
		return false
	}
}

// AESIVValidation accepts strings whose UTF-8 encoding is exactly 16 bytes.
func AESIVValidation(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) == crypto.AESIVSize
}

// RSAKeySizeValidation accepts the RSA modulus sizes the CLI generates.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}

// New returns a validator with all custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	for tag, fn := range map[string]validator.Func{
		TagAESKey:     AESKeyValidation,
		TagAESIV:      AESIVValidation,
		TagRSAKeySize: RSAKeySizeValidation,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return validate, nil
}

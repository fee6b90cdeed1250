package crypto

import "errors"

var (
	// ErrInvalidKey is returned when key material cannot be used by the cipher
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidIV is returned when an initialization vector has the wrong size
	ErrInvalidIV = errors.New("invalid initialization vector")

	// ErrInvalidLength is returned for a negative random string length
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCiphertext is returned when ciphertext is not decodable or not block aligned
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrInvalidPadding is returned when PKCS#7 padding does not verify after decryption
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrMalformedUTF8 is returned when decrypted bytes are not valid UTF-8 text
	ErrMalformedUTF8 = errors.New("malformed UTF-8 data")

	// ErrDecryption is returned when RSA decryption fails
	ErrDecryption = errors.New("decryption failed")
)

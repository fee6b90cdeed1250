package app

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/infrastructure/cryptography"
)

// CryptoFacade exposes string based convenience entry points over the RSA and AES processors.
// It keeps no key material between calls and is safe for concurrent use.
type CryptoFacade struct {
	rsaProcessor crypto.RSAProcessor
	aesProcessor crypto.AESProcessor
	generator    crypto.RandomStringGenerator
}

// NewCryptoFacade creates a new CryptoFacade instance
func NewCryptoFacade(
	rsaProcessor crypto.RSAProcessor,
	aesProcessor crypto.AESProcessor,
	generator crypto.RandomStringGenerator,
) (*CryptoFacade, error) {
	if rsaProcessor == nil || aesProcessor == nil || generator == nil {
		return nil, errors.New("rsa processor, aes processor and random string generator are required")
	}

	return &CryptoFacade{
		rsaProcessor: rsaProcessor,
		aesProcessor: aesProcessor,
		generator:    generator,
	}, nil
}

// NewDefaultCryptoFacade wires the facade to the standard processors
func NewDefaultCryptoFacade() *CryptoFacade {
	return &CryptoFacade{
		rsaProcessor: cryptography.NewRSAProcessor(),
		aesProcessor: cryptography.NewAESProcessor(),
		generator:    cryptography.NewRandomStringGenerator(),
	}
}

// PublicEncrypt encrypts data with a PEM encoded RSA public key and returns base64 ciphertext.
// Data longer than the key size minus 11 bytes fails; callers segment large payloads.
func (f *CryptoFacade) PublicEncrypt(data, publicKey string) (string, error) {
	key, err := f.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	encrypted, err := f.rsaProcessor.Encrypt([]byte(data), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// PrivateDecrypt decrypts base64 ciphertext produced by PublicEncrypt with the matching private key.
func (f *CryptoFacade) PrivateDecrypt(data, privateKey string) (string, error) {
	key, err := f.rsaProcessor.ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	ciphertext, err := decodeCiphertext(data)
	if err != nil {
		return "", err
	}

	decrypted, err := f.rsaProcessor.Decrypt(ciphertext, key)
	if err != nil {
		return "", err
	}
	return string(decrypted), nil
}

// RandomString returns exactly length characters from [0-9a-z].
func (f *CryptoFacade) RandomString(length int) (string, error) {
	return f.generator.RandomString(length)
}

// GenerateAESKey returns a random 16 character AES key.
func (f *CryptoFacade) GenerateAESKey() (string, error) {
	return f.generator.RandomString(crypto.GeneratedKeyLength)
}

// GenerateAESIV returns a random 16 character initialization vector.
func (f *CryptoFacade) GenerateAESIV() (string, error) {
	return f.generator.RandomString(crypto.GeneratedKeyLength)
}

// CoerceToString renders a value as the text that gets encrypted.
func (f *CryptoFacade) CoerceToString(value crypto.Value) (string, error) {
	return value.Text()
}

// EncryptAESECB encrypts the value with AES-ECB and PKCS#7 padding, returning base64 ciphertext.
func (f *CryptoFacade) EncryptAESECB(data crypto.Value, key string) (string, error) {
	plainText, err := data.Text()
	if err != nil {
		return "", err
	}

	encrypted, err := f.aesProcessor.EncryptECB([]byte(plainText), []byte(key))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// DecryptAESECB reverses EncryptAESECB.
func (f *CryptoFacade) DecryptAESECB(ciphertext, key string) (string, error) {
	raw, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	decrypted, err := f.aesProcessor.DecryptECB(raw, []byte(key))
	if err != nil {
		return "", err
	}
	return utf8Text(decrypted)
}

// EncryptAESCBC encrypts the value with AES-CBC and zero padding, returning base64 ciphertext.
func (f *CryptoFacade) EncryptAESCBC(data crypto.Value, key, iv string) (string, error) {
	plainText, err := data.Text()
	if err != nil {
		return "", err
	}

	encrypted, err := f.aesProcessor.EncryptCBC([]byte(plainText), []byte(key), []byte(iv))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// DecryptAESCBC reverses EncryptAESCBC. Trailing NUL characters of the original text are lost.
func (f *CryptoFacade) DecryptAESCBC(ciphertext, key, iv string) (string, error) {
	raw, err := decodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	decrypted, err := f.aesProcessor.DecryptCBC(raw, []byte(key), []byte(iv))
	if err != nil {
		return "", err
	}
	return utf8Text(decrypted)
}

func decodeCiphertext(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrInvalidCiphertext, err)
	}
	return raw, nil
}

func utf8Text(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", crypto.ErrMalformedUTF8
	}
	return string(b), nil
}

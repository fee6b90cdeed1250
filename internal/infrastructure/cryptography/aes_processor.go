package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct{}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor() cryptoDomain.AESProcessor {
	return &aesProcessor{}
}

// EncryptECB encrypts plaintext using AES-ECB with PKCS#7 padding.
func (a *aesProcessor) EncryptECB(plainText, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plainText, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Encrypt(ciphertext[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}

	return ciphertext, nil
}

// DecryptECB decrypts AES-ECB ciphertext and strips the PKCS#7 padding.
func (a *aesProcessor) DecryptECB(ciphertext, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of the block size", cryptoDomain.ErrInvalidCiphertext, len(ciphertext))
	}

	plainText := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		block.Decrypt(plainText[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
	}

	return pkcs7Unpad(plainText, aes.BlockSize)
}

// EncryptCBC encrypts plaintext using AES-CBC with zero padding.
func (a *aesProcessor) EncryptCBC(plainText, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}

	padded := zeroPad(plainText, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptCBC decrypts AES-CBC ciphertext and strips trailing zero bytes.
// Plaintext that itself ended in zero bytes loses them.
func (a *aesProcessor) DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if err := checkIV(iv); err != nil {
		return nil, err
	}

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of the block size", cryptoDomain.ErrInvalidCiphertext, len(ciphertext))
	}

	plainText := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plainText, ciphertext)

	return bytes.TrimRight(plainText, "\x00"), nil
}

func newBlock(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrInvalidKey, err)
	}
	return block, nil
}

func checkIV(iv []byte) error {
	if len(iv) != aes.BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", cryptoDomain.ErrInvalidIV, len(iv), aes.BlockSize)
	}
	return nil
}

// pkcs7Pad always appends between 1 and blockSize bytes
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, cryptoDomain.ErrInvalidPadding
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, cryptoDomain.ErrInvalidPadding
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, cryptoDomain.ErrInvalidPadding
		}
	}

	return data[:len(data)-padding], nil
}

// zeroPad leaves block aligned input (including empty input) untouched
func zeroPad(data []byte, blockSize int) []byte {
	padded := make([]byte, len(data), len(data)+blockSize)
	copy(padded, data)
	if rem := len(data) % blockSize; rem != 0 {
		padded = append(padded, make([]byte, blockSize-rem)...)
	}
	return padded
}

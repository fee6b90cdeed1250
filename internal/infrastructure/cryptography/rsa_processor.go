package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	cryptoDomain "github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct{}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor() cryptoDomain.RSAProcessor {
	return &rsaProcessor{}
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}

// Encrypt encrypts plaintext using RSA PKCS#1 v1.5 with the public key.
// Plaintext longer than the key size minus 11 bytes is rejected.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	if maxSize := publicKey.Size() - cryptoDomain.RSAPKCS1v15Overhead; len(plainText) > maxSize {
		return nil, fmt.Errorf("failed to encrypt data: %w (%d bytes, max %d)", rsa.ErrMessageTooLong, len(plainText), maxSize)
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	return encrypted, nil
}

// Decrypt decrypts RSA PKCS#1 v1.5 ciphertext using the private key.
// Ciphertext shorter than the modulus is left-padded with zeros first.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	size := privateKey.Size()
	if len(ciphertext) == 0 || len(ciphertext) > size {
		return nil, fmt.Errorf("%w: length %d does not fit a %d byte modulus", cryptoDomain.ErrInvalidCiphertext, len(ciphertext), size)
	}
	if len(ciphertext) < size {
		padded := make([]byte, size)
		copy(padded[size-len(ciphertext):], ciphertext)
		ciphertext = padded
	}

	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrDecryption, err)
	}
	return decrypted, nil
}

// ParsePublicKey parses an RSA public key in PKCS#1 or PKIX format.
// A private key is accepted too and yields its public half.
func (r *rsaProcessor) ParsePublicKey(key string) (*rsa.PublicKey, error) {
	der, err := decodeKeyMaterial(key)
	if err != nil {
		return nil, err
	}

	// Try to parse as PKCS#1 format first
	publicKey, err := x509.ParsePKCS1PublicKey(der)
	if err == nil {
		return publicKey, nil
	}

	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err == nil {
		publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoDomain.ErrInvalidKey)
		}
		return publicKey, nil
	}

	privateKey, privErr := parsePrivateKeyDER(der)
	if privErr != nil {
		return nil, fmt.Errorf("%w: unable to parse public key in either PKCS#1 or PKIX format: %w", cryptoDomain.ErrInvalidKey, err)
	}
	return &privateKey.PublicKey, nil
}

// ParsePrivateKey parses an RSA private key in PKCS#1 or PKCS#8 format.
func (r *rsaProcessor) ParsePrivateKey(key string) (*rsa.PrivateKey, error) {
	der, err := decodeKeyMaterial(key)
	if err != nil {
		return nil, err
	}
	return parsePrivateKeyDER(der)
}

// EncodePrivateKey encodes the RSA private key as PEM (PKCS#1 format).
func (r *rsaProcessor) EncodePrivateKey(privateKey *rsa.PrivateKey) string {
	privKeyPem := &pem.Block{
		Type:  cryptoDomain.PEMTypeRSAPrivateKey,
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	return string(pem.EncodeToMemory(privKeyPem))
}

// EncodePublicKey encodes the RSA public key as PEM (PKIX format).
func (r *rsaProcessor) EncodePublicKey(publicKey *rsa.PublicKey) (string, error) {
	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}

	pubKeyPem := &pem.Block{
		Type:  cryptoDomain.PEMTypePublicKey,
		Bytes: pubKeyBytes,
	}
	return string(pem.EncodeToMemory(pubKeyPem)), nil
}

func parsePrivateKeyDER(der []byte) (*rsa.PrivateKey, error) {
	// First try to parse as PKCS#1 format
	privateKey, err := x509.ParsePKCS1PrivateKey(der)
	if err == nil {
		return privateKey, nil
	}

	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key in either PKCS#1 or PKCS#8 format: %w", cryptoDomain.ErrInvalidKey, err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoDomain.ErrInvalidKey)
	}
	return privateKey, nil
}

// decodeKeyMaterial accepts a PEM block or the bare base64 body of one
func decodeKeyMaterial(key string) ([]byte, error) {
	if block, _ := pem.Decode([]byte(key)); block != nil {
		return block.Bytes, nil
	}

	body := strings.Join(strings.Fields(key), "")
	if body == "" {
		return nil, fmt.Errorf("%w: empty key", cryptoDomain.ErrInvalidKey)
	}

	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse PEM block containing the key", cryptoDomain.ErrInvalidKey)
	}
	return der, nil
}

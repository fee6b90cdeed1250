package crypto

import "crypto/rsa"

// AESProcessor handles AES symmetric encryption operations in ECB and CBC mode.
// Implementations must not retain keys between calls.
type AESProcessor interface {
	// EncryptECB encrypts plaintext using AES-ECB with PKCS#7 padding.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	EncryptECB(plainText, key []byte) ([]byte, error)

	// DecryptECB decrypts AES-ECB ciphertext and strips the PKCS#7 padding.
	DecryptECB(ciphertext, key []byte) ([]byte, error)

	// EncryptCBC encrypts plaintext using AES-CBC with zero padding and a 16 byte IV.
	EncryptCBC(plainText, key, iv []byte) ([]byte, error)

	// DecryptCBC decrypts AES-CBC ciphertext and strips all trailing zero bytes.
	DecryptCBC(ciphertext, key, iv []byte) ([]byte, error)
}

// RSAProcessor handles RSA asymmetric encryption with PKCS#1 v1.5 padding.
// NOTE: RSA can only encrypt small amounts of data (< key size - 11 bytes); callers segment larger payloads.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext with the public key.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts ciphertext with the private key.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// ParsePublicKey parses a PEM (or bare base64 DER) public key in PKCS#1 or PKIX format.
	ParsePublicKey(key string) (*rsa.PublicKey, error)

	// ParsePrivateKey parses a PEM (or bare base64 DER) private key in PKCS#1 or PKCS#8 format.
	ParsePrivateKey(key string) (*rsa.PrivateKey, error)

	// EncodePrivateKey encodes the private key as a PKCS#1 PEM string.
	EncodePrivateKey(privateKey *rsa.PrivateKey) string

	// EncodePublicKey encodes the public key as a PKIX PEM string.
	EncodePublicKey(publicKey *rsa.PublicKey) (string, error)
}

// RandomStringGenerator produces strings over RandomAlphabet.
type RandomStringGenerator interface {
	// RandomString returns exactly length characters.
	RandomString(length int) (string, error)
}

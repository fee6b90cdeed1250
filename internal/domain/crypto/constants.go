package crypto

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmRSA represents the RSA encryption algorithm
const AlgorithmRSA = "RSA"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// AESIVSize is the initialization vector size in bytes used for CBC mode
const AESIVSize = 16

// GeneratedKeyLength is the number of characters of a generated AES key or IV
const GeneratedKeyLength = 16

// RSAKeySize2048 is the default RSA modulus size in bits
const RSAKeySize2048 = 2048

// RSAPKCS1v15Overhead is the number of bytes PKCS#1 v1.5 padding takes from the modulus
const RSAPKCS1v15Overhead = 11

// RandomAlphabet is the base-36 alphabet random strings are drawn from
const RandomAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// PEM block types
const (
	PEMTypeRSAPrivateKey = "RSA PRIVATE KEY"
	PEMTypePrivateKey    = "PRIVATE KEY"
	PEMTypePublicKey     = "PUBLIC KEY"
)

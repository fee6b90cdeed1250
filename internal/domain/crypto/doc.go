// Package crypto defines the contracts and value types shared by the AES and RSA helpers:
// processor interfaces, algorithm constants, sentinel errors and the Value union used to
// turn arbitrary plaintext input into the string that actually gets encrypted.
package crypto

// Package config provides the settings of the crypto facade CLI.
//
// Settings are read from defaults, an optional config file, a .env file and
// CRYPTO_FACADE_ prefixed environment variables, then validated before use.
package config

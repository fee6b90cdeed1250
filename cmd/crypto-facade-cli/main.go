// Package main is the entry point for the crypto-facade-cli application.
// It loads the CLI settings, registers the AES, RSA and random string commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/dogthirteen/AES-RSA-encrypt/cmd/crypto-facade-cli/internal/commands"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-facade-cli",
		Short: "AES and RSA helper CLI",
		Long: `crypto-facade-cli wraps AES and RSA helpers for exchanging data with clients
that use the same conventions: AES-ECB with PKCS#7 padding, AES-CBC with zero
padding, UTF-8 keys and IVs, base64 ciphertext and RSA PKCS#1 v1.5.

Settings are read from the file named by CRYPTO_FACADE_CONFIG_FILE, a .env file
and CRYPTO_FACADE_ prefixed environment variables, e.g.
- CRYPTO_FACADE_LOGGER_LOG_LEVEL
- CRYPTO_FACADE_LOGGER_LOG_TYPE`,
		SilenceUsage: true,
	}

	settings, err := config.Load(os.Getenv(config.ConfigFileEnv))
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitCommands(rootCmd, settings); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

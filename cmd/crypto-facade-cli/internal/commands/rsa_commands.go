package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/app"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/infrastructure/cryptography"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type generateRSAKeysRequest struct {
	KeySize int    `validate:"rsakeysize"`
	KeyDir  string `validate:"required,dir"`
}

type rsaRequest struct {
	Data    string
	KeyPath string `validate:"required,file"`
}

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	facade       *app.CryptoFacade
	rsaProcessor crypto.RSAProcessor
	validate     *validator.Validate
	logger       logger.Logger
}

// NewRSACommandHandler returns an RSACommandHandler using the shared dependencies
func NewRSACommandHandler(deps *dependencies) *RSACommandHandler {
	return &RSACommandHandler{
		facade:       deps.facade,
		rsaProcessor: cryptography.NewRSAProcessor(),
		validate:     deps.validate,
		logger:       deps.logger,
	}
}

// GenerateRSAKeysCmd generates an RSA key pair and persists it as PEM files in the selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	req := generateRSAKeysRequest{KeySize: keySize, KeyDir: keyDir}
	if err := commandHandler.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	privateKey, publicKey, err := commandHandler.rsaProcessor.GenerateKeys(req.KeySize)
	if err != nil {
		commandHandler.logger.Error("RSA key generation failed", "error", err)
		return err
	}

	publicPEM, err := commandHandler.rsaProcessor.EncodePublicKey(publicKey)
	if err != nil {
		return err
	}

	uniqueID := uuid.New().String()
	privateKeyFilePath := filepath.Join(req.KeyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	publicKeyFilePath := filepath.Join(req.KeyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))

	if err := os.WriteFile(privateKeyFilePath, []byte(commandHandler.rsaProcessor.EncodePrivateKey(privateKey)), 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(publicKeyFilePath, []byte(publicPEM), 0600); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	commandHandler.logger.Info("saved RSA key pair", "private_key", privateKeyFilePath, "public_key", publicKeyFilePath)
	if err := printResult(cmd, privateKeyFilePath); err != nil {
		return err
	}
	return printResult(cmd, publicKeyFilePath)
}

// EncryptRSACmd encrypts --data with the public key file and prints base64 ciphertext
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	req, key, err := commandHandler.readRequest(cmd, "public-key")
	if err != nil {
		return err
	}

	ciphertext, err := commandHandler.facade.PublicEncrypt(req.Data, key)
	if err != nil {
		commandHandler.logger.Error("RSA encryption failed", "error", err, "public_key", req.KeyPath)
		return err
	}
	return printResult(cmd, ciphertext)
}

// DecryptRSACmd decrypts base64 --data with the private key file
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	req, key, err := commandHandler.readRequest(cmd, "private-key")
	if err != nil {
		return err
	}

	plainText, err := commandHandler.facade.PrivateDecrypt(req.Data, key)
	if err != nil {
		commandHandler.logger.Error("RSA decryption failed", "error", err, "private_key", req.KeyPath)
		return err
	}
	return printResult(cmd, plainText)
}

func (commandHandler *RSACommandHandler) readRequest(cmd *cobra.Command, keyFlag string) (rsaRequest, string, error) {
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return rsaRequest{}, "", fmt.Errorf("invalid data flag: %w", err)
	}
	keyPath, err := cmd.Flags().GetString(keyFlag)
	if err != nil {
		return rsaRequest{}, "", fmt.Errorf("invalid %s flag: %w", keyFlag, err)
	}

	req := rsaRequest{Data: data, KeyPath: keyPath}
	if err := commandHandler.validate.Struct(req); err != nil {
		return rsaRequest{}, "", fmt.Errorf("invalid input: %w", err)
	}

	key, err := os.ReadFile(filepath.Clean(req.KeyPath))
	if err != nil {
		return rsaRequest{}, "", fmt.Errorf("unable to read key file: %w", err)
	}
	return req, string(key), nil
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command, deps *dependencies) error {
	if deps == nil {
		return fmt.Errorf("command dependencies are required")
	}
	handler := NewRSACommandHandler(deps)

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate RSA keys",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", crypto.RSAKeySize2048, "RSA key size in bits")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSACmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt data using an RSA public key",
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSACmd.Flags().StringP("data", "", "", "Plaintext to encrypt (at most key size - 11 bytes)")
	encryptRSACmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(encryptRSACmd)

	var decryptRSACmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt base64 data using an RSA private key",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSACmd.Flags().StringP("data", "", "", "Base64 ciphertext")
	decryptRSACmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	rootCmd.AddCommand(decryptRSACmd)

	return nil
}

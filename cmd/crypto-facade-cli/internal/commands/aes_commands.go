package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/app"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/domain/crypto"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

type ecbRequest struct {
	Data string
	Key  string `validate:"aeskey"`
}

type cbcRequest struct {
	Data string
	Key  string `validate:"aeskey"`
	IV   string `validate:"aesiv"`
}

type randomStringRequest struct {
	Length int `validate:"gte=0"`
}

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	facade   *app.CryptoFacade
	validate *validator.Validate
	logger   logger.Logger
}

// NewAESCommandHandler returns an AESCommandHandler using the shared dependencies
func NewAESCommandHandler(deps *dependencies) *AESCommandHandler {
	return &AESCommandHandler{
		facade:   deps.facade,
		validate: deps.validate,
		logger:   deps.logger,
	}
}

// RandomStringCmd prints a random base-36 string of the requested length
func (commandHandler *AESCommandHandler) RandomStringCmd(cmd *cobra.Command, _ []string) error {
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return fmt.Errorf("invalid length flag: %w", err)
	}
	if err := commandHandler.validate.Struct(randomStringRequest{Length: length}); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	s, err := commandHandler.facade.RandomString(length)
	if err != nil {
		commandHandler.logger.Error("random string generation failed", "error", err)
		return err
	}
	return printResult(cmd, s)
}

// GenerateAESKeyCmd prints a random 16 character AES key
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.facade.GenerateAESKey()
	if err != nil {
		commandHandler.logger.Error("AES key generation failed", "error", err)
		return err
	}
	commandHandler.logger.Debug("generated AES key", "length", len(key))
	return printResult(cmd, key)
}

// GenerateAESIVCmd prints a random 16 character initialization vector
func (commandHandler *AESCommandHandler) GenerateAESIVCmd(cmd *cobra.Command, _ []string) error {
	iv, err := commandHandler.facade.GenerateAESIV()
	if err != nil {
		commandHandler.logger.Error("AES IV generation failed", "error", err)
		return err
	}
	commandHandler.logger.Debug("generated AES IV", "length", len(iv))
	return printResult(cmd, iv)
}

// EncryptECBCmd encrypts --data with AES-ECB
func (commandHandler *AESCommandHandler) EncryptECBCmd(cmd *cobra.Command, _ []string) error {
	req := ecbRequest{}
	if err := commandHandler.readFlags(cmd, &req.Data, &req.Key, nil); err != nil {
		return err
	}
	if err := commandHandler.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	value, err := valueFromFlags(cmd, req.Data)
	if err != nil {
		return err
	}

	ciphertext, err := commandHandler.facade.EncryptAESECB(value, req.Key)
	if err != nil {
		commandHandler.logger.Error("AES-ECB encryption failed", "error", err)
		return err
	}
	commandHandler.logger.Debug("AES-ECB encryption succeeded", "kind", value.Kind().String())
	return printResult(cmd, ciphertext)
}

// DecryptECBCmd decrypts base64 --data with AES-ECB
func (commandHandler *AESCommandHandler) DecryptECBCmd(cmd *cobra.Command, _ []string) error {
	req := ecbRequest{}
	if err := commandHandler.readFlags(cmd, &req.Data, &req.Key, nil); err != nil {
		return err
	}
	if err := commandHandler.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	plainText, err := commandHandler.facade.DecryptAESECB(req.Data, req.Key)
	if err != nil {
		commandHandler.logger.Error("AES-ECB decryption failed", "error", err)
		return err
	}
	return printResult(cmd, plainText)
}

// EncryptCBCCmd encrypts --data with AES-CBC
func (commandHandler *AESCommandHandler) EncryptCBCCmd(cmd *cobra.Command, _ []string) error {
	req := cbcRequest{}
	if err := commandHandler.readFlags(cmd, &req.Data, &req.Key, &req.IV); err != nil {
		return err
	}
	if err := commandHandler.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	value, err := valueFromFlags(cmd, req.Data)
	if err != nil {
		return err
	}

	ciphertext, err := commandHandler.facade.EncryptAESCBC(value, req.Key, req.IV)
	if err != nil {
		commandHandler.logger.Error("AES-CBC encryption failed", "error", err)
		return err
	}
	commandHandler.logger.Debug("AES-CBC encryption succeeded", "kind", value.Kind().String())
	return printResult(cmd, ciphertext)
}

// DecryptCBCCmd decrypts base64 --data with AES-CBC
func (commandHandler *AESCommandHandler) DecryptCBCCmd(cmd *cobra.Command, _ []string) error {
	req := cbcRequest{}
	if err := commandHandler.readFlags(cmd, &req.Data, &req.Key, &req.IV); err != nil {
		return err
	}
	if err := commandHandler.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	plainText, err := commandHandler.facade.DecryptAESCBC(req.Data, req.Key, req.IV)
	if err != nil {
		commandHandler.logger.Error("AES-CBC decryption failed", "error", err)
		return err
	}
	return printResult(cmd, plainText)
}

func (commandHandler *AESCommandHandler) readFlags(cmd *cobra.Command, data, key, iv *string) error {
	var err error
	if *data, err = cmd.Flags().GetString("data"); err != nil {
		return fmt.Errorf("invalid data flag: %w", err)
	}
	if *key, err = cmd.Flags().GetString("key"); err != nil {
		return fmt.Errorf("invalid key flag: %w", err)
	}
	if iv != nil {
		if *iv, err = cmd.Flags().GetString("iv"); err != nil {
			return fmt.Errorf("invalid iv flag: %w", err)
		}
	}
	return nil
}

// valueFromFlags treats --data as JSON when --json is set so it is re-serialized canonically
func valueFromFlags(cmd *cobra.Command, data string) (crypto.Value, error) {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return crypto.Value{}, fmt.Errorf("invalid json flag: %w", err)
	}
	if !asJSON {
		return crypto.TextValue(data), nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		return crypto.Value{}, fmt.Errorf("data is not valid JSON: %w", err)
	}
	return crypto.ValueOf(decoded), nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command, deps *dependencies) error {
	if deps == nil {
		return fmt.Errorf("command dependencies are required")
	}
	handler := NewAESCommandHandler(deps)

	var randomStringCmd = &cobra.Command{
		Use:   "random-string",
		Short: "Generate a random base-36 string",
		RunE:  handler.RandomStringCmd,
	}
	randomStringCmd.Flags().IntP("length", "", crypto.GeneratedKeyLength, "Number of characters to generate")
	rootCmd.AddCommand(randomStringCmd)

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a 16 character AES key",
		RunE:  handler.GenerateAESKeyCmd,
	}
	rootCmd.AddCommand(generateAESKeyCmd)

	var generateAESIVCmd = &cobra.Command{
		Use:   "generate-aes-iv",
		Short: "Generate a 16 character AES initialization vector",
		RunE:  handler.GenerateAESIVCmd,
	}
	rootCmd.AddCommand(generateAESIVCmd)

	var encryptECBCmd = &cobra.Command{
		Use:   "encrypt-aes-ecb",
		Short: "Encrypt data using AES-ECB with PKCS#7 padding",
		RunE:  handler.EncryptECBCmd,
	}
	encryptECBCmd.Flags().StringP("data", "", "", "Plaintext to encrypt")
	encryptECBCmd.Flags().StringP("key", "", "", "AES key (16, 24 or 32 bytes)")
	encryptECBCmd.Flags().BoolP("json", "", false, "Parse data as JSON and encrypt its canonical form")
	rootCmd.AddCommand(encryptECBCmd)

	var decryptECBCmd = &cobra.Command{
		Use:   "decrypt-aes-ecb",
		Short: "Decrypt base64 AES-ECB ciphertext",
		RunE:  handler.DecryptECBCmd,
	}
	decryptECBCmd.Flags().StringP("data", "", "", "Base64 ciphertext")
	decryptECBCmd.Flags().StringP("key", "", "", "AES key (16, 24 or 32 bytes)")
	rootCmd.AddCommand(decryptECBCmd)

	var encryptCBCCmd = &cobra.Command{
		Use:   "encrypt-aes-cbc",
		Short: "Encrypt data using AES-CBC with zero padding",
		RunE:  handler.EncryptCBCCmd,
	}
	encryptCBCCmd.Flags().StringP("data", "", "", "Plaintext to encrypt")
	encryptCBCCmd.Flags().StringP("key", "", "", "AES key (16, 24 or 32 bytes)")
	encryptCBCCmd.Flags().StringP("iv", "", "", "Initialization vector (16 bytes)")
	encryptCBCCmd.Flags().BoolP("json", "", false, "Parse data as JSON and encrypt its canonical form")
	rootCmd.AddCommand(encryptCBCCmd)

	var decryptCBCCmd = &cobra.Command{
		Use:   "decrypt-aes-cbc",
		Short: "Decrypt base64 AES-CBC ciphertext",
		RunE:  handler.DecryptCBCCmd,
	}
	decryptCBCCmd.Flags().StringP("data", "", "", "Base64 ciphertext")
	decryptCBCCmd.Flags().StringP("key", "", "", "AES key (16, 24 or 32 bytes)")
	decryptCBCCmd.Flags().StringP("iv", "", "", "Initialization vector (16 bytes)")
	rootCmd.AddCommand(decryptCBCCmd)

	return nil
}

package commands

import (
	"fmt"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/app"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/config"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/logger"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// dependencies shared by every command handler
type dependencies struct {
	facade   *app.CryptoFacade
	validate *validator.Validate
	logger   logger.Logger
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func setupDependencies(settings *config.CLISettings) (*dependencies, error) {
	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, err
	}

	validate, err := validators.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	return &dependencies{
		facade:   app.NewDefaultCryptoFacade(),
		validate: validate,
		logger:   loggerInstance,
	}, nil
}

// InitCommands registers the AES, RSA and random string commands
func InitCommands(rootCmd *cobra.Command, settings *config.CLISettings) error {
	deps, err := setupDependencies(settings)
	if err != nil {
		return err
	}

	if err := InitAESCommands(rootCmd, deps); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := InitRSACommands(rootCmd, deps); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}

// printResult writes a command result on its own line to the command's stdout
func printResult(cmd *cobra.Command, result string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

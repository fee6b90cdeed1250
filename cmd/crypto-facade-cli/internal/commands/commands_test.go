//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dogthirteen/AES-RSA-encrypt/internal/app"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/config"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/testutil"
	"github.com/dogthirteen/AES-RSA-encrypt/internal/pkg/validators"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "0123456789abcdef"
	testIV  = "abcdefghijklmnop"
)

// execute runs args against a freshly built root command and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, _ := testutil.SetupTestLogger(t)
	validate, err := validators.New()
	require.NoError(t, err)

	deps := &dependencies{facade: app.NewDefaultCryptoFacade(), validate: validate, logger: log}
	rootCmd := &cobra.Command{Use: "crypto-facade-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitAESCommands(rootCmd, deps))
	require.NoError(t, InitRSACommands(rootCmd, deps))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return strings.TrimSuffix(out.String(), "\n"), err
}

func TestRandomStringCommands(t *testing.T) {
	out, err := execute(t, "random-string", "--length", "40")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-z]{40}$`, out)

	out, err = execute(t, "generate-aes-key")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-z]{16}$`, out)

	out, err = execute(t, "generate-aes-iv")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-z]{16}$`, out)

	_, err = execute(t, "random-string", "--length", "-3")
	assert.Error(t, err)
}

func TestAESECBCommands(t *testing.T) {
	ciphertext, err := execute(t, "encrypt-aes-ecb", "--data", "hello cli", "--key", testKey)
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)

	plainText, err := execute(t, "decrypt-aes-ecb", "--data", ciphertext, "--key", testKey)
	require.NoError(t, err)
	assert.Equal(t, "hello cli", plainText)

	t.Run("JSONIsCanonicalized", func(t *testing.T) {
		ciphertext, err := execute(t, "encrypt-aes-ecb", "--json", "--data", `{ "b": 2, "a": 1 }`, "--key", testKey)
		require.NoError(t, err)

		plainText, err := execute(t, "decrypt-aes-ecb", "--data", ciphertext, "--key", testKey)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":2}`, plainText)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := execute(t, "encrypt-aes-ecb", "--json", "--data", "{", "--key", testKey)
		assert.Error(t, err)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		_, err := execute(t, "encrypt-aes-ecb", "--data", "x", "--key", "short")
		assert.Error(t, err)
	})
}

func TestAESCBCCommands(t *testing.T) {
	ciphertext, err := execute(t, "encrypt-aes-cbc", "--data", "hello cbc", "--key", testKey, "--iv", testIV)
	require.NoError(t, err)

	plainText, err := execute(t, "decrypt-aes-cbc", "--data", ciphertext, "--key", testKey, "--iv", testIV)
	require.NoError(t, err)
	assert.Equal(t, "hello cbc", plainText)

	_, err = execute(t, "encrypt-aes-cbc", "--data", "x", "--key", testKey, "--iv", "short")
	assert.Error(t, err)

	_, err = execute(t, "decrypt-aes-cbc", "--data", "not base64!", "--key", testKey, "--iv", testIV)
	assert.Error(t, err)
}

func TestRSACommands(t *testing.T) {
	keyDir := t.TempDir()

	out, err := execute(t, "generate-rsa-keys", "--key-dir", keyDir)
	require.NoError(t, err)

	paths := strings.Split(out, "\n")
	require.Len(t, paths, 2)
	privateKeyPath, publicKeyPath := paths[0], paths[1]
	assert.True(t, strings.HasSuffix(privateKeyPath, "-private-key.pem"))
	assert.True(t, strings.HasSuffix(publicKeyPath, "-public-key.pem"))

	info, err := os.Stat(privateKeyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	ciphertext, err := execute(t, "encrypt-rsa", "--data", "rsa secret", "--public-key", publicKeyPath)
	require.NoError(t, err)

	plainText, err := execute(t, "decrypt-rsa", "--data", ciphertext, "--private-key", privateKeyPath)
	require.NoError(t, err)
	assert.Equal(t, "rsa secret", plainText)

	t.Run("InvalidKeySize", func(t *testing.T) {
		_, err := execute(t, "generate-rsa-keys", "--key-dir", keyDir, "--key-size", "1000")
		assert.Error(t, err)
	})

	t.Run("MissingKeyDir", func(t *testing.T) {
		_, err := execute(t, "generate-rsa-keys", "--key-dir", filepath.Join(keyDir, "missing"))
		assert.Error(t, err)
	})

	t.Run("MissingKeyFile", func(t *testing.T) {
		_, err := execute(t, "encrypt-rsa", "--data", "x", "--public-key", filepath.Join(keyDir, "none.pem"))
		assert.Error(t, err)
	})

	t.Run("MalformedKeyFile", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "bad.pem", []byte("garbage"))
		_, err := execute(t, "encrypt-rsa", "--data", "x", "--public-key", path)
		assert.Error(t, err)
	})
}

func TestInitCommands(t *testing.T) {
	rootCmd := &cobra.Command{Use: "crypto-facade-cli"}
	settings := &config.CLISettings{Logger: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}}

	require.NoError(t, InitCommands(rootCmd, settings))

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{
		"random-string", "generate-aes-key", "generate-aes-iv",
		"encrypt-aes-ecb", "decrypt-aes-ecb", "encrypt-aes-cbc", "decrypt-aes-cbc",
		"generate-rsa-keys", "encrypt-rsa", "decrypt-rsa",
	}, names)
}

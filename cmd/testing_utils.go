package cmd

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/PolarWolf314/cryptr/internal/configs"
)

// setupTestEnvironment runs the test in a temp directory with auditing
// enabled into that directory and restores global state afterwards.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	// An explicit config keeps tests away from the user's real config dir.
	configFile := filepath.Join(tempDir, "config.toml")
	config := configs.Default()
	config.Audit.Enabled = true
	config.Audit.Path = filepath.Join(tempDir, "audit.jsonl")
	if err := configs.Save(configFile, config); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
		RootCmd.SetArgs(nil)
	})

	ResetGlobalState()
	return tempDir
}

// runCLI executes the root command with args plus the test config and
// returns everything written to stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	full := append([]string{"--config", filepath.Join(".", "config.toml")}, args...)
	return captureOutput(func() error {
		RootCmd.SetArgs(full)
		return Execute()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

var (
	testRSAKeyOnce sync.Once
	testRSAKey     *rsa.PrivateKey
)

// writeTestKeyPair writes a PEM public and private key into dir and returns their paths.
func writeTestKeyPair(t *testing.T, dir string) (string, string) {
	t.Helper()
	testRSAKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("Failed to generate RSA key: %v", err)
		}
		testRSAKey = key
	})

	pubDER, err := x509.MarshalPKIXPublicKey(&testRSAKey.PublicKey)
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(testRSAKey)
	if err != nil {
		t.Fatalf("Failed to marshal private key: %v", err)
	}

	pubPath := filepath.Join(dir, "id_rsa.pub.pem")
	privPath := filepath.Join(dir, "id_rsa.pem")
	if err := os.WriteFile(pubPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}), 0600); err != nil {
		t.Fatalf("Failed to write public key: %v", err)
	}
	if err := os.WriteFile(privPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}), 0600); err != nil {
		t.Fatalf("Failed to write private key: %v", err)
	}
	return pubPath, privPath
}

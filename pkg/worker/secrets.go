package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cuemby/warren/api/proto"
	"github.com/cuemby/warren/pkg/security"
	"github.com/cuemby/warren/pkg/types"
)

const (
	// SecretsBasePath is the base directory for secret tmpfs mounts
	SecretsBasePath = "/run/secrets"
)

// SecretsHandler manages secret mounting for capsules
type SecretsHandler struct {
	worker         *Worker
	secretsManager *security.SecretsManager
}

// NewSecretsHandler creates a new secrets handler
func NewSecretsHandler(worker *Worker, encryptionKey []byte) (*SecretsHandler, error) {
	sm, err := security.NewSecretsManager(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets manager: %w", err)
	}

	return &SecretsHandler{
		worker:         worker,
		secretsManager: sm,
	}, nil
}

// MountSecretsForCapsule fetches secrets from manager and mounts them to tmpfs
// Returns the tmpfs mount path for the capsule
func (sh *SecretsHandler) MountSecretsForCapsule(capsule *types.Capsule) (string, error) {
	if len(capsule.Secrets) == 0 {
		return "", nil // No secrets to mount
	}

	// Create capsule-specific secrets directory in tmpfs
	capsuleSecretsPath := filepath.Join(SecretsBasePath, capsule.ID)
	if err := os.MkdirAll(capsuleSecretsPath, 0700); err != nil {
		return "", fmt.Errorf("failed to create secrets directory: %w", err)
	}

	// Fetch and mount each secret
	for _, secretName := range capsule.Secrets {
		if err := sh.mountSecret(capsule.ID, secretName, capsuleSecretsPath); err != nil {
			// Cleanup on error
			_ = sh.CleanupSecretsForCapsule(capsule.ID) // Ignore cleanup errors during rollback
			return "", fmt.Errorf("failed to mount secret %s: %w", secretName, err)
		}
	}

	return capsuleSecretsPath, nil
}

// mountSecret fetches a single secret from manager and writes it to tmpfs
func (sh *SecretsHandler) mountSecret(capsuleID, secretName, targetDir string) error {
	// Fetch secret from manager
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := sh.worker.client.GetSecretByName(ctx, &proto.GetSecretByNameRequest{
		Name: secretName,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch secret from manager: %w", err)
	}

	// Convert proto secret to types.Secret
	secret := &types.Secret{
		ID:   resp.Secret.Id,
		Name: resp.Secret.Name,
		Data: resp.Secret.Data, // Encrypted data
	}

	// Decrypt the secret
	plaintext, err := sh.secretsManager.GetSecretData(secret)
	if err != nil {
		return fmt.Errorf("failed to decrypt secret: %w", err)
	}

	// Write to tmpfs (read-only for security)
	secretPath := filepath.Join(targetDir, secretName)
	if err := os.WriteFile(secretPath, plaintext, 0400); err != nil {
		return fmt.Errorf("failed to write secret file: %w", err)
	}

	return nil
}

// CleanupSecretsForCapsule removes all secrets for a capsule from tmpfs
func (sh *SecretsHandler) CleanupSecretsForCapsule(capsuleID string) error {
	capsuleSecretsPath := filepath.Join(SecretsBasePath, capsuleID)

	// Check if directory exists
	if _, err := os.Stat(capsuleSecretsPath); os.IsNotExist(err) {
		return nil // Nothing to clean up
	}

	// Remove the entire capsule secrets directory
	if err := os.RemoveAll(capsuleSecretsPath); err != nil {
		return fmt.Errorf("failed to cleanup secrets: %w", err)
	}

	return nil
}

// GetSecretPath returns the path to a specific secret for a capsule
func (sh *SecretsHandler) GetSecretPath(capsuleID, secretName string) string {
	return filepath.Join(SecretsBasePath, capsuleID, secretName)
}

// EnsureSecretsBaseDir ensures the base secrets directory exists
// This should be called during worker initialization
func EnsureSecretsBaseDir() error {
	// Create /run/secrets if it doesn't exist
	if err := os.MkdirAll(SecretsBasePath, 0700); err != nil {
		return fmt.Errorf("failed to create secrets base directory: %w", err)
	}

	// TODO: Mount as tmpfs for added security
	// This would typically be done via:
	// mount -t tmpfs -o size=10M,mode=0700 tmpfs /run/secrets
	// For now, we're using a regular directory which is sufficient for POC

	return nil
}

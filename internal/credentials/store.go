// Package credentials stores the API access token on disk. The default
// store encrypts the token at rest with an age X25519 identity kept next to
// it with owner-only permissions; the plain file store exists for tests.
package credentials

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"

	"lelyo-go/internal/config"
)

// Store persists the operator's API token between invocations.
// Load returns an empty token (and no error) when none is saved.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// NewStoreFromConfig creates a Store based on the credentials config type.
func NewStoreFromConfig(cfg config.CredentialsConfig) (Store, error) {
	switch cfg.Type {
	case "age", "":
		if cfg.IdentityPath == "" || cfg.TokenPath == "" {
			return nil, fmt.Errorf("identity_path and token_path required for age credentials")
		}
		return NewAgeStore(cfg.IdentityPath, cfg.TokenPath), nil
	case "file":
		if cfg.TokenPath == "" {
			return nil, fmt.Errorf("token_path required for file credentials")
		}
		return NewFileStore(cfg.TokenPath), nil
	default:
		return nil, fmt.Errorf("unknown credentials type: %q", cfg.Type)
	}
}

// AgeStore encrypts the token to an X25519 recipient. The identity file is
// generated on first save and kept at mode 0600.
type AgeStore struct {
	identityPath string
	tokenPath    string
}

var _ Store = (*AgeStore)(nil)

func NewAgeStore(identityPath, tokenPath string) *AgeStore {
	return &AgeStore{identityPath: identityPath, tokenPath: tokenPath}
}

// Save encrypts and writes the token, generating the identity if needed.
func (s *AgeStore) Save(token string) error {
	identity, err := s.loadOrCreateIdentity()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.tokenPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating token file: %w", err)
	}
	defer f.Close()

	w, err := age.Encrypt(f, identity.Recipient())
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.WriteString(w, token); err != nil {
		return fmt.Errorf("writing encrypted token: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encrypted token: %w", err)
	}
	return nil
}

// Load decrypts and returns the saved token. A missing token file means no
// session; that is not an error.
func (s *AgeStore) Load() (string, error) {
	f, err := os.Open(s.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("opening token file: %w", err)
	}
	defer f.Close()

	identity, err := s.loadIdentity()
	if err != nil {
		return "", err
	}

	r, err := age.Decrypt(f, identity)
	if err != nil {
		return "", fmt.Errorf("decrypting token: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return buf.String(), nil
}

// Clear removes the saved token. The identity stays, so a later login can
// reuse it.
func (s *AgeStore) Clear() error {
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

func (s *AgeStore) loadOrCreateIdentity() (*age.X25519Identity, error) {
	identity, err := s.loadIdentity()
	if err == nil {
		return identity, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	identity, err = age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.identityPath), 0700); err != nil {
		return nil, fmt.Errorf("creating identity directory: %w", err)
	}
	if err := os.WriteFile(s.identityPath, []byte(identity.String()+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("writing identity: %w", err)
	}
	return identity, nil
}

func (s *AgeStore) loadIdentity() (*age.X25519Identity, error) {
	data, err := os.ReadFile(s.identityPath)
	if err != nil {
		return nil, err
	}
	identity, err := age.ParseX25519Identity(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing identity: %w", err)
	}
	return identity, nil
}

// FileStore keeps the token in a plain file. Use in tests.
type FileStore struct {
	tokenPath string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(tokenPath string) *FileStore {
	return &FileStore{tokenPath: tokenPath}
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return string(data), nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

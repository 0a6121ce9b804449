// Package session stores the bearer token issued at login, encrypted at rest.
package session

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/athenaeumapp/athenaeum/internal/crypto"
	"github.com/athenaeumapp/athenaeum/internal/entities"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// EnvSecret is the environment variable for the encryption secret.
	EnvSecret = "ATHENAEUM_SESSION_SECRET"

	// DefaultKeyFileName is the default name for the secret file.
	DefaultKeyFileName = ".athenaeum-session-key"

	saltFileSuffix = ".salt"
)

// ErrNoSession is returned when no token has been stored. Callers should
// treat it as "unauthenticated" and redirect to login.
var ErrNoSession = errors.New("no stored session")

// Store persists one session per account in a local SQLite database.
type Store struct {
	db        *gorm.DB
	encryptor *crypto.Encryptor
}

// Config holds configuration for the session store.
type Config struct {
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string

	// Secret is the encryption secret. If empty, it is loaded from the
	// environment or the key file, generating a new one if needed.
	Secret string

	// KeyFilePath is the path to the secret file.
	// If empty, defaults to ~/.athenaeum-session-key.
	KeyFilePath string
}

// New opens the session store, resolving the encryption secret and salt.
func New(cfg Config) (*Store, error) {
	keyFilePath, err := resolveKeyFilePath(cfg.KeyFilePath)
	if err != nil {
		return nil, err
	}

	secret, err := resolveSecret(cfg.Secret, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve encryption secret: %w", err)
	}

	salt, err := resolveSalt(keyFilePath + saltFileSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve salt: %w", err)
	}

	encryptor, err := crypto.NewEncryptorFromSecret(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{
		db:        db,
		encryptor: encryptor,
	}, nil
}

func resolveKeyFilePath(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultKeyFileName), nil
}

func resolveSecret(explicit, keyFilePath string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if envSecret := os.Getenv(EnvSecret); envSecret != "" {
		return envSecret, nil
	}

	if data, err := os.ReadFile(keyFilePath); err == nil {
		return string(data), nil
	}

	newSecret, err := crypto.GenerateSecret()
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}

	if err := os.WriteFile(keyFilePath, []byte(newSecret), 0600); err != nil {
		return "", fmt.Errorf("failed to save secret to %s: %w", keyFilePath, err)
	}

	return newSecret, nil
}

func resolveSalt(saltFilePath string) ([]byte, error) {
	if data, err := os.ReadFile(saltFilePath); err == nil {
		return base64.StdEncoding.DecodeString(string(data))
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(salt)
	if err := os.WriteFile(saltFilePath, []byte(encoded), 0600); err != nil {
		return nil, fmt.Errorf("failed to save salt to %s: %w", saltFilePath, err)
	}

	return salt, nil
}

// Save stores a token for an account, replacing any previous session.
func (s *Store) Save(account, token, tokenType string) error {
	encToken, err := s.encryptor.Encrypt(token)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	session := &entities.Session{
		Account:   account,
		Token:     encToken,
		TokenType: tokenType,
	}

	result := s.db.Where("account = ?", account).
		Assign(map[string]interface{}{
			"token":      encToken,
			"token_type": tokenType,
			"updated_at": time.Now(),
		}).
		FirstOrCreate(session)
	if result.Error != nil {
		return fmt.Errorf("failed to save session: %w", result.Error)
	}

	return nil
}

// Token returns the decrypted bearer token of the most recent session, or
// ErrNoSession when nothing is stored. This satisfies api.TokenSource.
func (s *Store) Token() (string, error) {
	var session entities.Session
	result := s.db.Order("updated_at DESC").First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to load session: %w", result.Error)
	}

	token, err := s.encryptor.Decrypt(session.Token)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	return token, nil
}

// Account returns the email of the most recent session.
func (s *Store) Account() (string, error) {
	var session entities.Session
	result := s.db.Order("updated_at DESC").First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to load session: %w", result.Error)
	}
	return session.Account, nil
}

// Clear removes all stored sessions.
func (s *Store) Clear() error {
	result := s.db.Where("1 = 1").Delete(&entities.Session{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear sessions: %w", result.Error)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

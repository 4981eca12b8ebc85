// Package credentials loads and checks Google service-account key files.
package credentials

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/fishub/lookupload/pkg/lookupload"
	"golang.org/x/oauth2/google"
)

// Scopes requested for the Firestore client.
var Scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/datastore",
}

const serviceAccountType = "service_account"

// ServiceAccount is the subset of a key file the loader relies on.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`

	raw []byte
}

// LoadServiceAccount reads and validates a key file.
//
// A missing file wraps ErrCredentialsNotFound; anything else wrong with it
// wraps ErrInvalidCredentials. Both also wrap ErrInitialization.
func LoadServiceAccount(path string) (*ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", lookupload.ErrInitialization, lookupload.ErrCredentialsNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w: %v", lookupload.ErrInitialization, lookupload.ErrInvalidCredentials, err)
	}

	sa, err := ParseServiceAccount(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sa, nil
}

// ParseServiceAccount validates key file content.
func ParseServiceAccount(data []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, invalid("not a JSON key file: %v", err)
	}

	if sa.Type != serviceAccountType {
		return nil, invalid("type is %q, want %q", sa.Type, serviceAccountType)
	}

	var missing []error
	if sa.ProjectID == "" {
		missing = append(missing, errors.New("project_id is empty"))
	}
	if sa.ClientEmail == "" {
		missing = append(missing, errors.New("client_email is empty"))
	}
	if sa.PrivateKey == "" {
		missing = append(missing, errors.New("private_key is empty"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, invalid("%v", err)
	}

	if err := checkPrivateKey(sa.PrivateKey); err != nil {
		return nil, invalid("private_key: %v", err)
	}

	sa.raw = data
	return &sa, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", lookupload.ErrInitialization, lookupload.ErrInvalidCredentials, fmt.Sprintf(format, args...))
}

func checkPrivateKey(key string) error {
	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return errors.New("no PEM block found")
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return nil
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err != nil {
		return fmt.Errorf("unsupported key encoding: %w", err)
	}
	return nil
}

// GoogleCredentials converts the key into OAuth2 credentials for the client.
func (sa *ServiceAccount) GoogleCredentials(ctx context.Context) (*google.Credentials, error) {
	if len(sa.raw) == 0 {
		return nil, invalid("key material already released")
	}
	creds, err := google.CredentialsFromJSON(ctx, sa.raw, Scopes...)
	if err != nil {
		return nil, invalid("%v", err)
	}
	return creds, nil
}

// Release drops the key material held in memory.
func (sa *ServiceAccount) Release() {
	for i := range sa.raw {
		sa.raw[i] = 0
	}
	sa.raw = nil
	sa.PrivateKey = ""
}

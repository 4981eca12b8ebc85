package testinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// KeyFileName matches the default key file name the loader looks for.
const KeyFileName = "serviceAccountKey.json"

// GenerateServiceAccountKey returns a syntactically valid service-account
// key file for projectID. The key is freshly generated and authorizes nothing.
func GenerateServiceAccountKey(projectID string) ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}

	fields := map[string]string{
		"type":                        "service_account",
		"project_id":                  projectID,
		"private_key_id":              "0123456789abcdef",
		"private_key":                 string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		"client_email":                "lookupload@" + projectID + ".iam.gserviceaccount.com",
		"client_id":                   "100000000000000000000",
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
	}

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode key file: %w", err)
	}
	return data, nil
}

// WriteServiceAccountKey writes a generated key file into dir and returns its path.
func WriteServiceAccountKey(dir, projectID string) (string, error) {
	data, err := GenerateServiceAccountKey(projectID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, KeyFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write %s: %w", KeyFileName, err)
	}
	return path, nil
}

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-turf-booking/internal/config"
)

// loadToken returns the explicit token when set, otherwise the contents of
// the token file. A missing file yields an empty token.
func loadToken(session config.ClientSession) (string, error) {
	if token := strings.TrimSpace(session.Token); token != "" {
		return token, nil
	}
	if session.TokenFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(session.TokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

func saveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func removeToken(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

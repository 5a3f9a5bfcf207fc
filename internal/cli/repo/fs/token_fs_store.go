package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenFSStore — файловое хранилище bearer-токена для CLI.
// Path пустой — используется каталог конфигурации пользователя.
type TokenFSStore struct {
	Path string
}

func (s TokenFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "Enderbrary")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(p, "auth_token"), nil
}

// Save сохраняет токен в файл.
func (s TokenFSStore) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("empty token")
	}
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s TokenFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", errors.New("empty token file")
	}
	return token, nil
}

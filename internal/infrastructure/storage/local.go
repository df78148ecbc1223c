// Package storage guarda en disco los archivos subidos (fotos de perfil y
// documentos de contratos/comercios).
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local almacenamiento en el sistema de archivos bajo Root. Las rutas devueltas
// son relativas (uploads/user/<uuid>.png) y se publican bajo BaseURL.
type Local struct {
	Root    string
	BaseURL string
}

// NewLocal crea el almacenamiento y su directorio raíz.
func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Local{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save escribe r en folder con un nombre uuid que conserva la extensión original.
func (s *Local) Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext := strings.ToLower(path.Ext(originalName))
	rel := path.Join(folder, uuid.New().String()+ext)
	full, err := s.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return rel, nil
}

// Open abre un archivo previamente guardado.
func (s *Local) Open(_ context.Context, rel string) (io.ReadCloser, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// URL ruta pública del archivo.
func (s *Local) URL(rel string) string {
	return s.BaseURL + "/" + strings.TrimLeft(rel, "/")
}

// resolve rechaza rutas que escapen de Root.
func (s *Local) resolve(rel string) (string, error) {
	clean := path.Clean("/" + rel)
	if clean == "/" {
		return "", fmt.Errorf("ruta vacía")
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean)), nil
}

// Package jsonfile implements the repositories on top of flat JSON files.
// Every mutation rewrites the whole collection; there is no locking and no
// atomic rename, so concurrent writers race and the last one wins.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	usersFile  = "usuarios.json"
	fichasFile = "fichas.json"

	filePermissions = 0600
)

// Storage anchors the data directory both repositories write into.
type Storage struct {
	dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) usersPath() string {
	return filepath.Join(s.dir, usersFile)
}

func (s *Storage) fichasPath() string {
	return filepath.Join(s.dir, fichasFile)
}

// Package archive stores raw HTML snapshots of fetched word pages, one file
// per word, so selector changes can be checked against real markup later.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	rootDir string
}

func NewStore(rootDir string) *Store {
	return &Store{
		rootDir: rootDir,
	}
}

func (store *Store) filePath(word string) string {
	// Words can contain spaces or commas ("pot, n."), keep filenames simple.
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ',':
			return '-'
		}
		return r
	}, word)
	return filepath.Join(store.rootDir, "wotd_response_"+name+".html")
}

// Save writes the snapshot for a word and returns the file path.
func (store *Store) Save(word string, contents []byte) (string, error) {
	if err := os.MkdirAll(store.rootDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll > %w", err)
	}

	localFilePath := store.filePath(word)
	file, err := os.Create(localFilePath)
	if err != nil {
		return "", fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return localFilePath, fmt.Errorf("file.Write > %w", err)
	}
	return localFilePath, nil
}

// Read returns the stored snapshot for a word.
func (store *Store) Read(word string) ([]byte, error) {
	file, err := os.Open(store.filePath(word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

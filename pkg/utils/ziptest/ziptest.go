// Package ziptest builds zip fixtures for tests.
package ziptest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/m-mizutani/gt"
)

// Entry is a file to place in a test archive
type Entry struct {
	Name      string
	Content   string
	Encrypted bool // Sets the encryption flag without encrypting, enough to trip readers
}

// Build returns zip bytes containing files, written in name order
func Build(t *testing.T, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Content: files[name]})
	}
	return BuildEntries(t, entries)
}

// BuildEntries returns zip bytes containing entries in the given order
func BuildEntries(t *testing.T, entries []Entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, e := range entries {
		header := &zip.FileHeader{Name: e.Name, Method: zip.Deflate}
		if e.Encrypted {
			header.Flags |= 0x1
		}
		writer, err := zipWriter.CreateHeader(header)
		gt.NoError(t, err)

		_, err = writer.Write([]byte(e.Content))
		gt.NoError(t, err)
	}

	gt.NoError(t, zipWriter.Close())
	return buf.Bytes()
}

// Write builds an archive from files and writes it to path, creating parent directories
func Write(t *testing.T, path string, files map[string]string) string {
	t.Helper()
	return WriteBytes(t, path, Build(t, files))
}

// WriteBytes writes raw archive data to path, creating parent directories
func WriteBytes(t *testing.T, path string, data []byte) string {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

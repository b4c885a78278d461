// Package storage defines the vault file-system abstraction.
package storage

import "io/fs"

// WalkFunc is called for every entry found under the vault root.
// abs is the absolute path, rel the forward-slash path relative to the
// root. Returning fs.SkipAll stops the walk early.
type WalkFunc func(abs, rel string, d fs.DirEntry) error

// Provider is the interface for vault file operations.
type Provider interface {
	// Root returns the absolute vault root directory.
	Root() string
	// Walk visits every entry under the vault root, one at a time.
	// Symbolic links are not followed and unreadable entries are skipped.
	Walk(fn WalkFunc) error
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to vault root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to vault root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to vault root).
	// It refuses to overwrite an existing file at newPath.
	Move(oldPath, newPath string) error
}

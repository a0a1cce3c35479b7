package vault

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NoteExt is the extension of files the vault treats as notes
const NoteExt = "md"

// ErrPathEscape is returned when a relative path resolves outside the vault
var ErrPathEscape = errors.New("path escapes vault root")

// ErrExists is returned by Create when the target file is already present
var ErrExists = errors.New("file already exists")

// File references a note in the vault. Path is relative to the vault root
// and always uses forward slashes.
type File struct {
	Path    string
	AbsPath string
}

// Name returns the file name with extension.
func (f File) Name() string {
	return path.Base(f.Path)
}

// Basename returns the file name without its extension.
func (f File) Basename() string {
	name := f.Name()
	return strings.TrimSuffix(name, path.Ext(name))
}

// Ext returns the extension without the leading dot.
func (f File) Ext() string {
	return strings.TrimPrefix(path.Ext(f.Path), ".")
}

// Vault is a directory of markdown notes on disk
type Vault struct {
	Root    string
	Exclude []string // doublestar patterns matched against vault-relative paths
}

// Open returns a Vault rooted at dir.
func Open(dir string, exclude []string) (*Vault, error) {
	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Vault{Root: absRoot, Exclude: exclude}, nil
}

// MarkdownFiles recursively lists every note in the vault in lexical walk
// order. Hidden and common junk directories are skipped.
func (v *Vault) MarkdownFiles() ([]File, error) {
	var files []File
	if err := v.walk(v.Root, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (v *Vault) walk(dir string, files *[]File) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if shouldSkipDir(name) {
				continue
			}
			if err := v.walk(absPath, files); err != nil {
				return err
			}
			continue
		}

		file, ok := v.fileFor(absPath)
		if !ok || !isNoteFile(name) || v.excluded(file.Path) {
			continue
		}
		*files = append(*files, file)
	}

	return nil
}

// Read returns the full text of a note.
func (v *Vault) Read(f File) ([]byte, error) {
	return os.ReadFile(f.AbsPath)
}

// File resolves a vault-relative path to a File reference.
func (v *Vault) File(rel string) (File, error) {
	absPath, err := v.safePath(rel)
	if err != nil {
		return File{}, err
	}
	file, ok := v.fileFor(absPath)
	if !ok {
		return File{}, fmt.Errorf("%w: %s", ErrPathEscape, rel)
	}
	return file, nil
}

// Exists reports whether a file or folder is present at the relative path.
func (v *Vault) Exists(rel string) bool {
	absPath, err := v.safePath(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// CreateFolder creates the folder at the relative path, including parents.
func (v *Vault) CreateFolder(rel string) error {
	absPath, err := v.safePath(rel)
	if err != nil {
		return err
	}
	return os.MkdirAll(absPath, 0755)
}

// Create writes a new note at the relative path. It fails with ErrExists
// instead of overwriting.
func (v *Vault) Create(rel string, content []byte) (File, error) {
	file, err := v.File(rel)
	if err != nil {
		return File{}, err
	}

	f, err := os.OpenFile(file.AbsPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return File{}, fmt.Errorf("%w: %s", ErrExists, rel)
		}
		return File{}, err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return File{}, err
	}
	if err := f.Close(); err != nil {
		return File{}, err
	}
	return file, nil
}

// safePath resolves rel against the root and rejects paths that leave it.
func (v *Vault) safePath(rel string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(v.Root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	if absPath != v.Root && !strings.HasPrefix(absPath, v.Root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, rel)
	}
	return absPath, nil
}

func (v *Vault) fileFor(absPath string) (File, bool) {
	rel, err := filepath.Rel(v.Root, absPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return File{}, false
	}
	return File{Path: filepath.ToSlash(rel), AbsPath: absPath}, true
}

func (v *Vault) excluded(rel string) bool {
	for _, pattern := range v.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// isNoteFile returns true if the file is a markdown note
func isNoteFile(name string) bool {
	return strings.EqualFold(strings.TrimPrefix(filepath.Ext(name), "."), NoteExt)
}

// shouldSkipDir returns true for directories that should be skipped during scanning
func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist":
		return true
	}
	return false
}

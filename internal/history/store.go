// Package history is the content-addressed, timestamp-ordered store of
// generated documents. One file per version, named
// <unixMillisTimestamp>-<8hexCharHash>.md, under a hidden per-project
// history area that is kept out of the host project's version control.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// historyDir is the hidden per-project area, relative to the root.
	historyDir = ".readmegen/history"

	// MaxVersions is the retention cap. After every save, the oldest
	// versions beyond this count are evicted.
	MaxVersions = 20

	// previewLength bounds the human-readable preview in runes.
	previewLength = 80

	hashLength = 8
)

// ErrNotFound marks a version id with no stored content.
var ErrNotFound = errors.New("history: version not found")

// Version is one stored document version. Immutable once written.
type Version struct {
	// ID is "<unixMillis>-<8hexhash>", also the file stem.
	ID string `json:"id"`

	// Timestamp is the creation time.
	Timestamp time.Time `json:"timestamp"`

	// Hash is the 8-hex-char content hash.
	Hash string `json:"hash"`

	// Preview is the first meaningful content line, truncated.
	Preview string `json:"preview"`

	// Path is the stored file's location.
	Path string `json:"-"`
}

// Store manages the history area of one project root.
type Store struct {
	root string
}

// NewStore returns a store for the given project root. No filesystem
// access happens until the first operation.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// dir returns the history directory path.
func (s *Store) dir() string {
	return filepath.Join(s.root, filepath.FromSlash(historyDir))
}

// Save persists content as a new version and enforces retention. Eviction
// failures are swallowed; the save itself must succeed.
func (s *Store) Save(content string) (*Version, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	if err := s.writeIgnoreMarker(); err != nil {
		return nil, err
	}

	now := time.Now()
	hash := contentHash(content)
	id := fmt.Sprintf("%d-%s", now.UnixMilli(), hash)
	path := filepath.Join(dir, id+".md")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing version: %w", err)
	}

	s.trim()

	return &Version{
		ID:        id,
		Timestamp: now,
		Hash:      hash,
		Preview:   derivePreview(content),
		Path:      path,
	}, nil
}

// List returns all stored versions, newest first.
func (s *Store) List() ([]Version, error) {
	entries, err := os.ReadDir(s.dir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var versions []Version
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		v, ok := parseFilename(entry.Name())
		if !ok {
			continue
		}
		v.Path = filepath.Join(s.dir(), entry.Name())
		if data, err := os.ReadFile(v.Path); err == nil {
			v.Preview = derivePreview(string(data))
		}
		versions = append(versions, v)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Timestamp.After(versions[j].Timestamp)
	})
	return versions, nil
}

// Read returns the stored content of a version.
func (s *Store) Read(id string) (string, error) {
	if _, ok := parseFilename(id + ".md"); !ok {
		return "", ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir(), id+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Rollback overwrites the live README with the stored version's content.
// The version itself is kept.
func (s *Store) Rollback(id string) error {
	content, err := s.Read(id)
	if err != nil {
		return err
	}
	live := filepath.Join(s.root, "README.md")
	if err := os.WriteFile(live, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing live document: %w", err)
	}
	return nil
}

// Delete removes one version explicitly.
func (s *Store) Delete(id string) error {
	if _, ok := parseFilename(id + ".md"); !ok {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.dir(), id+".md"))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// trim evicts the oldest versions beyond MaxVersions. Best effort:
// deletion failures are ignored.
func (s *Store) trim() {
	versions, err := s.List()
	if err != nil || len(versions) <= MaxVersions {
		return
	}
	for _, v := range versions[MaxVersions:] {
		_ = os.Remove(v.Path)
	}
}

// writeIgnoreMarker keeps the history area out of the host project's
// version control.
func (s *Store) writeIgnoreMarker() error {
	marker := filepath.Join(s.root, ".readmegen", ".gitignore")
	if _, err := os.Stat(marker); err == nil {
		return nil
	}
	if err := os.WriteFile(marker, []byte("*\n"), 0o644); err != nil {
		return fmt.Errorf("writing ignore marker: %w", err)
	}
	return nil
}

// contentHash returns the first 8 hex chars of the content's SHA-256.
func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:hashLength]
}

// parseFilename recovers a Version from "<millis>-<hash>.md".
func parseFilename(name string) (Version, bool) {
	stem, ok := strings.CutSuffix(name, ".md")
	if !ok {
		return Version{}, false
	}
	millisStr, hash, ok := strings.Cut(stem, "-")
	if !ok || len(hash) != hashLength {
		return Version{}, false
	}
	millis, err := strconv.ParseInt(millisStr, 10, 64)
	if err != nil {
		return Version{}, false
	}
	return Version{
		ID:        stem,
		Timestamp: time.UnixMilli(millis),
		Hash:      hash,
	}, true
}

// derivePreview returns the first non-empty line that is not a heading,
// image, or badge marker, truncated to previewLength runes.
func derivePreview(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "![") || strings.HasPrefix(line, "[![") {
			continue
		}
		runes := []rune(line)
		if len(runes) > previewLength {
			return string(runes[:previewLength]) + "…"
		}
		return line
	}
	return ""
}

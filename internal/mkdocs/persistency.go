package mkdocs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/n2code/docwriter/internal"
	"github.com/spf13/afero"
)

const workInProgressFileSuffix = ".wip"
const backupFileSuffix = ".bkp"
const backupTimestampLayout = "20060102-150405.000000000"

// NewStore prepares access to the root document at location. Backups go to backupDir (next to the document if empty),
// backupCount limits how many are retained with 0 meaning unlimited.
func NewStore(fs afero.Fs, location string, backupDir string, backupCount int) *Store {
	if backupDir == "" {
		backupDir = filepath.Dir(location)
	}
	return &Store{fs: fs, location: location, backupDir: backupDir, backupCount: backupCount}
}

func (s *Store) Location() string {
	return s.location
}

// Load reads and parses the root document. A missing document reports internal.ErrBackingStoreMissing.
func (s *Store) Load() (*RootDocument, error) {
	leftoverWorkInProgressFile := s.location + workInProgressFileSuffix
	if exists, _ := afero.Exists(s.fs, leftoverWorkInProgressFile); exists {
		return nil, fmt.Errorf("old %s-file exists (%s), manual intervention necessary", workInProgressFileSuffix, leftoverWorkInProgressFile)
	}

	data, err := afero.ReadFile(s.fs, s.location)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", internal.ErrBackingStoreMissing, s.location)
	} else if err != nil {
		return nil, fmt.Errorf("reading root document failed: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s failed: %w", s.location, err)
	}
	return doc, nil
}

// Save backs up the current document and replaces it with the serialized doc via a temporary working copy.
func (s *Store) Save(doc *RootDocument) (change Change, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: saving %s failed: %w", internal.ErrWriteFailure, s.location, err)
		}
	}()

	change.After, err = doc.Marshal()
	if err != nil {
		return
	}

	mode := os.FileMode(0644)
	if info, statErr := s.fs.Stat(s.location); statErr == nil {
		mode = info.Mode().Perm()
		if change.Before, err = afero.ReadFile(s.fs, s.location); err != nil {
			return
		}
		if change.Backup, err = s.backup(change.Before, mode); err != nil {
			return
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		err = statErr
		return
	}

	tempPath := s.location + workInProgressFileSuffix
	if err = afero.WriteFile(s.fs, tempPath, change.After, mode); err != nil { //plausible failure
		return
	}
	if err = s.fs.Rename(tempPath, s.location); err != nil {
		err = fmt.Errorf("replacing root document with temporary working copy (%s) failed: %w", tempPath, err)
		return
	}
	return
}

func (s *Store) backup(content []byte, mode os.FileMode) (string, error) {
	if err := s.fs.MkdirAll(s.backupDir, 0755); err != nil {
		return "", fmt.Errorf("backup directory unavailable: %w", err)
	}
	prefix := filepath.Base(s.location) + "."
	backupPath := filepath.Join(s.backupDir, prefix+internal.Now().Format(backupTimestampLayout)+backupFileSuffix)
	if err := afero.WriteFile(s.fs, backupPath, content, mode); err != nil {
		return "", fmt.Errorf("backup failed: %w", err)
	}
	return backupPath, s.pruneBackups()
}

func (s *Store) pruneBackups() error {
	if s.backupCount <= 0 {
		return nil
	}
	backups, err := s.Backups()
	if err != nil {
		return fmt.Errorf("listing backups failed: %w", err)
	}
	for len(backups) > s.backupCount {
		if err := s.fs.Remove(backups[0]); err != nil {
			return fmt.Errorf("removing old backup failed: %w", err)
		}
		backups = backups[1:]
	}
	return nil
}

// Backups lists the retained backups, oldest first.
func (s *Store) Backups() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.backupDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	prefix := filepath.Base(s.location) + "."
	var backups []string
	for _, entry := range entries {
		if name := entry.Name(); !entry.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, backupFileSuffix) {
			backups = append(backups, filepath.Join(s.backupDir, name))
		}
	}
	sort.Strings(backups) //timestamp layout sorts chronologically
	return backups, nil
}

package dal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	stateFilePrefix  = "outage_state"
	exportsFileName  = "exports.json"
	stateFileMode    = 0o600
	stateDirFileMode = 0o750
)

// FileStore keeps every snapshot in its own JSON file inside dir.
type FileStore struct {
	dir string
	now func() time.Time
	mx  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, stateDirFileMode); err != nil {
		return nil, fmt.Errorf("create state dir=%s: %w", dir, err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

func (s *FileStore) GetSnapshot(key SnapshotKey) (Snapshot, bool, error) {
	var res Snapshot
	found, err := s.read(s.snapshotPath(key), &res)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read snapshot for key=%s: %w", key, err)
	}
	if !found || res.Empty() {
		return Snapshot{}, false, nil
	}
	return res, true, nil
}

// DeleteSnapshot removes the state file. A missing file is not an error.
func (s *FileStore) DeleteSnapshot(key SnapshotKey) error {
	err := os.Remove(s.snapshotPath(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete snapshot for key=%s: %w", key, err)
	}
	return nil
}

func (s *FileStore) PutSnapshot(key SnapshotKey, snapshot Snapshot) error {
	if err := s.write(s.snapshotPath(key), snapshot); err != nil {
		return fmt.Errorf("write snapshot for key=%s: %w", key, err)
	}
	return nil
}

func (s *FileStore) GetExportState(sink string) (ExportState, bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	states, err := s.readExports()
	if err != nil {
		return ExportState{}, false, err
	}
	res, ok := states[sink]
	return res, ok, nil
}

func (s *FileStore) PutExportState(sink, fingerprint string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	states, err := s.readExports()
	if err != nil {
		return err
	}
	states[sink] = ExportState{Fingerprint: fingerprint, ExportedAt: s.now()}
	if err = s.write(filepath.Join(s.dir, exportsFileName), states); err != nil {
		return fmt.Errorf("write export states: %w", err)
	}
	return nil
}

func (s *FileStore) readExports() (map[string]ExportState, error) {
	res := make(map[string]ExportState)
	if _, err := s.read(filepath.Join(s.dir, exportsFileName), &res); err != nil {
		return nil, fmt.Errorf("read export states: %w", err)
	}
	return res, nil
}

func (s *FileStore) snapshotPath(key SnapshotKey) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s_%s.json", stateFilePrefix, sanitize(key.ChannelID), sanitize(key.Group)))
}

func (s *FileStore) read(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// write replaces the file atomically.
func (s *FileStore) write(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(stateFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

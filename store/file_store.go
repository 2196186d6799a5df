package store

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/josephgoksu/todo/codec"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/types"
)

// FileTaskStore implements TaskStore on a single JSON file.
//
// The file is opened read-write once and the handle is kept until Close.
// Save rewinds, truncates and rewrites the file through that handle. No file
// lock is taken; concurrent invocations against one file are unsupported.
type FileTaskStore struct {
	fs      afero.Fs
	path    string
	file    afero.File
	list    *models.TaskList
	atomic  bool
	created bool
	log     *log.Logger
}

// Option configures a FileTaskStore.
type Option func(*FileTaskStore)

// WithAtomicSave makes Save write a temp file in the same directory and
// rename it over the storage file instead of rewriting in place.
func WithAtomicSave(enabled bool) Option {
	return func(s *FileTaskStore) {
		s.atomic = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *FileTaskStore) {
		if l != nil {
			s.log = l
		}
	}
}

// Open loads the store at path on fsys.
//
// An existing file is read and decoded; a decoding failure is an ErrSyntax
// naming the path and the file is left untouched. A missing file is created
// and immediately written with the empty-list encoding. Any other failure to
// open or create is an ErrIO naming the path.
func Open(fsys afero.Fs, path string, opts ...Option) (*FileTaskStore, error) {
	s := &FileTaskStore{
		fs:   fsys,
		path: path,
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileTaskStore) load() error {
	f, err := s.fs.OpenFile(s.path, os.O_RDWR, 0)
	if err == nil {
		return s.loadExisting(f)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return types.NewPathError(types.KindIO, "open storage file", s.path, err)
	}
	return s.bootstrap()
}

func (s *FileTaskStore) loadExisting(f afero.File) error {
	data, err := io.ReadAll(f)
	if err != nil {
		_ = f.Close()
		return types.NewPathError(types.KindIO, "read storage file", s.path, err)
	}

	list, err := codec.Decode(data)
	if err != nil {
		_ = f.Close()
		var te *types.TodoError
		if errors.As(err, &te) {
			te.Path = s.path
			return te
		}
		return types.NewPathError(types.KindSyntax, "decode", s.path, err)
	}

	s.file = f
	s.list = list
	s.log.Debug("loaded storage file", "path", s.path, "tasks", list.Len())
	return nil
}

func (s *FileTaskStore) bootstrap() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return types.NewPathError(types.KindIO, "create storage directory", dir, err)
		}
	}

	f, err := s.fs.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return types.NewPathError(types.KindIO, "create storage file", s.path, err)
	}

	s.file = f
	s.list = models.NewTaskList()
	s.created = true
	if err := s.rewrite(); err != nil {
		_ = f.Close()
		s.file = nil
		return err
	}
	s.log.Debug("created storage file", "path", s.path)
	return nil
}

// Tasks returns the live list.
func (s *FileTaskStore) Tasks() *models.TaskList {
	return s.list
}

// Path returns the storage file path.
func (s *FileTaskStore) Path() string {
	return s.path
}

// Created reports whether Open bootstrapped a new file.
func (s *FileTaskStore) Created() bool {
	return s.created
}

// Save writes the full encoding of the current list.
func (s *FileTaskStore) Save() error {
	if s.file == nil {
		return types.NewPathError(types.KindIO, "save", s.path, os.ErrClosed)
	}
	if s.atomic {
		return s.replace()
	}
	return s.rewrite()
}

// rewrite overwrites the file through the held handle. A failure after the
// truncate leaves the file empty or partial.
func (s *FileTaskStore) rewrite() error {
	data, err := codec.Encode(s.list)
	if err != nil {
		return err
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return types.NewPathError(types.KindIO, "rewind storage file", s.path, err)
	}
	if err := s.file.Truncate(0); err != nil {
		return types.NewPathError(types.KindIO, "truncate storage file", s.path, err)
	}
	if _, err := s.file.Write(data); err != nil {
		return types.NewPathError(types.KindIO, "write storage file", s.path, err)
	}
	s.log.Debug("saved storage file", "path", s.path, "tasks", s.list.Len(), "bytes", len(data))
	return nil
}

// replace writes to a temp file next to the storage file and renames it into
// place, then reopens the handle on the new file. The storage file keeps its
// permission bits.
func (s *FileTaskStore) replace() error {
	data, err := codec.Encode(s.list)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := s.fs.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return types.NewPathError(types.KindIO, "create temp file", filepath.Dir(s.path), err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = s.fs.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return types.NewPathError(types.KindIO, "write temp file", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return types.NewPathError(types.KindIO, "sync temp file", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return types.NewPathError(types.KindIO, "close temp file", tmpPath, err)
	}
	if err := s.fs.Chmod(tmpPath, mode); err != nil {
		return types.NewPathError(types.KindIO, "chmod temp file", tmpPath, err)
	}

	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		return types.NewPathError(types.KindIO, "replace storage file", s.path, err)
	}

	_ = s.file.Close()
	f, err := s.fs.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		s.file = nil
		return types.NewPathError(types.KindIO, "reopen storage file", s.path, err)
	}
	s.file = f
	s.log.Debug("replaced storage file", "path", s.path, "tasks", s.list.Len(), "bytes", len(data))
	return nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileTaskStore) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return types.NewPathError(types.KindIO, "close storage file", s.path, err)
	}
	return nil
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"
)

const (
	entryExt   = ".entry"
	tempPrefix = ".tmp-"
)

// Shared zstd coders; EncodeAll and DecodeAll are safe for concurrent use.
var (
	encoder, _ = zstd.NewWriter(nil)
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
)

// envelope is the on-disk form of an Entry before compression.
type envelope struct {
	Key         string        `json:"key"`
	Digest      string        `json:"digest"`
	CreatedAt   time.Time     `json:"created_at"`
	AccessedAt  time.Time     `json:"accessed_at"`
	TTL         time.Duration `json:"ttl"`
	AccessCount int64         `json:"access_count"`
	Data        []byte        `json:"data"`
}

// FileStore persists entries as files on a billy filesystem.
// Each entry lives in its own zstd-compressed file named after the hash of its
// key, and is written atomically via a temporary file and rename.
type FileStore struct {
	fs       billy.Filesystem
	rootPath string
	mu       sync.RWMutex
}

// NewFileStore creates a store rooted at rootPath on fs, creating the directory if needed.
func NewFileStore(fs billy.Filesystem, rootPath string) (*FileStore, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if rootPath == "" {
		return nil, fmt.Errorf("root path cannot be empty")
	}

	if err := fs.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root directory: %w", err)
	}

	return &FileStore{fs: fs, rootPath: rootPath}, nil
}

// pathFor returns the file path for key. Files are sharded by the first two
// hex characters of the hashed key.
func (s *FileStore) pathFor(key string) string {
	name := Key([]byte(key))
	return path.Join(s.rootPath, name[:2], name+entryExt)
}

// Load reads, decompresses and verifies the entry stored under key.
// Entries that fail to decode or verify are reported as ErrCorrupted.
func (s *FileStore) Load(ctx context.Context, key string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.readFile(s.pathFor(key))
	if err != nil {
		return nil, err
	}
	if entry.Key != key {
		return nil, fmt.Errorf("%w: file for %q holds key %q", ErrCorrupted, key, entry.Key)
	}
	return entry, nil
}

// Save writes entry atomically, replacing any previous entry with the same key.
func (s *FileStore) Save(ctx context.Context, entry *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := jsoniter.Marshal(envelope{
		Key:         entry.Key,
		Digest:      entry.Digest.String(),
		CreatedAt:   entry.CreatedAt,
		AccessedAt:  entry.AccessedAt,
		TTL:         entry.TTL,
		AccessCount: entry.AccessCount,
		Data:        entry.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}
	compressed := encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2))

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAtomically(s.pathFor(entry.Key), compressed)
}

// Remove deletes the entry stored under key.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	return nil
}

// List reads every entry file and describes it.
// Files that cannot be decoded are skipped; they are removed on the next Clear.
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shards, err := s.readDir(s.rootPath)
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, shard := range shards {
		if !shard.IsDir() || !isShardName(shard.Name()) {
			continue
		}
		files, err := s.readDir(path.Join(s.rootPath, shard.Name()))
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if file.IsDir() || path.Ext(file.Name()) != entryExt {
				continue
			}
			entry, err := s.readFile(path.Join(s.rootPath, shard.Name(), file.Name()))
			if err != nil {
				continue
			}
			infos = append(infos, entry.info())
		}
	}
	return infos, nil
}

// Clear removes every entry file below the root path, along with temporary
// files left by interrupted writes. Other files in the root path are kept.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shards, err := s.readDir(s.rootPath)
	if err != nil {
		return err
	}
	for _, shard := range shards {
		if !shard.IsDir() || !isShardName(shard.Name()) {
			continue
		}
		dir := path.Join(s.rootPath, shard.Name())
		files, err := s.readDir(dir)
		if err != nil {
			return err
		}
		kept := 0
		for _, file := range files {
			if file.IsDir() || !isStoreFile(file.Name()) {
				kept++
				continue
			}
			if err := s.fs.Remove(path.Join(dir, file.Name())); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", file.Name(), err)
			}
		}
		if kept == 0 {
			if err := s.fs.Remove(dir); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", shard.Name(), err)
			}
		}
	}
	return nil
}

// isShardName reports whether name is a two character lowercase hex prefix.
func isShardName(name string) bool {
	if len(name) != 2 {
		return false
	}
	for _, c := range name {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func isStoreFile(name string) bool {
	return path.Ext(name) == entryExt || strings.HasPrefix(name, tempPrefix)
}

func (s *FileStore) readDir(dir string) ([]os.FileInfo, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	return infos, nil
}

// readFile decodes and verifies a single entry file.
func (s *FileStore) readFile(filePath string) (*Entry, error) {
	compressed, err := util.ReadFile(s.fs, filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}

	raw, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	var env envelope
	if err := jsoniter.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	entry := &Entry{
		Key:         env.Key,
		Data:        env.Data,
		Digest:      digest.Digest(env.Digest),
		CreatedAt:   env.CreatedAt,
		AccessedAt:  env.AccessedAt,
		TTL:         env.TTL,
		AccessCount: env.AccessCount,
	}
	if err := entry.Verify(); err != nil {
		return nil, err
	}
	return entry, nil
}

// writeAtomically writes data to a temporary file and renames it into place,
// so readers never observe a partially written entry.
func (s *FileStore) writeAtomically(filePath string, data []byte) error {
	dir := path.Dir(filePath)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tmp, err := s.fs.TempFile(dir, tempPrefix)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := s.fs.Rename(tmpPath, filePath); err != nil {
		// Some filesystems refuse to rename over an existing file.
		if rmErr := s.fs.Remove(filePath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			_ = s.fs.Remove(tmpPath)
			return fmt.Errorf("failed to rename temporary file to %q: %w", filePath, err)
		}
		if err := s.fs.Rename(tmpPath, filePath); err != nil {
			_ = s.fs.Remove(tmpPath)
			return fmt.Errorf("failed to rename temporary file to %q: %w", filePath, err)
		}
	}
	return nil
}

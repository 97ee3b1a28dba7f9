package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ryl/internal/project"
)

// cacheSchema — версия формата записей на диске. Несовпадение версии
// трактуется как промах.
const cacheSchema uint16 = 1

// DiskCache хранит результаты поиска файлов модулей между запусками.
// Ключ — хеш содержимого объявляющего файла, значение — найденные пути.
// Nil-получатель безопасен: все операции превращаются в no-op.
type DiskCache struct {
	mu   sync.RWMutex
	root string // <cacheDir>/mods
}

type modulePayload struct {
	Schema uint16   `msgpack:"schema"`
	Keys   []string `msgpack:"keys"`
	Paths  []string `msgpack:"paths"`
}

// OpenDiskCache открывает кэш в стандартном месте:
// $XDG_CACHE_HOME/ryl либо ~/.cache/ryl.
func OpenDiskCache() (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate cache directory: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, "ryl"))
}

// OpenDiskCacheAt открывает кэш в заданном каталоге (для тестов и
// нестандартных раскладок).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	root := filepath.Join(dir, "mods")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &DiskCache{root: root}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.root, hex.EncodeToString(key[:])+".mp")
}

// Get возвращает закэшированные пути поиска или miss.
func (c *DiskCache) Get(key project.Digest) (map[string]string, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload modulePayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchema || len(payload.Keys) != len(payload.Paths) {
		return nil, false
	}
	out := make(map[string]string, len(payload.Keys))
	for i, k := range payload.Keys {
		out[k] = payload.Paths[i]
	}
	return out, true
}

// Put атомарно записывает пути поиска для ключа.
func (c *DiskCache) Put(key project.Digest, lookups map[string]string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := modulePayload{Schema: cacheSchema}
	payload.Keys = make([]string, 0, len(lookups))
	for k := range lookups {
		payload.Keys = append(payload.Keys, k)
	}
	sort.Strings(payload.Keys)
	payload.Paths = make([]string, len(payload.Keys))
	for i, k := range payload.Keys {
		payload.Paths[i] = lookups[k]
	}

	raw, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(c.root, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close cache entry: %w", err)
	}
	if err := os.Rename(tmpName, c.pathFor(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to publish cache entry: %w", err)
	}
	return nil
}

// DropAll удаляет все записи кэша.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.root); err != nil {
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	return os.MkdirAll(c.root, 0o755)
}

package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

// FolderConfFile names the file holding a directory's FolderConf.
const FolderConfFile = "folder.conf"

var (
	_ FolderCache = NewMapFolderCache()
	_ FolderCache = RedisFolderCache{}
)

// A FolderConf overrides rendering for the content files of one directory.
type FolderConf struct {
	// Layouts pairs a file stem with the layout wrapping it.
	Layouts map[string]string `json:"layouts,omitempty" yaml:"layouts"`
}

// Layout returns the layout wrapping files named stem.
func (fc FolderConf) Layout(stem string) string {
	if l, ok := fc.Layouts[stem]; ok && l != "" {
		return l
	}

	return path.Join("layouts", stem+".html")
}

// ReadFolderConf reads the FolderConf of dir in fsys.
// A directory without a folder.conf has a zero FolderConf.
func ReadFolderConf(fsys fs.FS, dir string) (FolderConf, error) {
	fp := path.Join(dir, FolderConfFile)
	b, err := fs.ReadFile(fsys, fp)
	if errors.Is(err, fs.ErrNotExist) {
		return FolderConf{}, nil
	}
	if err != nil {
		return FolderConf{}, fmt.Errorf("%w: %s: %s", ErrBadFolderConf, fp, err)
	}

	var fc FolderConf
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return FolderConf{}, fmt.Errorf("%w: %s: %s", ErrBadFolderConf, fp, err)
	}

	return fc, nil
}

// A FolderCache stores FolderConfs by directory.
type FolderCache interface {
	Get(ctx context.Context, dir string) (FolderConf, bool)
	Set(ctx context.Context, dir string, fc FolderConf)
}

// A MapFolderCache stores FolderConfs in memory.
// Entries live until the process exits.
type MapFolderCache struct {
	mu sync.RWMutex
	m  map[string]FolderConf
}

// NewMapFolderCache constructs an empty *MapFolderCache.
func NewMapFolderCache() *MapFolderCache {
	return &MapFolderCache{m: make(map[string]FolderConf)}
}

// Get retrieves the FolderConf of dir.
func (c *MapFolderCache) Get(ctx context.Context, dir string) (FolderConf, bool) {
	select {
	case <-ctx.Done():
		return FolderConf{}, false
	default:
		c.mu.RLock()
		defer c.mu.RUnlock()

		fc, ok := c.m[dir]
		return fc, ok
	}
}

// Set overwrites the FolderConf of dir.
func (c *MapFolderCache) Set(ctx context.Context, dir string, fc FolderConf) {
	select {
	case <-ctx.Done():
		return
	default:
		c.mu.Lock()
		defer c.mu.Unlock()

		c.m[dir] = fc
	}
}

// A RedisFolderCache stores FolderConfs in a Redis backend
// so every process serving the same content shares them.
type RedisFolderCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisFolderCache constructs a RedisFolderCache with the options passed in.
// Entries expire after ttl; a zero ttl keeps them until evicted.
func NewRedisFolderCache(opts *redis.Options, ttl time.Duration) RedisFolderCache {
	return RedisFolderCache{client: redis.NewClient(opts), prefix: "cairn:folder:", ttl: ttl}
}

// Get retrieves the FolderConf of dir from the connected Redis backend.
func (c RedisFolderCache) Get(ctx context.Context, dir string) (FolderConf, bool) {
	select {
	case <-ctx.Done():
		return FolderConf{}, false
	default:
		b, err := c.client.Get(ctx, c.prefix+dir).Bytes()
		if err != nil {
			return FolderConf{}, false
		}

		var fc FolderConf
		if err := json.Unmarshal(b, &fc); err != nil {
			return FolderConf{}, false
		}

		return fc, true
	}
}

// Set saves the FolderConf of dir in the Redis backend.
func (c RedisFolderCache) Set(ctx context.Context, dir string, fc FolderConf) {
	select {
	case <-ctx.Done():
		return
	default:
		b, err := json.Marshal(fc)
		if err != nil {
			return
		}

		c.client.Set(ctx, c.prefix+dir, b, c.ttl)
	}
}

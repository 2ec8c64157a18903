package catalog

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Cache is a read-through Source. Tables are loaded from the wrapped source on
// first use and kept until Invalidate, or until a watched file changes.
type Cache struct {
	src    Source
	logger *slog.Logger

	mu      sync.Mutex
	table   AdjacencyTable
	catalog EffectCatalog

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewCache wraps src. A nil logger uses slog.Default.
func NewCache(src Source, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{src: src, logger: logger.With("component", "cache")}
}

func (c *Cache) Ingredients() (AdjacencyTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.table != nil {
		return c.table, nil
	}
	table, err := c.src.Ingredients()
	if err != nil {
		return nil, err
	}
	c.table = table
	return table, nil
}

func (c *Cache) Effects() (EffectCatalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.catalog != nil {
		return c.catalog, nil
	}
	cat, err := c.src.Effects()
	if err != nil {
		return nil, err
	}
	c.catalog = cat
	return cat, nil
}

// Invalidate drops both cached tables.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.table = nil
	c.catalog = nil
	c.mu.Unlock()
}

// Watch invalidates the cache whenever one of paths is written, created,
// removed or renamed. The parent directories are watched so that editors
// which replace files on save are still seen. A running watch is stopped
// first.
func (c *Cache) Watch(paths ...string) error {
	if err := c.Close(); err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return err
		}
		dirs[dir] = true
	}

	c.watcher = fw
	c.done = make(chan struct{})
	go c.loop(fw, targets)
	return nil
}

// Close stops watching. It is a no-op if Watch was never called.
func (c *Cache) Close() error {
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	<-c.done
	c.watcher = nil
	return err
}

func (c *Cache) loop(fw *fsnotify.Watcher, targets map[string]bool) {
	defer close(c.done)
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !targets[name] || event.Op&relevant == 0 {
				continue
			}
			c.Invalidate()
			c.logger.Info("document changed, cache invalidated", "path", event.Name, "op", event.Op.String())
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			c.logger.Warn("watch error", "error", err)
		}
	}
}

package schema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/jacoelho/xsd"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache compiles schemas on first use and hands out the same Handle for every
// later request of the same name. Concurrent first requests for one name share
// a single compilation; unrelated names compile independently. Failed loads
// are not remembered, so a later call retries.
type Cache struct {
	locator fs.FS
	logger  *zap.Logger

	group singleflight.Group

	mu       sync.RWMutex
	handles  map[string]*Handle
	failures int
}

// CacheOption configures a Cache
type CacheOption func(*Cache)

// WithLogger sets the logger used for compile and cleanup diagnostics
func WithLogger(logger *zap.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates an empty cache reading schemas from locator. A nil
// locator serves the embedded schemas.
func NewCache(locator fs.FS, opts ...CacheOption) *Cache {
	if locator == nil {
		locator = Embedded()
	}
	c := &Cache{
		locator: locator,
		logger:  zap.NewNop(),
		handles: make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrLoad returns the compiled schema for name, loading it through the
// locator the first time. Errors are *ResolutionError.
func (c *Cache) GetOrLoad(name string) (*Handle, error) {
	if h, ok := c.lookup(name); ok {
		return h, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		// Another caller may have finished between our lookup and Do
		if h, ok := c.lookup(name); ok {
			return h, nil
		}

		h, err := c.load(name)
		if err != nil {
			c.mu.Lock()
			c.failures++
			c.mu.Unlock()
			return nil, err
		}

		c.mu.Lock()
		c.handles[name] = h
		c.mu.Unlock()
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Handle), nil
}

func (c *Cache) lookup(name string) (*Handle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handles[name]
	return h, ok
}

// load reads the schema once and compiles it from memory
func (c *Cache) load(name string) (*Handle, error) {
	start := time.Now()

	data, err := c.read(name)
	if err != nil {
		return nil, err
	}

	compiled, err := xsd.LoadWithOptions(singleFileFS{name: name, data: data}, name, xsd.NewLoadOptions())
	if err != nil {
		return nil, &ResolutionError{Name: name, Cause: fmt.Errorf("%w: %w", ErrSchemaMalformed, err)}
	}

	c.logger.Debug("compiled schema",
		zap.String("schema", name),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	return &Handle{name: name, schema: compiled}, nil
}

func (c *Cache) read(name string) ([]byte, error) {
	f, err := c.locator.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResolutionError{Name: name, Cause: fmt.Errorf("%w: %w", ErrSchemaNotFound, err)}
		}
		return nil, &ResolutionError{Name: name, Cause: fmt.Errorf("%w: %w", ErrSchemaUnreadable, err)}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			c.logger.Debug("failed to close schema stream", zap.String("schema", name), zap.Error(cerr))
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &ResolutionError{Name: name, Cause: fmt.Errorf("%w: %w", ErrSchemaUnreadable, err)}
	}
	return data, nil
}

// Stats is a snapshot of the cache contents
type Stats struct {
	Compiled []string
	Failures int
}

// Stats reports the compiled schema names, sorted, and the number of failed loads
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.handles))
	for name := range c.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return Stats{Compiled: names, Failures: c.failures}
}

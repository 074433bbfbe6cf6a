package loader

import (
	"io/fs"

	"github.com/mapload/mapload/pkg/schema"
	"go.uber.org/zap"
)

// Option configures a Loader
type Option func(*Loader)

// WithValidation turns schema validation on or off. Validation is on by
// default.
func WithValidation(enabled bool) Option {
	return func(l *Loader) {
		l.validate = enabled
	}
}

// WithLogger sets the logger for debug diagnostics. It is also handed to the
// schema cache the loader creates.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSchemaCache shares an existing cache between loaders
func WithSchemaCache(cache *schema.Cache) Option {
	return func(l *Loader) {
		l.cache = cache
	}
}

// WithLocator sets where schemas are read from when the loader builds its own
// cache. It has no effect together with WithSchemaCache.
func WithLocator(locator fs.FS) Option {
	return func(l *Loader) {
		l.locator = locator
	}
}

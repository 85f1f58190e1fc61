package spectral

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Cache is a Planner that creates at most one transform per size and shares
// it between all callers. A single mutex guards both the plan table and
// every transform call, so any number of convolvers, on any goroutines, may
// share one Cache. The lock is held for one Forward or Inverse call at a
// time.
type Cache struct {
	mu      sync.Mutex
	backend Backend
	plans   map[int]*sharedTransform
	log     logrus.FieldLogger
}

// NewCache returns an empty cache creating transforms with backend.
// A nil backend selects AlgoFFT; a nil logger selects the logrus standard
// logger.
func NewCache(backend Backend, logger logrus.FieldLogger) *Cache {
	if backend == nil {
		backend = AlgoFFT
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Cache{
		backend: backend,
		plans:   make(map[int]*sharedTransform),
		log:     logger,
	}
}

// Plan returns the cached transform of size n, creating it on first use.
func (c *Cache) Plan(n int) (Transform, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.plans[n]; ok {
		return t, nil
	}

	inner, err := c.backend(n)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"function": "Cache.Plan",
			"size":     n,
			"error":    err.Error(),
		}).Error("Transform plan creation failed")
		return nil, err
	}

	t := &sharedTransform{mu: &c.mu, inner: inner}
	c.plans[n] = t

	c.log.WithFields(logrus.Fields{
		"function": "Cache.Plan",
		"size":     n,
		"cached":   len(c.plans),
	}).Debug("Created transform plan")

	return t, nil
}

// Len returns the number of cached plans.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plans)
}

// sharedTransform serializes calls into a cached transform on the owning
// cache's mutex.
type sharedTransform struct {
	mu    *sync.Mutex
	inner Transform
}

func (t *sharedTransform) Size() int { return t.inner.Size() }

func (t *sharedTransform) Forward(dst, src []complex128) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Forward(dst, src)
}

func (t *sharedTransform) Inverse(dst, src []complex128) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Inverse(dst, src)
}

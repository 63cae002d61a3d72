package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"sync/atomic"
)

// ErrUnknownService is returned when an lb:// name has no registered instances.
var ErrUnknownService = errors.New("no instances registered for service")

type instancePool struct {
	instances []*url.URL
	next      atomic.Uint64
}

func (p *instancePool) pick() *url.URL {
	n := p.next.Add(1) - 1
	return p.instances[n%uint64(len(p.instances))]
}

// Registry maps service names to instance base URLs and spreads calls round-robin.
type Registry struct {
	mu       sync.RWMutex
	services map[string]*instancePool
}

// NewRegistry creates a registry from service name to instance URLs.
func NewRegistry(services map[string][]string) (*Registry, error) {
	r := &Registry{services: make(map[string]*instancePool, len(services))}
	for name, instances := range services {
		if err := r.Register(name, instances...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register replaces the instances of a service. An empty list removes it.
func (r *Registry) Register(name string, instances ...string) error {
	pool := &instancePool{instances: make([]*url.URL, 0, len(instances))}
	for _, raw := range instances {
		u, err := parseTarget(raw)
		if err != nil {
			return fmt.Errorf("service %s: %w", name, err)
		}
		pool.instances = append(pool.instances, u)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(pool.instances) == 0 {
		delete(r.services, name)
		return nil
	}
	r.services[name] = pool
	return nil
}

// Pick returns the next instance of the named service.
func (r *Registry) Pick(name string) (*url.URL, error) {
	r.mu.RLock()
	pool, ok := r.services[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, name)
	}
	return pool.pick(), nil
}

// Services lists the registered service names in sorted order.
func (r *Registry) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package gateway

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/xy-planning-network/cairn/route"
)

//go:generate mockgen -destination=gatewaytest/mock_service.go -package=gatewaytest github.com/xy-planning-network/cairn/gateway Service

// A Service handles requests handed to it by name.
// rc carries the path left to handle, the endpoint prefix consumed so far and the query arguments.
type Service interface {
	Main(w http.ResponseWriter, r *http.Request, rc *route.RequestContext) error
}

// A ServiceFunc is an ordinary function acting as a Service.
type ServiceFunc func(w http.ResponseWriter, r *http.Request, rc *route.RequestContext) error

// Main calls fn.
func (fn ServiceFunc) Main(w http.ResponseWriter, r *http.Request, rc *route.RequestContext) error {
	return fn(w, r, rc)
}

// A Registry holds the Services of a process by name.
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
}

// NewRegistry constructs an empty *Registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]Service)}
}

// Register pairs name with s, replacing any Service registered under name.
func (reg *Registry) Register(name string, s Service) error {
	if name == "" {
		return fmt.Errorf("%w: service name cannot be empty", ErrNotValid)
	}

	if s == nil {
		return fmt.Errorf("%w: service %q cannot be nil", ErrNotValid, name)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.services[name] = s
	return nil
}

// Get retrieves the Service registered under name.
func (reg *Registry) Get(name string) (Service, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	s, ok := reg.services[name]
	return s, ok
}

// Names lists the registered names in order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.services))
	for name := range reg.services {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Delegate hands the request to the Service registered under name.
// If there is none, ErrServiceNotFound returns.
func (reg *Registry) Delegate(name string, w http.ResponseWriter, r *http.Request, rc *route.RequestContext) error {
	s, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrServiceNotFound, name)
	}

	return s.Main(w, r, rc)
}

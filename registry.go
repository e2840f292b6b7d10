package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("dispatch: command not found")
	ErrLoadFailed          = errors.New("dispatch: command failed to load")
	ErrCommandExists       = errors.New("dispatch: command already registered")
	ErrNilFactory          = errors.New("dispatch: nil command factory")
	ErrInvalidRegistration = errors.New("dispatch: invalid registration")
)

// Loader resolves a command instance by namespace and canonical name.
// Absent identities classify as ErrNotFound via errors.Is; any other
// error is a load failure.
type Loader interface {
	Load(namespace, name string) (Command, error)
}

// Lister enumerates registrations for help listings. Implemented by
// Registry; optional for custom Loaders.
type Lister interface {
	Entries(namespace string) []Registration
}

// KeyFunc derives the qualified registry key for a namespace/name pair.
type KeyFunc func(namespace, name string) string

// DefaultKey joins namespace and name with a fixed separator.
func DefaultKey(namespace, name string) string {
	return namespace + "::" + name
}

type slot struct {
	namespace string
	reg       Registration
}

// Registry stores command registrations by qualified key.
type Registry struct {
	key   KeyFunc
	items map[string]slot
}

// NewRegistry creates an empty registry with the default key strategy.
func NewRegistry() *Registry {
	return NewRegistryWithKeyFunc(DefaultKey)
}

// NewRegistryWithKeyFunc creates an empty registry resolving qualified
// keys through fn.
func NewRegistryWithKeyFunc(fn KeyFunc) *Registry {
	if fn == nil {
		fn = DefaultKey
	}
	return &Registry{key: fn, items: make(map[string]slot)}
}

// Register adds a command registration under a namespace.
func (r *Registry) Register(namespace string, reg Registration) error {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegistration)
	}
	if reg.New == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, name)
	}

	k := r.key(namespace, name)
	if _, ok := r.items[k]; ok {
		return fmt.Errorf("%w: %s", ErrCommandExists, k)
	}
	reg.Name = name
	r.items[k] = slot{namespace: namespace, reg: reg}
	return nil
}

// Lookup returns a registration without instantiating it.
func (r *Registry) Lookup(namespace, name string) (Registration, bool) {
	s, ok := r.items[r.key(namespace, name)]
	return s.reg, ok
}

// Load instantiates the command registered under namespace/name.
// Unknown identities report ErrNotFound; a factory that errors, panics,
// or returns nil reports ErrLoadFailed.
func (r *Registry) Load(namespace, name string) (Command, error) {
	k := r.key(namespace, name)
	s, ok := r.items[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}

	cmd, err := construct(s.reg.New)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, k, err)
	}
	if cmd == nil {
		return nil, fmt.Errorf("%w: %s: factory returned nil", ErrLoadFailed, k)
	}
	return cmd, nil
}

// Entries returns a namespace's registrations sorted by name.
func (r *Registry) Entries(namespace string) []Registration {
	list := make([]Registration, 0, len(r.items))
	for _, s := range r.items {
		if s.namespace == namespace {
			list = append(list, s.reg)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func construct(fn Factory) (cmd Command, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("factory panic: %v", rec)
		}
	}()
	return fn()
}

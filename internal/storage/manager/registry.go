package manager

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// Registry is the process-wide table store, mapping table name to its
// immutable snapshot in a thread-safe way. It starts empty and is mutated
// only through explicit registration; tables themselves never change after
// construction, so a lookup can hand out the snapshot without copying.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*schema.Table
}

// NewRegistry creates an empty table registry.
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]*schema.Table),
	}
}

// Register stores a table under its name, replacing any previous table
// registered under the same name.
func (r *Registry) Register(t *schema.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, replaced := r.tables[t.Name]; replaced {
		slog.Debug("Replacing registered table", "name", t.Name, "rows", t.RowCount)
	}
	r.tables[t.Name] = t
}

// Get returns the table registered under the given name.
func (r *Registry) Get(name string) (*schema.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, &errors.TableNotFoundError{Table: name}
	}
	return t, nil
}

// Drop removes a table from the registry.
func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; !ok {
		return &errors.TableNotFoundError{Table: name}
	}
	delete(r.tables, name)
	return nil
}

// List returns the registered table names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

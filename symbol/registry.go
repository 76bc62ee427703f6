package symbol

import (
	"sync/atomic"
)

// Registry holds the current table; Swap replaces it as a whole
// Tokens keep ids, so a swap never leaves dangling references
type Registry struct {
	current atomic.Pointer[Table]
	params  atomic.Pointer[Params]
}

// NewRegistry generates the initial table
func NewRegistry(p Params) *Registry {
	r := &Registry{}
	r.Regenerate(p)
	return r
}

// Current returns the active table
func (r *Registry) Current() *Table {
	return r.current.Load()
}

// Params returns the parameters the active table was generated from
func (r *Registry) Params() Params {
	if p := r.params.Load(); p != nil {
		return *p
	}
	return Params{}
}

// Swap installs t and returns the previous table
func (r *Registry) Swap(t *Table) *Table {
	return r.current.Swap(t)
}

// Regenerate builds and installs a new table from p
func (r *Registry) Regenerate(p Params) *Table {
	t := Generate(p)
	r.params.Store(&p)
	r.current.Store(t)
	return t
}

package symbol

import (
	"sort"
)

type pairKey struct {
	a, b ID
}

func orderedPair(a, b ID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Table is an immutable generated symbol set
// Callers never patch a table; a config change produces a new one
type Table struct {
	maxLevel int

	defs     map[ID]*Definition
	mandalas map[ID]Mandala
	byKey    map[Key]ID
	recipes  map[pairKey]ID

	l1       []ID
	l1Normal []ID
	ids      []ID
}

func newTable(maxLevel int) *Table {
	n := 0
	if maxLevel > 0 {
		n = maxLevel * 4
	}
	return &Table{
		maxLevel: maxLevel,
		defs:     make(map[ID]*Definition, n+3),
		mandalas: make(map[ID]Mandala, n+3),
		byKey:    make(map[Key]ID, n+3),
		recipes:  make(map[pairKey]ID, n),
	}
}

func (t *Table) add(d Definition, m Mandala) {
	def := d
	t.defs[d.ID] = &def
	t.mandalas[d.ID] = m
	t.byKey[d.Key] = d.ID
	t.ids = append(t.ids, d.ID)
}

func (t *Table) setRecipe(id, a, b ID) {
	d, ok := t.defs[id]
	if !ok {
		return
	}
	d.recipe = [2]ID{a, b}
	d.hasRecipe = true
	t.recipes[orderedPair(a, b)] = id
}

func (t *Table) finish() {
	for _, shape := range NormalShapes {
		if id, ok := t.byKey[Key{Level: 1, Shape: shape}]; ok {
			t.l1Normal = append(t.l1Normal, id)
		}
	}
	t.l1 = append(t.l1, t.l1Normal...)
	for _, id := range []ID{VoidID, LifeID} {
		if _, ok := t.defs[id]; ok {
			t.l1 = append(t.l1, id)
		}
	}
}

// Lookup returns a copy of the definition
func (t *Table) Lookup(id ID) (Definition, bool) {
	d, ok := t.defs[id]
	if !ok {
		return Definition{}, false
	}
	return *d, true
}

// Has reports whether id is defined
func (t *Table) Has(id ID) bool {
	_, ok := t.defs[id]
	return ok
}

// ClassOf returns the class of id, ClassNormal when unknown
func (t *Table) ClassOf(id ID) Class {
	if d, ok := t.defs[id]; ok {
		return d.Class
	}
	return ClassNormal
}

func (t *Table) Mandala(id ID) (Mandala, bool) {
	m, ok := t.mandalas[id]
	return m, ok
}

// IDFor resolves a structured key
func (t *Table) IDFor(k Key) (ID, bool) {
	id, ok := t.byKey[k]
	return id, ok
}

// Combine returns the symbol whose recipe is exactly {a, b}, order independent
func (t *Table) Combine(a, b ID) (ID, bool) {
	id, ok := t.recipes[orderedPair(a, b)]
	return id, ok
}

// Promote returns the same shape one level up, used by simple and wildcard combination modes
func (t *Table) Promote(id ID) (ID, bool) {
	d, ok := t.defs[id]
	if !ok || d.Class != ClassNormal {
		return "", false
	}
	next, ok := t.byKey[Key{Level: d.Level + 1, Shape: d.Key.Shape}]
	return next, ok
}

// L1Symbols lists every level-1 spawnable id: the recipe shapes, void and life
// The capstone is level 32 and never listed
func (t *Table) L1Symbols() []ID {
	return append([]ID(nil), t.l1...)
}

// L1NormalSymbols lists the level-1 recipe shapes in cycle order
func (t *Table) L1NormalSymbols() []ID {
	return append([]ID(nil), t.l1Normal...)
}

func (t *Table) MaxLevel() int {
	return t.maxLevel
}

func (t *Table) Len() int {
	return len(t.defs)
}

// IDs returns all ids sorted
func (t *Table) IDs() []ID {
	out := append([]ID(nil), t.ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

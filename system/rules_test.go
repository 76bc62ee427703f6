package system

import (
	"testing"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/symbol"
)

func TestResolverSelect(t *testing.T) {
	solid := symbol.ShapeSolidBoth
	left := symbol.ShapeSolidLeft

	tests := []struct {
		name   string
		mutate func(*config.Config)
		a, b   func(t *testing.T, r Resolver) symbol.ID
		want   RuleKind
	}{
		{
			name: "void beats everything",
			a:    fixed(symbol.VoidID),
			b:    level(3, solid),
			want: RuleVoid,
		},
		{
			name: "two voids eliminate",
			a:    fixed(symbol.VoidID),
			b:    fixed(symbol.VoidID),
			want: RuleEliminate,
		},
		{
			name: "life pair",
			a:    fixed(symbol.LifeID),
			b:    fixed(symbol.LifeID),
			want: RuleLifePair,
		},
		{
			name:   "same symbol hard degrade",
			mutate: func(c *config.Config) { c.EnableHardDegradation = true },
			a:      level(2, solid),
			b:      level(2, solid),
			want:   RuleHardDegrade,
		},
		{
			name: "hard degrade yields to wildcard mode",
			mutate: func(c *config.Config) {
				c.EnableHardDegradation = true
				c.EnableWildcard = true
			},
			a:    level(2, solid),
			b:    level(2, solid),
			want: RuleEliminate,
		},
		{
			name:   "hard degrade needs a recipe",
			mutate: func(c *config.Config) { c.EnableHardDegradation = true },
			a:      level(1, solid),
			b:      level(1, solid),
			want:   RuleEliminate,
		},
		{
			name:   "simple mode promotes same symbol",
			mutate: func(c *config.Config) { c.EnableSimpleCombinationMode = true },
			a:      level(1, solid),
			b:      level(1, solid),
			want:   RuleCombine,
		},
		{
			name: "complementary shapes combine",
			a:    level(1, solid),
			b:    level(1, left),
			want: RuleCombine,
		},
		{
			name:   "wildcard promotes same level normal",
			mutate: func(c *config.Config) { c.EnableWildcard = true },
			a:      level(2, symbol.ShapeWildcard),
			b:      level(2, left),
			want:   RuleCombine,
		},
		{
			name: "wildcard inert without wildcard mode",
			a:    level(2, symbol.ShapeWildcard),
			b:    level(2, left),
			want: RuleBounce,
		},
		{
			name: "fragile level one",
			a:    level(1, solid),
			b:    level(3, left),
			want: RuleImmunity,
		},
		{
			name:   "no immunity falls back to bounce",
			mutate: func(c *config.Config) { c.EnableImmunity = false },
			a:      level(1, solid),
			b:      level(3, left),
			want:   RuleBounce,
		},
		{
			name: "collision off absorbs mismatched pair",
			mutate: func(c *config.Config) {
				c.EnableImmunity = false
				c.EnableCollision = false
			},
			a:    level(1, solid),
			b:    level(3, left),
			want: RuleImmunity,
		},
		{
			name:   "collision off leaves complex pair alone",
			mutate: func(c *config.Config) { c.EnableCollision = false },
			a:      level(2, solid),
			b:      level(3, left),
			want:   RuleNone,
		},
		{
			name: "unknown symbol falls through to bounce",
			a:    fixed("S404_MISSING"),
			b:    level(2, solid),
			want: RuleBounce,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld(t, tc.mutate)
			r := Resolver{Config: w.Config, Table: w.Table()}
			a := &component.Ball{SymbolID: tc.a(t, r), Radius: 10}
			b := &component.Ball{SymbolID: tc.b(t, r), Radius: 10}
			a.Level = levelOf(r, a.SymbolID, 2)
			b.Level = levelOf(r, b.SymbolID, 2)

			for i := 0; i < 3; i++ {
				if got := r.Select(a, b); got != tc.want {
					t.Fatalf("Select(%s, %s) = %v, want %v", a.SymbolID, b.SymbolID, got, tc.want)
				}
				if got := r.Select(b, a); got != tc.want {
					t.Fatalf("Select(%s, %s) = %v, want %v", b.SymbolID, a.SymbolID, got, tc.want)
				}
			}
		})
	}
}

func fixed(id symbol.ID) func(*testing.T, Resolver) symbol.ID {
	return func(*testing.T, Resolver) symbol.ID { return id }
}

func level(l int, shape symbol.Shape) func(*testing.T, Resolver) symbol.ID {
	return func(t *testing.T, r Resolver) symbol.ID {
		id, ok := r.Table.IDFor(symbol.Key{Level: l, Shape: shape})
		if !ok {
			t.Fatalf("no symbol at level %d", l)
		}
		return id
	}
}

func levelOf(r Resolver, id symbol.ID, fallback int) int {
	if d, ok := r.Table.Lookup(id); ok {
		return d.Level
	}
	return fallback
}

func TestTouching(t *testing.T) {
	a := &component.Ball{Radius: 10}
	b := &component.Ball{Radius: 10}
	b.X = 19.9
	if ok, _ := Touching(a, b); !ok {
		t.Error("overlapping tokens not touching")
	}
	b.X = 20
	if ok, _ := Touching(a, b); ok {
		t.Error("tangent tokens reported touching")
	}
	b.X = 0.05
	if ok, _ := Touching(a, b); ok {
		t.Error("coincident tokens should be skipped")
	}
	b.X = 5
	b.Grabbed = true
	if ok, _ := Touching(a, b); ok {
		t.Error("grabbed token reported touching")
	}
}

func TestRuleKindString(t *testing.T) {
	if RuleCombine.String() != "combine" || RuleKind(99).String() != "unknown" {
		t.Errorf("unexpected names %q %q", RuleCombine, RuleKind(99))
	}
}

package system

import (
	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// RuleKind tags the outcome chosen for a colliding pair
type RuleKind uint8

const (
	RuleNone RuleKind = iota
	RuleVoid
	RuleLifePair
	RuleHardDegrade
	RuleEliminate
	RuleCombine
	RuleImmunity
	RuleBounce
)

var ruleNames = [...]string{
	RuleNone:        "none",
	RuleVoid:        "void",
	RuleLifePair:    "life_pair",
	RuleHardDegrade: "hard_degrade",
	RuleEliminate:   "eliminate",
	RuleCombine:     "combine",
	RuleImmunity:    "immunity",
	RuleBounce:      "bounce",
}

func (k RuleKind) String() string {
	if int(k) < len(ruleNames) {
		return ruleNames[k]
	}
	return "unknown"
}

// contact is one overlapping pair with its definitions resolved
type contact struct {
	a, b     *component.Ball
	da, db   symbol.Definition
	known    bool // both ids resolved in the current table
	distance float64
}

// rule is one entry of the priority chain; the first match claims the pair
type rule struct {
	kind  RuleKind
	match func(r Resolver, c *contact) bool
}

// ruleChain is evaluated top to bottom
var ruleChain = [...]rule{
	{RuleVoid, Resolver.matchVoid},
	{RuleLifePair, Resolver.matchLifePair},
	{RuleHardDegrade, Resolver.matchHardDegrade},
	{RuleEliminate, Resolver.matchEliminate},
	{RuleCombine, Resolver.matchCombine},
	{RuleImmunity, Resolver.matchImmunity},
	{RuleBounce, Resolver.matchBounce},
}

// Resolver selects collision outcomes without mutating anything
type Resolver struct {
	Config *config.Config
	Table  *symbol.Table
}

// Touching reports whether a and b are a collision candidate this frame
func Touching(a, b *component.Ball) (bool, float64) {
	if a.Grabbed || b.Grabbed {
		return false, 0
	}
	return vmath.CirclesOverlap(a.Pos(), a.Radius, b.Pos(), b.Radius, parameter.CollisionEpsilon)
}

// Select returns the rule that claims the pair, RuleNone when nothing applies
// Overlap is not checked; callers pass pairs already known to touch
func (r Resolver) Select(a, b *component.Ball) RuleKind {
	c := r.contact(a, b, vmath.V2Dist(a.Pos(), b.Pos()))
	return r.selectContact(&c)
}

func (r Resolver) contact(a, b *component.Ball, dist float64) contact {
	da, okA := r.Table.Lookup(a.SymbolID)
	db, okB := r.Table.Lookup(b.SymbolID)
	return contact{a: a, b: b, da: da, db: db, known: okA && okB, distance: dist}
}

func (r Resolver) selectContact(c *contact) RuleKind {
	for _, rl := range ruleChain {
		if rl.match(r, c) {
			return rl.kind
		}
	}
	return RuleNone
}

func (r Resolver) matchVoid(c *contact) bool {
	return c.known && c.da.IsVoid() != c.db.IsVoid()
}

func (r Resolver) matchLifePair(c *contact) bool {
	return c.known && c.da.IsLife() && c.db.IsLife()
}

func (r Resolver) matchHardDegrade(c *contact) bool {
	if !c.known || c.da.ID != c.db.ID || c.da.IsVoid() || c.da.IsLife() {
		return false
	}
	return r.Config.EnableHardDegradation && !r.Config.EnableWildcard && c.da.HasRecipe()
}

func (r Resolver) matchEliminate(c *contact) bool {
	if !c.known || c.da.ID != c.db.ID {
		return false
	}
	if r.Config.EnableSimpleCombinationMode {
		if _, ok := r.Table.Promote(c.da.ID); ok {
			return false
		}
	}
	return true
}

func (r Resolver) matchCombine(c *contact) bool {
	_, ok := r.combineResult(c)
	return ok
}

// combineResult resolves the product of a combining pair
func (r Resolver) combineResult(c *contact) (symbol.ID, bool) {
	if !c.known {
		return "", false
	}
	if c.da.ID != c.db.ID {
		if id, ok := r.Table.Combine(c.da.ID, c.db.ID); ok {
			return id, true
		}
	} else if r.Config.EnableSimpleCombinationMode {
		return r.Table.Promote(c.da.ID)
	}

	if r.Config.EnableWildcard && c.da.Level == c.db.Level && c.da.IsWildcard() != c.db.IsWildcard() {
		target := c.da
		if target.IsWildcard() {
			target = c.db
		}
		return r.Table.Promote(target.ID)
	}
	return "", false
}

func (r Resolver) matchImmunity(c *contact) bool {
	la, lb := c.a.Level, c.b.Level
	if (la == 1) == (lb == 1) || la+lb <= 2 {
		return false
	}
	return r.Config.EnableImmunity || !r.Config.EnableCollision
}

func (r Resolver) matchBounce(c *contact) bool {
	return r.Config.EnableCollision
}

// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package planbuilder is the name-resolution/binder plus plan-construction
// core: it turns a parsed SQL AST (package ast) into a bound, normalized
// logical plan tree (LogicNode), resolving identifiers against nested
// scopes (BindContext) along the way.
package planbuilder

// Expr is the algebraic scalar-expression tree. Every variant carries an
// output name, an alias usable from ORDER/GROUP BY of the same SELECT,
// and a bounded flag set once binding completes (spec §3).
type Expr interface {
	// OutputName is the name this Expr exposes when it appears as a
	// SELECT item; "" if it has none.
	OutputName() string
	SetOutputName(string)
	// Alias is the name by which ORDER BY / GROUP BY of the same
	// SELECT may refer back to this Expr (see ReplaceOutputNameToExpr).
	Alias() string
	SetAlias(string)
	Bounded() bool
	SetBounded(bool)

	// Children returns this node's direct sub-expressions, in
	// evaluation order.
	Children() []Expr
	// WithChildren rebuilds this node with new children, preserving
	// OutputName/Alias. len(children) must equal len(Children()).
	WithChildren(children []Expr) Expr

	// Clone deep-copies this node (and its subtree). Pointer-valued
	// fields that are non-owning references (e.g. ColExpr.TabRef) are
	// copied by value, not recursively cloned; retargeting such a
	// field after Clone is how the binder reassigns a column to a new
	// TableRef (spec §4.2).
	Clone() Expr

	// Bind resolves this node (and its children) against ctx,
	// returning the node to use in its place (usually itself) and
	// marking Bounded. See per-variant binding rules in spec §4.4.
	Bind(ctx *BindContext) (Expr, error)

	String() string
}

// ExprBase is embedded by every concrete Expr to supply the common
// OutputName/Alias/Bounded bookkeeping.
type ExprBase struct {
	outputName string
	alias      string
	bounded    bool
}

func (b *ExprBase) OutputName() string    { return b.outputName }
func (b *ExprBase) SetOutputName(n string) { b.outputName = n }
func (b *ExprBase) Alias() string          { return b.alias }
func (b *ExprBase) SetAlias(a string)      { b.alias = a }
func (b *ExprBase) Bounded() bool          { return b.bounded }
func (b *ExprBase) SetBounded(v bool)      { b.bounded = v }

// Inspect walks e pre-order, calling f on every sub-expression
// including e itself; f returning false prunes that subtree.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	for _, c := range e.Children() {
		Inspect(c, f)
	}
}

// VisitEach invokes f on every sub-expression of e, including e itself,
// in pre-order. f may inspect but must not reorder siblings (spec §4.1).
func VisitEach(e Expr, f func(Expr)) {
	Inspect(e, func(x Expr) bool {
		f(x)
		return true
	})
}

// HasSubquery reports whether any sub-expression of e is a SubqueryExpr.
func HasSubquery(e Expr) bool {
	found := false
	Inspect(e, func(x Expr) bool {
		if found {
			return false
		}
		if _, ok := x.(*SubqueryExpr); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasAggFunc reports whether any sub-expression of e is an aggregate
// function call that is not itself a windowed aggregate (spec §4.4;
// windowed aggregates are planned by LogicWindow, not LogicAgg, per
// SPEC_FULL §4).
func HasAggFunc(e Expr) bool {
	found := false
	Inspect(e, func(x Expr) bool {
		if found {
			return false
		}
		if af, ok := x.(*AggFunc); ok && af.Over == nil {
			found = true
			return false
		}
		return true
	})
	return found
}

// SearchReplace returns a new Expr with every sub-expression whose
// OutputName equals name replaced by a deep clone of repl. A bare
// column reference's OutputName defaults to its column name (see
// NewColExpr), so `ORDER BY total` naturally matches a SELECT item
// aliased `AS total` without any prior rewriting. Traversal is
// post-order and rebuilds immutable sub-nodes rather than mutating e,
// since e may be shared between the SELECT list and ORDER/GROUP BY
// (spec §9).
func SearchReplace(e Expr, name string, repl Expr) Expr {
	if name == "" {
		return e
	}
	if e.OutputName() == name {
		return repl.Clone()
	}
	children := e.Children()
	if len(children) == 0 {
		return e
	}
	newChildren := make([]Expr, len(children))
	changed := false
	for i, c := range children {
		nc := SearchReplace(c, name, repl)
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return e
	}
	return e.WithChildren(newChildren)
}

// ReplaceOutputNameToExpr substitutes, within e, any reference to a
// selection item's alias with the item itself — this is how `ORDER BY
// total` can refer to `SUM(x) AS total` (spec §4.4 step 1). It is
// idempotent: re-running it against an already-substituted e replaces
// the same subtree with an equivalent clone of itself, since the
// substituted expression keeps the alias's OutputName.
func ReplaceOutputNameToExpr(e Expr, selection []Expr) Expr {
	for _, s := range selection {
		if s.Alias() == "" {
			continue
		}
		e = SearchReplace(e, s.Alias(), s)
	}
	return e
}

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

package planbuilder

import (
	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"github.com/caterby/qpmodel/qerr"
)

// SetOpKind mirrors ast.SetOpKind one level down, after translation.
type SetOpKind int

const (
	SetOpUnion SetOpKind = iota
	SetOpUnionAll
	SetOpIntersect
	SetOpExcept
)

// SelectStmt is a single (possibly set-composed) SELECT, bound once and
// planned once (spec §3 Lifecycles). Setqs[0] is the main body; a
// UNION/INTERSECT/EXCEPT chain carries its further branches in Setqs[1:]
// paired with SetOp.
type SelectStmt struct {
	// As-parsed shape, populated by the AST-build layer.
	Distinct bool
	Selection []Expr
	From      []TableRef
	Where     Expr
	GroupBy   []Expr
	Having    Expr
	Order     []*OrderTerm
	Limit     Expr
	Offset    Expr

	Setqs []*SelectStmt // only used when len(Setqs) > 1; Setqs[0] == this stmt's own core body is not self-referential — see NewSetOpStmt
	SetOp []SetOpKind

	CTEFrom []TableRef // CTEQueryRef entries visible to this statement and its descendants

	// Populated by Bind.
	Bounded     bool
	BindContext *BindContext
	Parent      *BindContext
	HasAgg      bool
	Subqueries  []*SubqueryExpr

	// Populated by CreatePlan.
	LogicPlan   LogicNode
	FromQueries map[*SelectStmt]*LogicFromQuery

	log *logrus.Entry
}

// NewSelectStmt constructs an unbound single-branch statement; callers
// building a set-operation chain use NewSetOpStmt instead.
func NewSelectStmt() *SelectStmt {
	return &SelectStmt{log: logrus.WithField("component", "planbuilder")}
}

// NewSetOpStmt combines branches (each itself a plain SelectStmt) with
// the given connecting operators (len(ops) == len(branches)-1) into one
// statement carrying ORDER/LIMIT/OFFSET decoration (spec §4.4, "set
// operations bind each branch independently, then unify arity").
func NewSetOpStmt(branches []*SelectStmt, ops []SetOpKind) (*SelectStmt, error) {
	if len(ops) != len(branches)-1 {
		return nil, qerr.ErrArityMismatch.New("set")
	}
	s := NewSelectStmt()
	s.Setqs = branches
	s.SetOp = ops
	return s, nil
}

// Bind implements the ordered binding pipeline of spec §4.4. It is
// idempotent: a CTE or FROM-subquery referenced more than once shares
// one BindContext rather than being rebound (callers check Bounded
// before calling again, and Bind itself no-ops when already bound).
func (s *SelectStmt) Bind(parent *BindContext) (*BindContext, error) {
	if s.Bounded {
		return s.BindContext, nil
	}

	if len(s.Setqs) > 0 {
		if err := s.bindSetOp(parent); err != nil {
			return nil, err
		}
		return s.BindContext, nil
	}

	ctx := NewBindContext(s, parent)
	s.BindContext = ctx
	s.Parent = parent
	log := s.log.WithField("scope_id", ctx.ID)
	log.Debug("binding select")

	// Step 1: rewrite GROUP BY / ORDER BY references to a SELECT-list
	// alias into the aliased expression itself, before anything is
	// bound, so later steps never have to special-case alias lookup.
	for i, g := range s.GroupBy {
		s.GroupBy[i] = ReplaceOutputNameToExpr(g, s.Selection)
	}
	for _, o := range s.Order {
		o.Child = ReplaceOutputNameToExpr(o.Child, s.Selection)
	}
	if s.Having != nil {
		s.Having = ReplaceOutputNameToExpr(s.Having, s.Selection)
	}

	// Step 2: register CTEs (lexically visible to this statement and
	// every nested scope beneath it via BindContext.FindCTE), then bind
	// the FROM clause's member tables into ctx.
	for _, cte := range s.CTEFrom {
		if err := cte.bind(ctx); err != nil {
			return nil, err
		}
	}
	for _, t := range s.From {
		members := []TableRef{t}
		if j, ok := t.(*JoinQueryRef); ok {
			members = j.Tables
		}
		for _, m := range members {
			if err := ctx.AddTable(m); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range s.From {
		if err := t.bind(ctx); err != nil {
			return nil, err
		}
	}

	// Step 3: bind the selection list, expanding every SelStarExpr in
	// place (invariant I2: no SelStarExpr survives binding).
	expanded := make([]Expr, 0, len(s.Selection))
	for _, item := range s.Selection {
		star, ok := item.(*SelStarExpr)
		if !ok {
			b, err := item.Bind(ctx)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, b)
			continue
		}
		cols, err := s.expandStar(ctx, star)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, cols...)
	}
	s.Selection = expanded

	// Step 4: WHERE, GROUP BY, HAVING, ORDER BY, in that order, so a
	// correlated subquery in any of them resolves against the same
	// fully-populated ctx.
	if s.Where != nil {
		b, err := s.Where.Bind(ctx)
		if err != nil {
			return nil, err
		}
		s.Where = b
	}
	for i, g := range s.GroupBy {
		b, err := g.Bind(ctx)
		if err != nil {
			return nil, err
		}
		s.GroupBy[i] = b
	}
	if s.Having != nil {
		b, err := s.Having.Bind(ctx)
		if err != nil {
			return nil, err
		}
		s.Having = b
	}
	for _, o := range s.Order {
		if _, err := o.Bind(ctx); err != nil {
			return nil, err
		}
	}
	if s.Limit != nil {
		if _, err := s.Limit.Bind(ctx); err != nil {
			return nil, err
		}
	}
	if s.Offset != nil {
		if _, err := s.Offset.Bind(ctx); err != nil {
			return nil, err
		}
	}

	s.HasAgg = s.computeHasAgg()
	s.Subqueries = s.collectSubqueries()
	s.Bounded = true
	log.WithField("has_agg", s.HasAgg).Debug("bind complete")
	return ctx, nil
}

func (s *SelectStmt) bindSetOp(parent *BindContext) error {
	ctx := NewBindContext(s, parent)
	s.BindContext = ctx
	s.Parent = parent

	for _, cte := range s.CTEFrom {
		if err := cte.bind(ctx); err != nil {
			return err
		}
	}

	width := -1
	for _, branch := range s.Setqs {
		if _, err := branch.Bind(ctx); err != nil {
			return err
		}
		if width == -1 {
			width = len(branch.Selection)
		} else if len(branch.Selection) != width {
			return qerr.ErrArityMismatch.New("set")
		}
	}
	for _, o := range s.Order {
		o.Child = ReplaceOutputNameToExpr(o.Child, s.Setqs[0].Selection)
		if _, err := o.Bind(ctx); err != nil {
			return err
		}
	}
	if s.Limit != nil {
		if _, err := s.Limit.Bind(ctx); err != nil {
			return err
		}
	}
	if s.Offset != nil {
		if _, err := s.Offset.Bind(ctx); err != nil {
			return err
		}
	}
	s.Bounded = true
	return nil
}

// expandStar implements invariant I2: a bare `*` expands to every
// column of every FROM table in left-to-right order; a qualified
// `tab.*` expands only to tab's columns.
func (s *SelectStmt) expandStar(ctx *BindContext, star *SelStarExpr) ([]Expr, error) {
	var cols []*ColExpr
	if star.TabName == "" {
		for _, t := range ctx.Tables {
			cols = append(cols, t.AllColumnRefs()...)
		}
	} else {
		t, _ := ctx.FindTable(star.TabName)
		if t == nil {
			return nil, qerr.ErrTableNotExists.New(star.TabName)
		}
		cols = append(cols, t.AllColumnRefs()...)
	}
	out := make([]Expr, len(cols))
	for i, c := range cols {
		clone := c.Clone()
		clone.SetBounded(true)
		out[i] = clone
	}
	return out, nil
}

func (s *SelectStmt) computeHasAgg() bool {
	if len(s.GroupBy) > 0 {
		return true
	}
	for _, sel := range s.Selection {
		if HasAggFunc(sel) {
			return true
		}
	}
	if s.Having != nil && HasAggFunc(s.Having) {
		return true
	}
	return false
}

// GetAggregations returns every non-windowed aggregate call reachable
// from the selection list, HAVING, and ORDER BY, deduped by structural
// equality (two syntactically identical SUM(x) calls collapse to one
// GROUP BY output column) and kept in first-occurrence order.
func (s *SelectStmt) GetAggregations() []*AggFunc {
	var aggs []*AggFunc
	seen := map[uint64]bool{}
	collect := func(e Expr) {
		VisitEach(e, func(x Expr) {
			af, ok := x.(*AggFunc)
			if !ok || af.Over != nil {
				return
			}
			h, err := hashstructure.Hash(af, nil)
			if err != nil || seen[h] {
				return
			}
			seen[h] = true
			aggs = append(aggs, af)
		})
	}
	for _, sel := range s.Selection {
		collect(sel)
	}
	if s.Having != nil {
		collect(s.Having)
	}
	for _, o := range s.Order {
		collect(o)
	}
	return aggs
}

// collectSubqueries walks the statement's own expressions (not its
// FROM-clause subqueries, which are separate statements) for every
// SubqueryExpr, so CreatePlan can build each one's inner plan post-hoc
// (spec §9).
func (s *SelectStmt) collectSubqueries() []*SubqueryExpr {
	var subs []*SubqueryExpr
	visit := func(e Expr) {
		if e == nil {
			return
		}
		VisitEach(e, func(x Expr) {
			if sq, ok := x.(*SubqueryExpr); ok {
				subs = append(subs, sq)
			}
		})
	}
	for _, sel := range s.Selection {
		visit(sel)
	}
	visit(s.Where)
	for _, g := range s.GroupBy {
		visit(g)
	}
	visit(s.Having)
	for _, o := range s.Order {
		visit(o)
	}
	return subs
}

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
	"strings"

	"github.com/caterby/qpmodel/qerr"
)

// CreatePlan turns a bound SelectStmt into its logical plan tree (spec
// §4.5). It is idempotent the same way Bind is: a statement already
// planned (LogicPlan != nil) returns its cached root rather than
// rebuilding it, since a FromQueryRef/CTEQueryRef may be visited more
// than once while folding the enclosing FROM clause.
func (s *SelectStmt) CreatePlan() (LogicNode, error) {
	if s.LogicPlan != nil {
		return s.LogicPlan, nil
	}
	if !s.Bounded {
		return nil, qerr.Semantic("CreatePlan called before Bind")
	}

	if len(s.Setqs) > 0 {
		return s.createSetOpPlan()
	}

	s.FromQueries = map[*SelectStmt]*LogicFromQuery{}

	var acc LogicNode
	for _, t := range s.From {
		child, err := planTableRef(s, t)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = child
			continue
		}
		acc = &LogicJoin{Left: acc, Right: child, Op: JoinCross}
	}

	if s.Where != nil {
		acc = &LogicFilter{Child: acc, Pred: s.Where}
	}

	if s.HasAgg {
		acc = &LogicAgg{Child: acc, GroupBy: s.GroupBy, Aggs: s.GetAggregations(), Having: s.Having}
	}

	if len(s.Order) > 0 {
		acc = &LogicOrder{Child: acc, Terms: s.Order}
	}

	var root LogicNode = &LogicResult{Child: acc, Cols: s.Selection}

	// DISTINCT wraps outside the result projection (SPEC_FULL §4).
	if s.Distinct {
		root = &LogicDistinct{Child: root}
	}
	if s.Limit != nil || s.Offset != nil {
		root = &LogicLimit{Child: root, Limit: s.Limit, Offset: s.Offset}
	}

	s.LogicPlan = root

	if err := s.createSubqueryPlans(); err != nil {
		return nil, err
	}
	return root, nil
}

// createSubqueryPlans builds the inner plan for every scalar/EXISTS/IN
// subquery discovered during Bind. Subquery discovery happens post-hoc,
// after the outer statement's own plan is built, so a subquery that
// never gets referenced from a live branch of a set-op statement still
// gets its own independent plan (spec §9).
func (s *SelectStmt) createSubqueryPlans() error {
	for _, sq := range s.Subqueries {
		inner, err := sq.Query.CreatePlan()
		if err != nil {
			return err
		}
		sq.LogicPlan = inner
	}
	return nil
}

func (s *SelectStmt) createSetOpPlan() (LogicNode, error) {
	plans := make([]LogicNode, len(s.Setqs))
	for i, branch := range s.Setqs {
		p, err := branch.CreatePlan()
		if err != nil {
			return nil, err
		}
		plans[i] = p
	}
	acc := plans[0]
	for i, op := range s.SetOp {
		acc = &LogicSetOp{Left: acc, Right: plans[i+1], Op: op}
	}
	if len(s.Order) > 0 {
		acc = &LogicOrder{Child: acc, Terms: s.Order}
	}
	if s.Limit != nil || s.Offset != nil {
		acc = &LogicLimit{Child: acc, Limit: s.Limit, Offset: s.Offset}
	}
	s.LogicPlan = acc
	return acc, nil
}

// planTableRef builds the subplan a single FROM-clause entry contributes,
// recursing into n-ary joins and nested queries as needed. owner is the
// enclosing statement, whose FromQueries map records the LogicFromQuery
// wrapping each inner SELECT (spec §3).
func planTableRef(owner *SelectStmt, t TableRef) (LogicNode, error) {
	switch v := t.(type) {
	case *BaseTableRef:
		return &LogicScanTable{Ref: v}, nil
	case *ExternalTableRef:
		return &LogicScanFile{Ref: v}, nil
	case *ValuesTableRef:
		return &LogicScanValues{Ref: v}, nil
	case *FromQueryRef:
		inner, err := v.Query.CreatePlan()
		if err != nil {
			return nil, err
		}
		fq := &LogicFromQuery{Child: inner, Ref: v}
		owner.FromQueries[v.Query] = fq
		return fq, nil
	case *CTEQueryRef:
		inner, err := v.Query.CreatePlan()
		if err != nil {
			return nil, err
		}
		fq := &LogicFromQuery{Child: inner, Ref: &FromQueryRef{queryRefBase: v.queryRefBase}}
		owner.FromQueries[v.Query] = fq
		return fq, nil
	case *JoinQueryRef:
		return planJoinQueryRef(owner, v)
	default:
		return nil, qerr.ErrNotImplemented.New("unrecognized TableRef")
	}
}

// planJoinQueryRef folds an n-ary FROM-clause join into the left-deep
// chain of binary LogicJoins CreatePlan always produces (spec §4.5),
// then collects every constraint (the NATURAL-desugared ones included)
// into a single conjunction and wraps the whole chain in one
// LogicFilter above it — invariant I5, "every JoinQueryRef maps to
// exactly one LogicFilter above a left-deep join." A NATURAL join
// (SUPPLEMENTED FEATURES) is desugared at fold time into an equality
// predicate over every column name common to the accumulated left side
// and the incoming right table, which then joins the rest of the
// conjunction the same as an explicit ON clause.
func planJoinQueryRef(owner *SelectStmt, j *JoinQueryRef) (LogicNode, error) {
	acc, err := planTableRef(owner, j.Tables[0])
	if err != nil {
		return nil, err
	}
	var preds []Expr
	for i, op := range j.Ops {
		right, err := planTableRef(owner, j.Tables[i+1])
		if err != nil {
			return nil, err
		}
		if op == JoinNatural {
			if p := naturalJoinPredicate(acc, right); p != nil {
				preds = append(preds, p)
			}
			acc = &LogicJoin{Left: acc, Right: right, Op: JoinInner}
			continue
		}
		if j.Constraints[i] != nil {
			preds = append(preds, j.Constraints[i])
		}
		acc = &LogicJoin{Left: acc, Right: right, Op: op}
	}
	conjunction := AndAll(preds)
	if conjunction == nil {
		return acc, nil
	}
	return &LogicFilter{Child: acc, Pred: conjunction}, nil
}

// naturalJoinPredicate builds the conjunction of `left.c = right.c` for
// every column name left and right have in common (case-insensitively),
// or nil if they share none (degrading to a cross join).
func naturalJoinPredicate(left, right LogicNode) Expr {
	var preds []Expr
	for _, lc := range left.OutputCols() {
		for _, rc := range right.OutputCols() {
			if strings.EqualFold(lc.OutputName(), rc.OutputName()) {
				preds = append(preds, NewBinary("=", lc.Clone(), rc.Clone()))
				break
			}
		}
	}
	return AndAll(preds)
}

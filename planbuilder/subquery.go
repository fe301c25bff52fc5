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

// SubqueryKind distinguishes the three subquery-expression shapes.
type SubqueryKind int

const (
	SubqueryScalar SubqueryKind = iota
	SubqueryExists
	SubqueryIn
)

// SubqueryExpr wraps an inner SELECT embedded in a scalar-expression
// position. Query is bound eagerly (so correlation threads outward via
// TableRef.ColsRefBySubq), but its LogicPlan field is populated only
// later, by CreatePlan (spec §9, "subquery discovery happens post-hoc")
// — not by Bind.
type SubqueryExpr struct {
	ExprBase
	Kind      SubqueryKind
	Query     *SelectStmt
	In        Expr // left-hand operand for SubqueryIn; nil otherwise
	LogicPlan LogicNode
}

func NewSubqueryExpr(kind SubqueryKind, query *SelectStmt, in Expr) *SubqueryExpr {
	return &SubqueryExpr{Kind: kind, Query: query, In: in}
}

func (s *SubqueryExpr) Children() []Expr {
	if s.In != nil {
		return []Expr{s.In}
	}
	return nil
}

func (s *SubqueryExpr) WithChildren(children []Expr) Expr {
	n := *s
	if s.In != nil {
		if len(children) != 1 {
			panic("SubqueryExpr: WithChildren expects exactly one child")
		}
		n.In = children[0]
	}
	return &n
}

func (s *SubqueryExpr) Clone() Expr {
	n := *s
	if s.In != nil {
		n.In = s.In.Clone()
	}
	// Query is owned by this SubqueryExpr but is not deep-cloned here:
	// a statement is bound/planned once (spec §3 Lifecycles); callers
	// cloning a bound tree for re-binding clone the statement directly.
	return &n
}

func (s *SubqueryExpr) Bind(ctx *BindContext) (Expr, error) {
	if s.In != nil {
		in, err := s.In.Bind(ctx)
		if err != nil {
			return nil, err
		}
		s.In = in
	}
	if _, err := s.Query.Bind(ctx); err != nil {
		return nil, err
	}
	s.SetBounded(true)
	return s, nil
}

func (s *SubqueryExpr) String() string {
	switch s.Kind {
	case SubqueryExists:
		return "EXISTS(...)"
	case SubqueryIn:
		return s.In.String() + " IN (...)"
	default:
		return "(...)"
	}
}

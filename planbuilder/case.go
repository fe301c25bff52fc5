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

import "github.com/caterby/qpmodel/qerr"

// CaseExpr is CASE [eval] WHEN w1 THEN t1 ... [ELSE else] END. Eval is
// nil for the searched form (CASE WHEN cond THEN ...).
type CaseExpr struct {
	ExprBase
	Eval  Expr // nil if searched form
	Whens []Expr
	Thens []Expr
	Else  Expr // nil if no ELSE
}

// NewCaseFromFlat implements the flat-list parsing contract of spec
// §4.1: E is the parser's flat sub-expression list, hasElse says
// whether E's last element is the ELSE clause. It surfaces a malformed
// shape as a parse error rather than silently accepting it (spec §9).
func NewCaseFromFlat(e []Expr, hasElse bool) (*CaseExpr, error) {
	n := len(e)
	var elseExpr Expr
	w := e
	if hasElse {
		if n == 0 {
			return nil, qerr.ErrParse.New("CASE: ELSE present but expression list empty")
		}
		elseExpr = e[n-1]
		w = e[:n-1]
	}

	var eval Expr
	pairs := w
	if len(w)%2 == 1 {
		eval = w[0]
		pairs = w[1:]
	}

	hasEval := 0
	if eval != nil {
		hasEval = 1
	}
	if len(w)-hasEval < 2 || (len(w)-hasEval)%2 != 0 {
		return nil, qerr.ErrMalformedCase.New()
	}

	c := &CaseExpr{Eval: eval, Else: elseExpr}
	for i := 0; i < len(pairs); i += 2 {
		c.Whens = append(c.Whens, pairs[i])
		c.Thens = append(c.Thens, pairs[i+1])
	}
	return c, nil
}

func (c *CaseExpr) Children() []Expr {
	var out []Expr
	if c.Eval != nil {
		out = append(out, c.Eval)
	}
	for i := range c.Whens {
		out = append(out, c.Whens[i], c.Thens[i])
	}
	if c.Else != nil {
		out = append(out, c.Else)
	}
	return out
}

func (c *CaseExpr) WithChildren(children []Expr) Expr {
	n := *c
	i := 0
	if c.Eval != nil {
		n.Eval = children[i]
		i++
	}
	n.Whens = make([]Expr, len(c.Whens))
	n.Thens = make([]Expr, len(c.Thens))
	for j := range c.Whens {
		n.Whens[j] = children[i]
		n.Thens[j] = children[i+1]
		i += 2
	}
	if c.Else != nil {
		n.Else = children[i]
	}
	return &n
}

func (c *CaseExpr) Clone() Expr {
	children := c.Children()
	cloned := make([]Expr, len(children))
	for i, ch := range children {
		cloned[i] = ch.Clone()
	}
	n := c.WithChildren(cloned).(*CaseExpr)
	n.ExprBase = c.ExprBase
	return n
}

func (c *CaseExpr) Bind(ctx *BindContext) (Expr, error) {
	var err error
	if c.Eval != nil {
		if c.Eval, err = c.Eval.Bind(ctx); err != nil {
			return nil, err
		}
	}
	for i := range c.Whens {
		if c.Whens[i], err = c.Whens[i].Bind(ctx); err != nil {
			return nil, err
		}
		if c.Thens[i], err = c.Thens[i].Bind(ctx); err != nil {
			return nil, err
		}
	}
	if c.Else != nil {
		if c.Else, err = c.Else.Bind(ctx); err != nil {
			return nil, err
		}
	}
	c.SetBounded(true)
	return c, nil
}

func (c *CaseExpr) String() string { return "CASE...END" }

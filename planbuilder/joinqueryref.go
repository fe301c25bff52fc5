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

// JoinOp names a join's kind, including the supplemented NATURAL form
// which is desugared to an inner join over the common-column equality
// predicate during CreatePlan (SPEC_FULL §4) rather than here.
type JoinOp int

const (
	JoinInner JoinOp = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
	JoinNatural
)

// JoinQueryRef groups an n-ary FROM-clause join as parsed: Tables are
// the ordered operands, Ops[i] is the join between Tables[i] and
// Tables[i+1], and Constraints[i] is its ON predicate (nil for a natural
// or cross join). len(Ops) == len(Constraints) == len(Tables)-1 (spec
// §3). CreatePlan folds this into the left-deep LogicJoin chain (§4.5);
// this type only carries the as-parsed shape through binding.
type JoinQueryRef struct {
	Tables      []TableRef
	Ops         []JoinOp
	Constraints []Expr
}

func NewJoinQueryRef(tables []TableRef, ops []JoinOp, constraints []Expr) (*JoinQueryRef, error) {
	if len(ops) != len(tables)-1 || len(constraints) != len(tables)-1 {
		return nil, qerr.ErrArityMismatch.New("join")
	}
	return &JoinQueryRef{Tables: tables, Ops: ops, Constraints: constraints}, nil
}

// Alias is empty: a join has no name of its own and is never looked up
// by FindTable; its member tables are what get registered in scope.
func (j *JoinQueryRef) Alias() string { return "" }

func (j *JoinQueryRef) AllColumnRefs() []*ColExpr {
	var cols []*ColExpr
	for _, t := range j.Tables {
		cols = append(cols, t.AllColumnRefs()...)
	}
	return cols
}

func (j *JoinQueryRef) LocateColumn(name string) (*ColExpr, error) {
	return locateColumnByName(j.AllColumnRefs(), name)
}

func (j *JoinQueryRef) AddOuterRefsToOutput(output []*ColExpr) []*ColExpr {
	for _, t := range j.Tables {
		output = t.AddOuterRefsToOutput(output)
	}
	return output
}

func (j *JoinQueryRef) ColsRefBySubq() []*ColExpr {
	var cols []*ColExpr
	for _, t := range j.Tables {
		cols = append(cols, t.ColsRefBySubq()...)
	}
	return cols
}

// addColRefBySubq is never invoked in practice: ColExpr.TabRef always
// names the leaf TableRef that actually exports the column (JoinQueryRef
// itself is never registered in a BindContext's table list), but the
// method must exist to satisfy TableRef.
func (j *JoinQueryRef) addColRefBySubq(c *ColExpr) {
	c.TabRef.addColRefBySubq(c)
}

// bind binds each member table (each was already registered in ctx by
// the statement binder) and then the ON constraints, which may refer to
// columns from either side of their join.
func (j *JoinQueryRef) bind(ctx *BindContext) error {
	for _, t := range j.Tables {
		if err := t.bind(ctx); err != nil {
			return err
		}
	}
	for i, c := range j.Constraints {
		if c == nil {
			continue
		}
		b, err := c.Bind(ctx)
		if err != nil {
			return err
		}
		j.Constraints[i] = b
	}
	return nil
}

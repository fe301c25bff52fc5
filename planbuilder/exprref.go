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

// ExprRef is a handle to an expression that has already been computed
// elsewhere in the tree (typically a selection-list item exported by a
// FromQueryRef or CTEQueryRef). It lets an outer scope refer to e.g. an
// aggregate result by name without re-evaluating the aggregate: the
// referenced node keeps its own identity and is never cloned through
// the ref, only the ref wrapper is.
type ExprRef struct {
	ExprBase
	Target Expr
}

func NewExprRef(target Expr) *ExprRef {
	r := &ExprRef{Target: target}
	r.SetOutputName(target.OutputName())
	return r
}

func (r *ExprRef) Children() []Expr { return nil }

func (r *ExprRef) WithChildren(children []Expr) Expr {
	if len(children) != 0 {
		panic("ExprRef: WithChildren expects zero children")
	}
	return r
}

// Clone copies the ref but not the target: the target belongs to the
// producing query's output list and outlives any given reference to it.
func (r *ExprRef) Clone() Expr {
	n := *r
	return &n
}

func (r *ExprRef) Bind(ctx *BindContext) (Expr, error) {
	r.SetBounded(true)
	return r, nil
}

func (r *ExprRef) String() string { return r.Target.String() }

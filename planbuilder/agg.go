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

// WindowSpec is a windowed aggregate's OVER(...) clause (SPEC_FULL §4,
// supplemented from the corpus's window-function handling).
type WindowSpec struct {
	PartitionBy []Expr
	OrderBy     []*OrderTerm
}

func (w *WindowSpec) clone() *WindowSpec {
	if w == nil {
		return nil
	}
	n := &WindowSpec{}
	for _, p := range w.PartitionBy {
		n.PartitionBy = append(n.PartitionBy, p.Clone())
	}
	for _, o := range w.OrderBy {
		n.OrderBy = append(n.OrderBy, o.Clone().(*OrderTerm))
	}
	return n
}

func (w *WindowSpec) bind(ctx *BindContext) error {
	if w == nil {
		return nil
	}
	for i, p := range w.PartitionBy {
		b, err := p.Bind(ctx)
		if err != nil {
			return err
		}
		w.PartitionBy[i] = b
	}
	for i, o := range w.OrderBy {
		b, err := o.Bind(ctx)
		if err != nil {
			return err
		}
		w.OrderBy[i] = b.(*OrderTerm)
	}
	return nil
}

// AggFunc is an aggregate function call: COUNT/SUM/MIN/MAX/AVG/... over
// Arg, or, with Over set, a windowed aggregate (SPEC_FULL §4). Windowed
// aggregates are excluded from HasAggFunc/GetAggregations' GROUP-BY
// discovery and are instead planned as LogicWindow.
type AggFunc struct {
	ExprBase
	Name     string
	Arg      Expr
	Distinct bool
	Over     *WindowSpec
}

func NewAggFunc(name string, arg Expr, distinct bool, over *WindowSpec) *AggFunc {
	return &AggFunc{Name: name, Arg: arg, Distinct: distinct, Over: over}
}

func (a *AggFunc) Children() []Expr {
	if a.Arg == nil {
		return nil
	}
	return []Expr{a.Arg}
}

func (a *AggFunc) WithChildren(children []Expr) Expr {
	n := *a
	if a.Arg != nil {
		if len(children) != 1 {
			panic("AggFunc: WithChildren expects exactly one child")
		}
		n.Arg = children[0]
	} else if len(children) != 0 {
		panic("AggFunc: WithChildren expects zero children")
	}
	return &n
}

func (a *AggFunc) Clone() Expr {
	n := *a
	if a.Arg != nil {
		n.Arg = a.Arg.Clone()
	}
	n.Over = a.Over.clone()
	return &n
}

func (a *AggFunc) Bind(ctx *BindContext) (Expr, error) {
	if a.Arg != nil {
		b, err := a.Arg.Bind(ctx)
		if err != nil {
			return nil, err
		}
		a.Arg = b
	}
	if err := a.Over.bind(ctx); err != nil {
		return nil, err
	}
	a.SetBounded(true)
	return a, nil
}

func (a *AggFunc) String() string {
	arg := ""
	if a.Arg != nil {
		arg = a.Arg.String()
	}
	return a.Name + "(" + arg + ")"
}

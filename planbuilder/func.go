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

import "strings"

// FuncCall is a scalar function call. Aggregate functions are a
// distinct node kind, AggFunc, so HasAggFunc/GetAggregations don't need
// a function-name allowlist here.
type FuncCall struct {
	ExprBase
	Name string
	Args []Expr
}

func NewFuncCall(name string, args []Expr) *FuncCall {
	return &FuncCall{Name: name, Args: args}
}

func (f *FuncCall) Children() []Expr { return f.Args }

func (f *FuncCall) WithChildren(children []Expr) Expr {
	n := *f
	n.Args = children
	return &n
}

func (f *FuncCall) Clone() Expr {
	n := *f
	n.Args = make([]Expr, len(f.Args))
	for i, a := range f.Args {
		n.Args[i] = a.Clone()
	}
	return &n
}

func (f *FuncCall) Bind(ctx *BindContext) (Expr, error) {
	for i, a := range f.Args {
		b, err := a.Bind(ctx)
		if err != nil {
			return nil, err
		}
		f.Args[i] = b
	}
	f.SetBounded(true)
	return f, nil
}

func (f *FuncCall) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

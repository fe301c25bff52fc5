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

// Command qpplan is a worked example: it binds a canned query against a
// YAML catalog fixture and prints the resulting logical plan tree. It
// does not parse SQL text — the lexer/grammar that would turn a query
// string into an ast.Select is out of scope (spec.md §1) — so the query
// shape is built directly against package ast, the way a real front end
// would hand it to this package.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caterby/qpmodel/ast"
	"github.com/caterby/qpmodel/catalog"
	"github.com/caterby/qpmodel/config"
	"github.com/caterby/qpmodel/planbuilder"
)

const defaultFixture = `
customer:
  - {name: c_custkey, type: int}
  - {name: c_name, type: "varchar(25)"}
  - {name: c_nationkey, type: int}
orders:
  - {name: o_orderkey, type: int}
  - {name: o_custkey, type: int}
  - {name: o_totalprice, type: double}
`

func main() {
	fixturePath := ""
	if len(os.Args) > 1 {
		fixturePath = os.Args[1]
	}

	data := []byte(defaultFixture)
	if fixturePath != "" {
		var err error
		data, err = os.ReadFile(fixturePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qpplan:", err)
			os.Exit(1)
		}
	}

	cat, err := catalog.LoadFixture(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qpplan:", err)
		os.Exit(1)
	}

	opts, err := config.Load("qpmodel.toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "qpplan:", err)
		os.Exit(1)
	}

	pc := planbuilder.NewPlanContext(context.Background(), cat, opts)

	plan, err := pc.Plan(sampleQuery())
	if err != nil {
		fmt.Fprintln(os.Stderr, "qpplan:", err)
		os.Exit(1)
	}

	printPlan(plan, 0)
}

// sampleQuery builds:
//
//	SELECT o.o_custkey, SUM(o.o_totalprice) AS total
//	FROM orders o JOIN customer c ON o.o_custkey = c.c_custkey
//	WHERE c.c_nationkey = 1
//	GROUP BY o.o_custkey
//	ORDER BY total DESC
func sampleQuery() *ast.Select {
	orders := &ast.TableName{Name: "orders", Alias: "o"}
	customer := &ast.TableName{Name: "customer", Alias: "c"}
	join := &ast.Join{
		Tables: []ast.TableExpr{orders, customer},
		Ops:    []string{"inner"},
		Constraints: []ast.Expr{
			&ast.BinaryOp{
				Op:    "=",
				Left:  &ast.Column{TabName: "o", ColName: "o_custkey"},
				Right: &ast.Column{TabName: "c", ColName: "c_custkey"},
			},
		},
	}

	core := &ast.CoreSelect{
		Columns: []ast.SelectItem{
			{Expr: &ast.Column{TabName: "o", ColName: "o_custkey"}},
			{Expr: &ast.AggFuncCall{Name: "sum", Arg: &ast.Column{TabName: "o", ColName: "o_totalprice"}}, Alias: "total"},
		},
		From: []ast.TableExpr{join},
		Where: &ast.BinaryOp{
			Op:    "=",
			Left:  &ast.Column{TabName: "c", ColName: "c_nationkey"},
			Right: &ast.Literal{Value: 1},
		},
		GroupBy: []ast.Expr{&ast.Column{TabName: "o", ColName: "o_custkey"}},
	}

	return &ast.Select{
		Setqs: []*ast.CoreSelect{core},
		Order: []ast.OrderExpr{{Expr: &ast.Column{ColName: "total"}, Desc: true}},
	}
}

func printPlan(n planbuilder.LogicNode, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Println(n.String())
	for _, c := range n.Children() {
		printPlan(c, depth+1)
	}
}

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

package planbuilder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caterby/qpmodel/ast"
	"github.com/caterby/qpmodel/config"
	"github.com/caterby/qpmodel/planbuilder"
)

// groupByQuery builds:
//
//	SELECT t1.a, SUM(t1.b) AS total
//	FROM t1 JOIN t2 ON t1.a = t2.a
//	WHERE t2.c > 0
//	GROUP BY t1.a
//	HAVING SUM(t1.b) > 10
//	ORDER BY total DESC
//	LIMIT 5
func groupByQuery() *ast.Select {
	join := &ast.Join{
		Tables: []ast.TableExpr{
			&ast.TableName{Name: "t1", Alias: "t1"},
			&ast.TableName{Name: "t2", Alias: "t2"},
		},
		Ops: []string{"inner"},
		Constraints: []ast.Expr{
			&ast.BinaryOp{Op: "=", Left: &ast.Column{TabName: "t1", ColName: "a"}, Right: &ast.Column{TabName: "t2", ColName: "a"}},
		},
	}
	sumB := &ast.AggFuncCall{Name: "sum", Arg: &ast.Column{TabName: "t1", ColName: "b"}}
	core := &ast.CoreSelect{
		Columns: []ast.SelectItem{
			{Expr: &ast.Column{TabName: "t1", ColName: "a"}},
			{Expr: sumB, Alias: "total"},
		},
		From:    []ast.TableExpr{join},
		Where:   &ast.BinaryOp{Op: ">", Left: &ast.Column{TabName: "t2", ColName: "c"}, Right: &ast.Literal{Value: 0}},
		GroupBy: []ast.Expr{&ast.Column{TabName: "t1", ColName: "a"}},
		Having:  &ast.BinaryOp{Op: ">", Left: sumB, Right: &ast.Literal{Value: 10}},
	}
	return &ast.Select{
		Setqs: []*ast.CoreSelect{core},
		Order: []ast.OrderExpr{{Expr: &ast.Column{ColName: "total"}, Desc: true}},
		Limit: &ast.Literal{Value: 5},
	}
}

func TestBindAndCreatePlanGroupBy(t *testing.T) {
	cat := testCatalog(t)
	pc := planbuilder.NewPlanContext(context.Background(), cat, config.Default())

	plan, err := pc.Plan(groupByQuery())
	require.NoError(t, err)
	require.NotNil(t, plan)

	// Root is LIMIT -> RESULT -> ORDER -> AGG -> FILTER -> JOIN -> (scans).
	limit, ok := plan.(*planbuilder.LogicLimit)
	require.True(t, ok, "root should be LogicLimit, got %T", plan)

	result, ok := limit.Child.(*planbuilder.LogicResult)
	require.True(t, ok, "expected LogicResult under LogicLimit, got %T", limit.Child)

	order, ok := result.Child.(*planbuilder.LogicOrder)
	require.True(t, ok, "expected LogicOrder under LogicResult, got %T", result.Child)

	agg, ok := order.Child.(*planbuilder.LogicAgg)
	require.True(t, ok, "expected LogicAgg under LogicOrder, got %T", order.Child)
	require.Len(t, agg.Aggs, 1)
	require.NotNil(t, agg.Having)

	filter, ok := agg.Child.(*planbuilder.LogicFilter)
	require.True(t, ok, "expected LogicFilter under LogicAgg, got %T", agg.Child)

	// The WHERE-clause filter wraps another LogicFilter holding the
	// join's ON constraint (invariant I5), which in turn wraps the
	// LogicJoin itself.
	joinFilter, ok := filter.Child.(*planbuilder.LogicFilter)
	require.True(t, ok, "expected join-constraint LogicFilter under WHERE LogicFilter, got %T", filter.Child)
	require.NotNil(t, joinFilter.Pred)

	_, ok = joinFilter.Child.(*planbuilder.LogicJoin)
	require.True(t, ok, "expected LogicJoin under join-constraint LogicFilter, got %T", joinFilter.Child)
}

func TestDistinctWrapsOutsideResult(t *testing.T) {
	cat := testCatalog(t)
	pc := planbuilder.NewPlanContext(context.Background(), cat, config.Default())

	core := &ast.CoreSelect{
		Distinct: true,
		Columns:  []ast.SelectItem{{Expr: &ast.Column{TabName: "t1", ColName: "a"}}},
		From:     []ast.TableExpr{&ast.TableName{Name: "t1", Alias: "t1"}},
	}
	sel := &ast.Select{Setqs: []*ast.CoreSelect{core}}

	plan, err := pc.Plan(sel)
	require.NoError(t, err)

	distinct, ok := plan.(*planbuilder.LogicDistinct)
	require.True(t, ok, "root should be LogicDistinct, got %T", plan)
	_, ok = distinct.Child.(*planbuilder.LogicResult)
	require.True(t, ok, "expected LogicResult under LogicDistinct, got %T", distinct.Child)
}

func TestCorrelatedSubqueryMarksOuterColumnAsParameter(t *testing.T) {
	cat := testCatalog(t)
	pc := planbuilder.NewPlanContext(context.Background(), cat, config.Default())

	inner := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{{Expr: &ast.Column{TabName: "t2", ColName: "a"}}},
		From:    []ast.TableExpr{&ast.TableName{Name: "t2", Alias: "t2"}},
		Where:   &ast.BinaryOp{Op: "=", Left: &ast.Column{TabName: "t2", ColName: "c"}, Right: &ast.Column{TabName: "t1", ColName: "b"}},
	}}}

	outer := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{{Expr: &ast.Column{TabName: "t1", ColName: "a"}}},
		From:    []ast.TableExpr{&ast.TableName{Name: "t1", Alias: "t1"}},
		Where: &ast.SubqueryExpr{
			Kind:  ast.SubqueryIn,
			Query: inner,
			In:    &ast.Column{TabName: "t1", ColName: "a"},
		},
	}}}

	stmt, err := pc.Build(outer)
	require.NoError(t, err)
	_, err = pc.Bind(stmt)
	require.NoError(t, err)

	require.Len(t, stmt.Subqueries, 1)
	sub := stmt.Subqueries[0]
	require.True(t, sub.Query.Bounded)

	// t1.b in the inner WHERE resolves through the outer scope.
	innerWhere, ok := sub.Query.Where.(*planbuilder.BinaryExpr)
	require.True(t, ok, "expected BinaryExpr inner WHERE, got %T", sub.Query.Where)
	outerCol, ok := innerWhere.Right.(*planbuilder.ColExpr)
	require.True(t, ok, "expected ColExpr on the right of the inner WHERE, got %T", innerWhere.Right)
	require.True(t, outerCol.IsParameter)
	require.False(t, innerWhere.Left.(*planbuilder.ColExpr).IsParameter)

	plan, err := pc.CreatePlan(stmt)
	require.NoError(t, err)
	require.NotNil(t, plan)
}

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

func TestValuesTableRefBindMismatchedRowWidth(t *testing.T) {
	rows := [][]planbuilder.Expr{
		{planbuilder.NewLiteral(1), planbuilder.NewLiteral(2)},
		{planbuilder.NewLiteral(3)},
	}
	v := planbuilder.NewValuesTableRef("v", nil, rows)

	stmt := planbuilder.NewSelectStmt()
	stmt.Selection = []planbuilder.Expr{planbuilder.NewSelStar("")}
	stmt.From = []planbuilder.TableRef{v}

	_, err := stmt.Bind(nil)
	require.Error(t, err)
}

func TestValuesTableRefBindNoRows(t *testing.T) {
	v := planbuilder.NewValuesTableRef("v", nil, nil)

	stmt := planbuilder.NewSelectStmt()
	stmt.Selection = []planbuilder.Expr{planbuilder.NewSelStar("")}
	stmt.From = []planbuilder.TableRef{v}

	_, err := stmt.Bind(nil)
	require.Error(t, err)
}

func TestValuesTableRefBindOrdinalColumnNames(t *testing.T) {
	rows := [][]planbuilder.Expr{
		{planbuilder.NewLiteral(1), planbuilder.NewLiteral("x")},
	}
	v := planbuilder.NewValuesTableRef("v", nil, rows)

	stmt := planbuilder.NewSelectStmt()
	stmt.Selection = []planbuilder.Expr{planbuilder.NewSelStar("")}
	stmt.From = []planbuilder.TableRef{v}

	_, err := stmt.Bind(nil)
	require.NoError(t, err)

	cols := v.AllColumnRefs()
	require.Len(t, cols, 2)
	require.Equal(t, "col1", cols[0].OutputName())
	require.Equal(t, "col2", cols[1].OutputName())
}

func TestValuesTableRefBindExplicitColumnNames(t *testing.T) {
	rows := [][]planbuilder.Expr{
		{planbuilder.NewLiteral(1), planbuilder.NewLiteral("x")},
	}
	v := planbuilder.NewValuesTableRef("v", []string{"id", "label"}, rows)

	stmt := planbuilder.NewSelectStmt()
	stmt.Selection = []planbuilder.Expr{planbuilder.NewSelStar("")}
	stmt.From = []planbuilder.TableRef{v}

	_, err := stmt.Bind(nil)
	require.NoError(t, err)

	cols := v.AllColumnRefs()
	require.Equal(t, "id", cols[0].OutputName())
	require.Equal(t, "label", cols[1].OutputName())
}

func TestNewJoinQueryRefArityMismatch(t *testing.T) {
	cat := testCatalog(t)
	t1 := newBaseTable(t, cat, "t1", "t1")
	t2 := newBaseTable(t, cat, "t2", "t2")

	_, err := planbuilder.NewJoinQueryRef(
		[]planbuilder.TableRef{t1, t2},
		nil, // wrong: need exactly one op for two tables
		[]planbuilder.Expr{nil},
	)
	require.Error(t, err)
}

func TestNaturalJoinDesugarsToEqualityOnCommonColumns(t *testing.T) {
	cat := testCatalog(t)
	t1 := newBaseTable(t, cat, "t1", "t1") // columns a, b
	t2 := newBaseTable(t, cat, "t2", "t2") // columns a, c

	join, err := planbuilder.NewJoinQueryRef(
		[]planbuilder.TableRef{t1, t2},
		[]planbuilder.JoinOp{planbuilder.JoinNatural},
		[]planbuilder.Expr{nil},
	)
	require.NoError(t, err)

	stmt := planbuilder.NewSelectStmt()
	stmt.Selection = []planbuilder.Expr{planbuilder.NewSelStar("")}
	stmt.From = []planbuilder.TableRef{join}

	_, err = stmt.Bind(nil)
	require.NoError(t, err)

	plan, err := stmt.CreatePlan()
	require.NoError(t, err)

	result, ok := plan.(*planbuilder.LogicResult)
	require.True(t, ok)

	// The desugared equality predicate lives on the enclosing
	// LogicFilter, not on the LogicJoin itself (invariant I5).
	filter, ok := result.Child.(*planbuilder.LogicFilter)
	require.True(t, ok, "natural join should fold to a LogicFilter over a LogicJoin, got %T", result.Child)
	require.NotNil(t, filter.Pred, "natural join must produce a join predicate over the common column(s)")

	logicJoin, ok := filter.Child.(*planbuilder.LogicJoin)
	require.True(t, ok, "expected LogicJoin under the natural-join LogicFilter, got %T", filter.Child)
	require.Equal(t, planbuilder.JoinInner, logicJoin.Op, "natural join desugars to an inner join with an equality predicate")
}

// TestFromQueryRenameListShorterThanSelectionNarrowsOutput covers
// `select a4 from (select a3, a4 from a) b(a4);`: a rename list shorter
// than the inner SELECT is a valid narrowing of the exported columns,
// not an arity mismatch (spec §4.2, §8 boundary scenario 3).
func TestFromQueryRenameListShorterThanSelectionNarrowsOutput(t *testing.T) {
	cat := testCatalog(t)
	pc := planbuilder.NewPlanContext(context.Background(), cat, config.Default())

	inner := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{
			{Expr: &ast.Column{TabName: "t1", ColName: "a"}},
			{Expr: &ast.Column{TabName: "t1", ColName: "b"}},
		},
		From: []ast.TableExpr{&ast.TableName{Name: "t1", Alias: "t1"}},
	}}}

	outer := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{{Expr: &ast.Column{TabName: "x", ColName: "c"}}},
		From: []ast.TableExpr{&ast.Subquery{
			Query:    inner,
			Alias:    "x",
			ColNames: []string{"c"},
		}},
	}}}

	stmt, err := pc.Build(outer)
	require.NoError(t, err)

	_, err = pc.Bind(stmt)
	require.NoError(t, err)

	fromRef, ok := stmt.From[0].(*planbuilder.FromQueryRef)
	require.True(t, ok, "expected FromQueryRef, got %T", stmt.From[0])

	cols := fromRef.AllColumnRefs()
	require.Len(t, cols, 1, "rename list narrows the export to its own length, not the inner selection's")
	require.Equal(t, "c", cols[0].OutputName())
}

func TestFromQueryRenameListLongerThanSelectionErrors(t *testing.T) {
	cat := testCatalog(t)
	pc := planbuilder.NewPlanContext(context.Background(), cat, config.Default())

	inner := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{{Expr: &ast.Column{TabName: "t1", ColName: "a"}}},
		From:    []ast.TableExpr{&ast.TableName{Name: "t1", Alias: "t1"}},
	}}}

	outer := &ast.Select{Setqs: []*ast.CoreSelect{{
		Columns: []ast.SelectItem{{Star: true}},
		From: []ast.TableExpr{&ast.Subquery{
			Query:    inner,
			Alias:    "x",
			ColNames: []string{"c", "d"},
		}},
	}}}

	stmt, err := pc.Build(outer)
	require.NoError(t, err)

	_, err = pc.Bind(stmt)
	require.Error(t, err)
}

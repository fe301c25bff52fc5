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
	"github.com/caterby/qpmodel/ast"
	"github.com/caterby/qpmodel/catalog"
	"github.com/caterby/qpmodel/qerr"
)

// Builder translates a parsed ast.Select into the unbound SelectStmt/
// Expr/TableRef trees this package binds and plans. It is the
// AST-to-plan-builder seam named in spec §6: everything upstream of it
// (lexer, grammar) is out of scope.
type Builder struct {
	Catalog catalog.Catalog
}

func NewBuilder(cat catalog.Catalog) *Builder {
	return &Builder{Catalog: cat}
}

// BuildSelect translates a (possibly set-composed) SELECT. Each entry
// of sel.Setqs becomes its own SelectStmt; when there is more than one,
// they are combined with NewSetOpStmt and ORDER/LIMIT/OFFSET/CTEs are
// attached to that wrapper instead of any individual branch (spec §4.4,
// "set operations bind each branch independently, then unify arity").
func (b *Builder) BuildSelect(sel *ast.Select) (*SelectStmt, error) {
	branches := make([]*SelectStmt, len(sel.Setqs))
	for i, cs := range sel.Setqs {
		st, err := b.buildCoreSelect(cs)
		if err != nil {
			return nil, err
		}
		branches[i] = st
	}

	var top *SelectStmt
	if len(branches) == 1 {
		top = branches[0]
	} else {
		ops := make([]SetOpKind, len(sel.SetOp))
		for i, o := range sel.SetOp {
			ops[i] = SetOpKind(o)
		}
		var err error
		top, err = NewSetOpStmt(branches, ops)
		if err != nil {
			return nil, err
		}
	}

	for _, cte := range sel.CTEs {
		inner, err := b.BuildSelect(cte.Query)
		if err != nil {
			return nil, err
		}
		top.CTEFrom = append(top.CTEFrom, NewCTEQueryRef(cte.Name, cte.ColNames, inner))
	}

	for _, o := range sel.Order {
		e, err := b.buildExpr(o.Expr)
		if err != nil {
			return nil, err
		}
		top.Order = append(top.Order, NewOrderTerm(e, o.Desc))
	}

	if sel.Limit != nil {
		e, err := b.buildExpr(sel.Limit)
		if err != nil {
			return nil, err
		}
		top.Limit = e
	}
	if sel.Offset != nil {
		e, err := b.buildExpr(sel.Offset)
		if err != nil {
			return nil, err
		}
		top.Offset = e
	}
	return top, nil
}

func (b *Builder) buildCoreSelect(cs *ast.CoreSelect) (*SelectStmt, error) {
	st := NewSelectStmt()
	st.Distinct = cs.Distinct

	for _, item := range cs.Columns {
		e, err := b.buildSelectItem(item)
		if err != nil {
			return nil, err
		}
		st.Selection = append(st.Selection, e)
	}

	for _, te := range cs.From {
		t, err := b.buildTableExpr(te)
		if err != nil {
			return nil, err
		}
		st.From = append(st.From, t)
	}

	if cs.Where != nil {
		e, err := b.buildExpr(cs.Where)
		if err != nil {
			return nil, err
		}
		st.Where = e
	}
	for _, g := range cs.GroupBy {
		e, err := b.buildExpr(g)
		if err != nil {
			return nil, err
		}
		st.GroupBy = append(st.GroupBy, e)
	}
	if cs.Having != nil {
		e, err := b.buildExpr(cs.Having)
		if err != nil {
			return nil, err
		}
		st.Having = e
	}
	return st, nil
}

func (b *Builder) buildSelectItem(item ast.SelectItem) (Expr, error) {
	if item.Star {
		star := NewSelStar(item.StarTable)
		return star, nil
	}
	e, err := b.buildExpr(item.Expr)
	if err != nil {
		return nil, err
	}
	if item.Alias != "" {
		e.SetOutputName(item.Alias)
		e.SetAlias(item.Alias)
	}
	return e, nil
}

func (b *Builder) buildTableExpr(te ast.TableExpr) (TableRef, error) {
	switch v := te.(type) {
	case *ast.TableName:
		return b.buildTableName(v.DBName, v.Name, v.Alias)
	case *ast.ExternalTable:
		def, err := b.Catalog.Table(v.Name)
		if err != nil {
			return nil, err
		}
		alias := v.Alias
		if alias == "" {
			alias = v.Name
		}
		return NewExternalTableRef(v.Name, alias, v.FileName, def), nil
	case *ast.Subquery:
		inner, err := b.BuildSelect(v.Query)
		if err != nil {
			return nil, err
		}
		return NewFromQueryRef(v.Alias, v.ColNames, inner), nil
	case *ast.ValuesTable:
		rows := make([][]Expr, len(v.Rows))
		for i, row := range v.Rows {
			r := make([]Expr, len(row))
			for j, cell := range row {
				e, err := b.buildExpr(cell)
				if err != nil {
					return nil, err
				}
				r[j] = e
			}
			rows[i] = r
		}
		return NewValuesTableRef(v.Alias, v.ColNames, rows), nil
	case *ast.Join:
		return b.buildJoin(v)
	default:
		return nil, qerr.ErrNotImplemented.New("unrecognized table expression")
	}
}

func (b *Builder) buildTableName(dbName, name, alias string) (TableRef, error) {
	def, err := b.Catalog.Table(name)
	if err != nil {
		return nil, err
	}
	return NewBaseTableRef(name, alias, def), nil
}

var joinOpNames = map[string]JoinOp{
	"inner":   JoinInner,
	"left":    JoinLeft,
	"right":   JoinRight,
	"full":    JoinFull,
	"cross":   JoinCross,
	"natural": JoinNatural,
}

func (b *Builder) buildJoin(j *ast.Join) (*JoinQueryRef, error) {
	tables := make([]TableRef, len(j.Tables))
	for i, te := range j.Tables {
		t, err := b.buildTableExpr(te)
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}
	ops := make([]JoinOp, len(j.Ops))
	for i, name := range j.Ops {
		op, ok := joinOpNames[name]
		if !ok {
			return nil, qerr.ErrNotImplemented.New("join type " + name)
		}
		ops[i] = op
	}
	constraints := make([]Expr, len(j.Constraints))
	for i, c := range j.Constraints {
		if c == nil {
			continue
		}
		e, err := b.buildExpr(c)
		if err != nil {
			return nil, err
		}
		constraints[i] = e
	}
	return NewJoinQueryRef(tables, ops, constraints)
}

func (b *Builder) buildExpr(e ast.Expr) (Expr, error) {
	switch v := e.(type) {
	case *ast.Literal:
		return NewLiteral(v.Value), nil
	case *ast.Column:
		return NewColExpr(v.DBName, v.TabName, v.ColName), nil
	case *ast.UnaryOp:
		child, err := b.buildExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: v.Op, Child: child}, nil
	case *ast.BinaryOp:
		left, err := b.buildExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return NewBinary(v.Op, left, right), nil
	case *ast.LogicOp:
		left, err := b.buildExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return NewLogic(v.Op, left, right), nil
	case *ast.Cast:
		child, err := b.buildExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		return &CastExpr{Child: child, TypeName: v.TypeName}, nil
	case *ast.CaseExpr:
		flat := make([]Expr, len(v.E))
		for i, x := range v.E {
			fe, err := b.buildExpr(x)
			if err != nil {
				return nil, err
			}
			flat[i] = fe
		}
		return NewCaseFromFlat(flat, v.HasElse)
	case *ast.FuncCall:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			ae, err := b.buildExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return NewFuncCall(v.Name, args), nil
	case *ast.AggFuncCall:
		var arg Expr
		if v.Arg != nil {
			a, err := b.buildExpr(v.Arg)
			if err != nil {
				return nil, err
			}
			arg = a
		}
		var over *WindowSpec
		if v.Over != nil {
			var err error
			over, err = b.buildWindowSpec(v.Over)
			if err != nil {
				return nil, err
			}
		}
		return NewAggFunc(v.Name, arg, v.Distinct, over), nil
	case *ast.SubqueryExpr:
		inner, err := b.BuildSelect(v.Query)
		if err != nil {
			return nil, err
		}
		var in Expr
		if v.In != nil {
			in, err = b.buildExpr(v.In)
			if err != nil {
				return nil, err
			}
		}
		return NewSubqueryExpr(SubqueryKind(v.Kind), inner, in), nil
	case *ast.InList:
		child, err := b.buildExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		list := make([]Expr, len(v.List))
		for i, x := range v.List {
			le, err := b.buildExpr(x)
			if err != nil {
				return nil, err
			}
			list[i] = le
		}
		return NewInList(child, list), nil
	default:
		return nil, qerr.ErrNotImplemented.New("unrecognized expression")
	}
}

func (b *Builder) buildWindowSpec(w *ast.WindowSpec) (*WindowSpec, error) {
	spec := &WindowSpec{}
	for _, p := range w.PartitionBy {
		e, err := b.buildExpr(p)
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = append(spec.PartitionBy, e)
	}
	for _, o := range w.OrderBy {
		e, err := b.buildExpr(o.Expr)
		if err != nil {
			return nil, err
		}
		spec.OrderBy = append(spec.OrderBy, NewOrderTerm(e, o.Desc))
	}
	return spec, nil
}

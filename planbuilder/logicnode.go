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

// LogicNode is one node of the bound, normalized logical plan tree
// CreatePlan builds from a SelectStmt (spec §4.5). Every variant is a
// thin algebraic wrapper: no costing, no physical properties, no
// execution — those belong to a layer downstream of this package.
type LogicNode interface {
	Children() []LogicNode
	WithChildren(children []LogicNode) LogicNode
	// OutputCols is this node's exposed column list, used by ancestor
	// nodes (e.g. LogicAgg building its GROUP BY output) without
	// re-deriving it from the SelectStmt.
	OutputCols() []*ColExpr
	String() string
}

func children1(n LogicNode) []LogicNode {
	if n == nil {
		return nil
	}
	return []LogicNode{n}
}

// LogicScanTable is a leaf reading every row of a cataloged base table.
type LogicScanTable struct {
	Ref *BaseTableRef
}

func (n *LogicScanTable) Children() []LogicNode { return nil }
func (n *LogicScanTable) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 0 {
		panic("LogicScanTable: expects zero children")
	}
	return n
}
func (n *LogicScanTable) OutputCols() []*ColExpr { return n.Ref.AllColumnRefs() }
func (n *LogicScanTable) String() string         { return "Scan(" + n.Ref.Alias() + ")" }

// LogicScanFile is a leaf reading rows from an external file source
// (SUPPLEMENTED FEATURES).
type LogicScanFile struct {
	Ref *ExternalTableRef
}

func (n *LogicScanFile) Children() []LogicNode { return nil }
func (n *LogicScanFile) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 0 {
		panic("LogicScanFile: expects zero children")
	}
	return n
}
func (n *LogicScanFile) OutputCols() []*ColExpr { return n.Ref.AllColumnRefs() }
func (n *LogicScanFile) String() string         { return "ScanFile(" + n.Ref.FileName + ")" }

// LogicScanValues is a leaf producing the literal rows of a VALUES
// clause (SUPPLEMENTED FEATURES).
type LogicScanValues struct {
	Ref *ValuesTableRef
}

func (n *LogicScanValues) Children() []LogicNode { return nil }
func (n *LogicScanValues) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 0 {
		panic("LogicScanValues: expects zero children")
	}
	return n
}
func (n *LogicScanValues) OutputCols() []*ColExpr { return n.Ref.AllColumnRefs() }
func (n *LogicScanValues) String() string         { return "ScanValues(" + n.Ref.Alias() + ")" }

// LogicFromQuery wraps a bound, planned subquery used as a FROM-clause
// source, exposing its outer-facing alias.
type LogicFromQuery struct {
	Child LogicNode
	Ref   *FromQueryRef
}

func (n *LogicFromQuery) Children() []LogicNode { return children1(n.Child) }
func (n *LogicFromQuery) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicFromQuery: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicFromQuery) OutputCols() []*ColExpr { return n.Ref.AllColumnRefs() }
func (n *LogicFromQuery) String() string         { return "FromQuery(" + n.Ref.Alias() + ")" }

// LogicJoin is a binary join; CreatePlan folds an n-ary FROM-clause join
// into a left-deep chain of these (spec §4.5). A JoinQueryRef's own
// constraints never live here: they are folded into one conjunction and
// hoisted into a LogicFilter above the whole chain (invariant I5), so a
// LogicJoin carries only the operator.
type LogicJoin struct {
	Left, Right LogicNode
	Op          JoinOp
}

func (n *LogicJoin) Children() []LogicNode { return []LogicNode{n.Left, n.Right} }
func (n *LogicJoin) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 2 {
		panic("LogicJoin: expects exactly two children")
	}
	nn := *n
	nn.Left, nn.Right = children[0], children[1]
	return &nn
}
func (n *LogicJoin) OutputCols() []*ColExpr {
	return append(append([]*ColExpr{}, n.Left.OutputCols()...), n.Right.OutputCols()...)
}
func (n *LogicJoin) String() string { return "Join(" + n.Left.String() + ", " + n.Right.String() + ")" }

// LogicFilter applies a WHERE or ON predicate over its child's rows.
type LogicFilter struct {
	Child LogicNode
	Pred  Expr
}

func (n *LogicFilter) Children() []LogicNode { return children1(n.Child) }
func (n *LogicFilter) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicFilter: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicFilter) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicFilter) String() string         { return "Filter(" + n.Pred.String() + ")" }

// LogicAgg groups by GroupBy and computes Aggs over its child's rows,
// with an optional Having predicate over the grouped output.
type LogicAgg struct {
	Child   LogicNode
	GroupBy []Expr
	Aggs    []*AggFunc
	Having  Expr
}

func (n *LogicAgg) Children() []LogicNode { return children1(n.Child) }
func (n *LogicAgg) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicAgg: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicAgg) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicAgg) String() string {
	parts := make([]string, len(n.Aggs))
	for i, a := range n.Aggs {
		parts[i] = a.String()
	}
	return "Agg(" + strings.Join(parts, ", ") + ")"
}

// LogicWindow computes windowed aggregates over its child's rows
// (SUPPLEMENTED FEATURES, §4; unpopulated by CreatePlan in this pass —
// see SPEC_FULL §4).
type LogicWindow struct {
	Child LogicNode
	Funcs []*AggFunc
}

func (n *LogicWindow) Children() []LogicNode { return children1(n.Child) }
func (n *LogicWindow) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicWindow: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicWindow) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicWindow) String() string         { return "Window(...)" }

// LogicOrder sorts its child's rows.
type LogicOrder struct {
	Child LogicNode
	Terms []*OrderTerm
}

func (n *LogicOrder) Children() []LogicNode { return children1(n.Child) }
func (n *LogicOrder) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicOrder: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicOrder) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicOrder) String() string         { return "Order(...)" }

// LogicLimit caps row count with an optional offset (SUPPLEMENTED
// FEATURES).
type LogicLimit struct {
	Child  LogicNode
	Limit  Expr
	Offset Expr
}

func (n *LogicLimit) Children() []LogicNode { return children1(n.Child) }
func (n *LogicLimit) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicLimit: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicLimit) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicLimit) String() string         { return "Limit(...)" }

// LogicDistinct deduplicates its child's rows (SUPPLEMENTED FEATURES).
type LogicDistinct struct {
	Child LogicNode
}

func (n *LogicDistinct) Children() []LogicNode { return children1(n.Child) }
func (n *LogicDistinct) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicDistinct: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicDistinct) OutputCols() []*ColExpr { return n.Child.OutputCols() }
func (n *LogicDistinct) String() string         { return "Distinct()" }

// LogicSetOp composes two branches of a UNION/INTERSECT/EXCEPT chain
// (SUPPLEMENTED FEATURES, grounded on the corpus's buildUnion).
type LogicSetOp struct {
	Left, Right LogicNode
	Op          SetOpKind
}

func (n *LogicSetOp) Children() []LogicNode { return []LogicNode{n.Left, n.Right} }
func (n *LogicSetOp) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 2 {
		panic("LogicSetOp: expects exactly two children")
	}
	nn := *n
	nn.Left, nn.Right = children[0], children[1]
	return &nn
}
func (n *LogicSetOp) OutputCols() []*ColExpr { return n.Left.OutputCols() }
func (n *LogicSetOp) String() string         { return "SetOp(...)" }

// LogicResult carries the final, possibly-reordered-and-renamed
// projection a single SELECT exposes. CreatePlan places it above the
// FROM/WHERE/GROUP/ORDER nodes and below any LogicDistinct or
// LogicLimit; a set-operation plan has no LogicResult of its own above
// its LogicSetOp.
type LogicResult struct {
	Child LogicNode
	Cols  []Expr
}

func (n *LogicResult) Children() []LogicNode { return children1(n.Child) }
func (n *LogicResult) WithChildren(children []LogicNode) LogicNode {
	if len(children) != 1 {
		panic("LogicResult: expects exactly one child")
	}
	nn := *n
	nn.Child = children[0]
	return &nn
}
func (n *LogicResult) OutputCols() []*ColExpr {
	if n.Child == nil {
		return nil
	}
	return n.Child.OutputCols()
}
func (n *LogicResult) String() string         { return "Result" }

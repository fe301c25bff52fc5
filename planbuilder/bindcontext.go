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
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/caterby/qpmodel/qerr"
)

// BindContext is a lexical scope owning the statement it binds and an
// ordered, alias-unique list of in-scope TableRefs, chained to a parent
// scope (spec §3). The root context of a batch has Parent == nil.
//
// ID exists purely so log/trace fields can name a scope without
// printing its full table list (SPEC_FULL §3, domain-stack note on
// github.com/satori/go.uuid) — it carries no resolution semantics.
type BindContext struct {
	ID     uuid.UUID
	Stmt   *SelectStmt
	Parent *BindContext
	Tables []TableRef
}

// NewBindContext creates a fresh scope bound to stmt, chained to parent.
func NewBindContext(stmt *SelectStmt, parent *BindContext) *BindContext {
	return &BindContext{ID: uuid.NewV4(), Stmt: stmt, Parent: parent}
}

// AddTable registers t in this scope, failing if its alias collides
// with an existing entry (spec invariant I3).
func (ctx *BindContext) AddTable(t TableRef) error {
	for _, existing := range ctx.Tables {
		if strings.EqualFold(existing.Alias(), t.Alias()) {
			return qerr.ErrDuplicateAlias.New(t.Alias())
		}
	}
	ctx.Tables = append(ctx.Tables, t)
	return nil
}

// findTableAtLevel returns the TableRef in this scope only (not
// ancestors) whose alias matches, or nil.
func (ctx *BindContext) findTableAtLevel(alias string) TableRef {
	for _, t := range ctx.Tables {
		if strings.EqualFold(t.Alias(), alias) {
			return t
		}
	}
	return nil
}

// FindTable walks this scope then its ancestors looking for alias,
// returning the TableRef and the scope it was found in.
func (ctx *BindContext) FindTable(alias string) (TableRef, *BindContext) {
	for c := ctx; c != nil; c = c.Parent {
		if t := c.findTableAtLevel(alias); t != nil {
			return t, c
		}
	}
	return nil, nil
}

// FindCTE walks this scope's ancestor chain (through each statement's
// CTEFrom list) for a CTEQueryRef whose alias equals name (spec §4.4
// step 2, "CTE aliases are looked up by walking the parent chain").
func (ctx *BindContext) FindCTE(name string) *CTEQueryRef {
	for c := ctx; c != nil; c = c.Parent {
		if c.Stmt == nil {
			continue
		}
		for _, cte := range c.Stmt.CTEFrom {
			if cq, ok := cte.(*CTEQueryRef); ok && strings.EqualFold(cq.Alias(), name) {
				return cq
			}
		}
	}
	return nil
}

// resolveUnqualified scans ctx's in-scope tables for a unique exporter
// of colName; on zero matches it widens to the parent scope, marking
// the resulting reference is_parameter. Ambiguity is always judged
// within a single scope level, never across the scope boundary — an
// inner match wins even if an outer table would also export the name
// (spec §4.4 leaves the no-tab-name case silent on widening to parent
// scopes; we extend it so unqualified correlated references are
// resolvable at all, consistent with invariant I4 naming is_parameter
// for the general case — see DESIGN.md Open Questions).
func (ctx *BindContext) resolveUnqualified(colName string) (TableRef, *BindContext, error) {
	for c := ctx; c != nil; c = c.Parent {
		var match TableRef
		ambiguous := false
		for _, t := range c.Tables {
			if hasColumn(t, colName) {
				if match != nil {
					ambiguous = true
					break
				}
				match = t
			}
		}
		if ambiguous {
			return nil, nil, qerr.ErrAmbiguousColumnName.New(colName)
		}
		if match != nil {
			return match, c, nil
		}
	}
	return nil, nil, qerr.ErrColumnNotFound.New(colName)
}

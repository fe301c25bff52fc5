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

// Package qerr holds the error taxonomy the binder and planner raise:
// parse, semantic, and not-implemented (see spec §7). Every error is a
// *errors.Kind from gopkg.in/src-d/go-errors.v1, matched at call sites
// with Is(err) the same way the upstream engine tests for sql.ErrXxx.
package qerr

import (
	"fmt"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Semantic errors: unresolved identifier, ambiguous identifier, unknown
// table/CTE, column-rename overflow, unknown type name, unsupported
// construct. All of these abort binding of the enclosing statement.
var (
	ErrColumnNotFound      = goerrors.NewKind("column %q not found")
	ErrAmbiguousColumnName = goerrors.NewKind("ambiguous column name %q")
	ErrTableNotExists      = goerrors.NewKind("table %q not exists")
	ErrUnknownCTE          = goerrors.NewKind("CTE %q not exists")
	ErrDuplicateAlias      = goerrors.NewKind("duplicate table alias %q")
	ErrRenameOverflow      = goerrors.NewKind("table %q has %d columns available but %d were specified")
	ErrUnknownType         = goerrors.NewKind("unknown type %q")
	ErrArityMismatch       = goerrors.NewKind("each %s query must have the same number of columns")
	ErrMalformedCase       = goerrors.NewKind("malformed CASE expression")
	ErrSemantic            = goerrors.NewKind("%s")
)

// ErrNotImplemented is raised for specific AST shapes the core does not
// (yet) support; surfaced verbatim to the caller.
var ErrNotImplemented = goerrors.NewKind("not implemented: %s")

// ErrParse wraps a malformed-AST condition detected while binding. The
// external lexer/grammar is expected to catch most of these; this exists
// for shapes that are only invalid in context (e.g. the CASE expression
// parity check in spec §4.1).
var ErrParse = goerrors.NewKind("parse error: %s")

// Semantic is a convenience constructor for ad-hoc semantic failures that
// don't warrant their own Kind (e.g. a one-off catalog lookup message).
func Semantic(format string, args ...interface{}) error {
	return ErrSemantic.New(fmt.Sprintf(format, args...))
}

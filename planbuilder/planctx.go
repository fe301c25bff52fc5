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
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/caterby/qpmodel/ast"
	"github.com/caterby/qpmodel/catalog"
	"github.com/caterby/qpmodel/config"
)

// PlanContext is the top-level entry point a caller holds: it owns the
// catalog, planner options, and tracer, and drives a statement through
// build, bind, and plan. Mirrors the teacher's ctx.Span(...) idiom for
// per-phase tracing (SPEC_FULL §2).
type PlanContext struct {
	context.Context
	Catalog catalog.Catalog
	Options config.PlannerOptions
	Tracer  opentracing.Tracer
	Log     *logrus.Entry

	builder *Builder
}

// NewPlanContext wires a catalog and options into a ready-to-use
// PlanContext, defaulting the tracer to opentracing.GlobalTracer() and
// the logger to logrus.StandardLogger().
func NewPlanContext(ctx context.Context, cat catalog.Catalog, opts config.PlannerOptions) *PlanContext {
	return &PlanContext{
		Context: ctx,
		Catalog: cat,
		Options: opts,
		Tracer:  opentracing.GlobalTracer(),
		Log:     logrus.NewEntry(logrus.StandardLogger()),
		builder: NewBuilder(cat),
	}
}

// Span opens a child span named name and returns it along with a finish
// func the caller defers.
func (pc *PlanContext) Span(name string) (opentracing.Span, func()) {
	span, _ := opentracing.StartSpanFromContextWithTracer(pc.Context, pc.Tracer, name)
	return span, span.Finish
}

// Plan translates, binds, and plans sel end to end: exactly the
// pipeline spec.md §4 describes as build -> bind -> create_plan.
func (pc *PlanContext) Plan(sel *ast.Select) (LogicNode, error) {
	_, finish := pc.Span("plan")
	defer finish()

	stmt, err := pc.Build(sel)
	if err != nil {
		return nil, err
	}
	if _, err := pc.Bind(stmt); err != nil {
		return nil, err
	}
	return pc.CreatePlan(stmt)
}

func (pc *PlanContext) Build(sel *ast.Select) (*SelectStmt, error) {
	_, finish := pc.Span("build")
	defer finish()
	return pc.builder.BuildSelect(sel)
}

func (pc *PlanContext) Bind(stmt *SelectStmt) (*BindContext, error) {
	_, finish := pc.Span("bind")
	defer finish()
	pc.Log.Debug("binding statement")
	return stmt.Bind(nil)
}

func (pc *PlanContext) CreatePlan(stmt *SelectStmt) (LogicNode, error) {
	_, finish := pc.Span("create_plan")
	defer finish()
	pc.Log.Debug("planning statement")
	return stmt.CreatePlan()
}

// Copyright 2025 go-highway Authors
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

// Package conformance runs the same fixed-input checks against every algebra
// backend and reports the outcome as a grid of tests by backend.
package conformance

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/samber/lo"
)

// ErrPanic wraps the value recovered from a case that panicked.
var ErrPanic = errors.New("case panicked")

// Case is a named check. A nil error from Run is a pass.
type Case struct {
	Name string
	Run  func() error
}

// Target is one backend with its instantiation of the suite.
type Target struct {
	Info  algebra.Info
	Cases []Case
}

// NewTarget instantiates the suite for one backend.
func NewTarget[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]](info algebra.Info) Target {
	return Target{Info: info, Cases: Cases[M, V, S]()}
}

// Row holds one test's outcome on each backend, in target order. A nil
// entry is a pass.
type Row struct {
	Test string
	Errs []error
}

// Passed reports whether the test passed on every backend.
func (r Row) Passed() bool {
	return lo.EveryBy(r.Errs, func(err error) bool { return err == nil })
}

// Report is the result grid of a Run.
type Report struct {
	Backends []string
	Rows     []Row
}

// Run executes every case of every target. Cases are matched across targets
// by position; a panicking case is recorded as a failure and the run
// continues.
func Run(targets ...Target) Report {
	rep := Report{
		Backends: lo.Map(targets, func(t Target, _ int) string { return t.Info.Name }),
	}
	if len(targets) == 0 {
		return rep
	}

	for i, c := range targets[0].Cases {
		row := Row{Test: c.Name, Errs: make([]error, len(targets))}
		for j, t := range targets {
			row.Errs[j] = runCase(t.Cases[i])
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

func runCase(c Case) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return c.Run()
}

// Passed reports whether every test passed on every backend.
func (rep Report) Passed() bool {
	return lo.EveryBy(rep.Rows, Row.Passed)
}

// Failures returns the rows with at least one failing backend.
func (rep Report) Failures() []Row {
	return lo.Filter(rep.Rows, func(r Row, _ int) bool { return !r.Passed() })
}

// Print writes the PASS/FAIL grid followed by one line per failure.
func (rep Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TEST\t%s\n", strings.Join(lo.Map(rep.Backends, func(b string, _ int) string {
		return strings.ToUpper(b)
	}), "\t"))
	for _, r := range rep.Rows {
		cells := lo.Map(r.Errs, func(err error, _ int) string {
			if err != nil {
				return "FAIL"
			}
			return "PASS"
		})
		fmt.Fprintf(tw, "%s\t%s\n", r.Test, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range rep.Failures() {
		for j, err := range r.Errs {
			if err == nil {
				continue
			}
			for _, line := range strings.Split(err.Error(), "\n") {
				if _, werr := fmt.Fprintf(w, "%s<%s> failed: %s\n", r.Test, rep.Backends[j], line); werr != nil {
					return werr
				}
			}
		}
	}
	return nil
}

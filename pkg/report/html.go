/*
Copyright 2026 the GoREST Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package report renders suite results into artifacts for humans and CI.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jinzhu/inflection"
	"github.com/onsi/ginkgo/v2/reporters"
	"github.com/onsi/ginkgo/v2/types"
)

const (
	// HTMLFile is the name of the HTML report within the report directory.
	HTMLFile = "report.html"

	// JUnitFile is the name of the JUnit report within the report directory.
	JUnitFile = "junit.xml"

	// Title heads the HTML report.
	Title = "GoREST API Conformance Report"
)

//go:embed report.html.tmpl
var htmlTemplate string

//nolint:gochecknoglobals
var page = template.Must(template.New("report").Parse(htmlTemplate))

// Spec is one row of the report.
type Spec struct {
	Groups   string
	Name     string
	State    string
	Failed   bool
	Duration time.Duration
	Failure  string
	Location string
	Output   string
}

// Summary is the data rendered by the HTML template.
type Summary struct {
	Title     string
	Suite     string
	Succeeded bool
	Started   string
	Duration  time.Duration
	Passed    int
	Failed    int
	Skipped   int
	Headline  string
	Specs     []Spec
}

func plural(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}

	return fmt.Sprintf("%d %s", n, noun)
}

// Summarize flattens a Ginkgo report to the "It" nodes it contains.
func Summarize(report types.Report) Summary {
	summary := Summary{
		Title:     Title,
		Suite:     report.SuiteDescription,
		Succeeded: report.SuiteSucceeded,
		Started:   report.StartTime.Format(time.RFC1123),
		Duration:  report.RunTime.Round(time.Millisecond),
	}

	for _, spec := range report.SpecReports {
		if spec.LeafNodeType != types.NodeTypeIt {
			continue
		}

		row := Spec{
			Groups:   strings.Join(spec.ContainerHierarchyTexts, " › "),
			Name:     spec.LeafNodeText,
			State:    spec.State.String(),
			Failed:   spec.Failed(),
			Duration: spec.RunTime.Round(time.Millisecond),
			Output:   spec.CapturedGinkgoWriterOutput,
		}

		switch {
		case spec.Failed():
			summary.Failed++
			row.Failure = spec.Failure.Message
			row.Location = spec.Failure.Location.String()
		case spec.State == types.SpecStatePassed:
			summary.Passed++
		default:
			summary.Skipped++
		}

		summary.Specs = append(summary.Specs, row)
	}

	summary.Headline = strings.Join([]string{
		plural(summary.Passed, "spec") + " passed",
		plural(summary.Failed, "spec") + " failed",
		plural(summary.Skipped, "spec") + " skipped",
	}, ", ")

	return summary
}

// WriteHTML renders the report as a standalone HTML page.
func WriteHTML(w io.Writer, report types.Report) error {
	if err := page.Execute(w, Summarize(report)); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}

	return nil
}

// Generate writes the HTML and JUnit reports into dir, creating it if needed.
func Generate(report types.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, HTMLFile))
	if err != nil {
		return fmt.Errorf("creating html report: %w", err)
	}

	if err := writeAndClose(f, report); err != nil {
		return err
	}

	if err := reporters.GenerateJUnitReport(report, filepath.Join(dir, JUnitFile)); err != nil {
		return fmt.Errorf("generating junit report: %w", err)
	}

	return nil
}

// writeAndClose renders the report to w and closes it.  A failed close means
// buffered output may not have reached the file.
func writeAndClose(w io.WriteCloser, report types.Report) error {
	if err := WriteHTML(w, report); err != nil {
		_ = w.Close()

		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing html report: %w", err)
	}

	return nil
}

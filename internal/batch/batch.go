// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a list of conversion requests through the engine,
// printing per-request status and collecting a report.
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/dox4free/internal/convert"
	"github.com/pdiddy/dox4free/internal/logger"
	"github.com/pdiddy/dox4free/pkg/types"
)

// Converter is the part of the engine a batch run needs.
type Converter interface {
	ConvertRequest(types.Request) (types.Conversion, error)
}

// Outcome is the result of one request in a batch.
type Outcome struct {
	// Index is the request's position in the batch, starting at 1.
	Index   int           `json:"index" yaml:"index" msgpack:"index"`
	Request types.Request `json:"request" yaml:"request" msgpack:"request"`

	// Result is set when the conversion succeeded.
	Result *types.Conversion `json:"result,omitempty" yaml:"result,omitempty" msgpack:"result,omitempty"`

	// Error and Kind are set when it failed.
	Error string       `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
	Kind  convert.Kind `json:"kind,omitempty" yaml:"kind,omitempty" msgpack:"kind,omitempty"`
}

// OK reports whether the request converted.
func (o Outcome) OK() bool { return o.Result != nil }

// Report holds the outcome of a batch run.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id" msgpack:"run_id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at" msgpack:"started_at"`
	Converted int       `json:"converted" yaml:"converted" msgpack:"converted"`
	Failed    int       `json:"failed" yaml:"failed" msgpack:"failed"`
	Outcomes  []Outcome `json:"outcomes" yaml:"outcomes" msgpack:"outcomes"`
}

// Total returns the number of requests processed.
func (r Report) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any request failed.
func (r Report) HasFailures() bool {
	return r.Failed > 0
}

// Run converts each request in order, printing a converted or failed line
// per request and a summary. It continues after individual failures. If
// ctx is cancelled between requests, Run stops and returns the partial
// report with ctx's error.
func Run(ctx context.Context, conv Converter, requests []types.Request, w io.Writer) (Report, error) {
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Outcomes:  make([]Outcome, 0, len(requests)),
	}
	log := logger.L().With("run_id", report.RunID)
	log.Info("batch.start", "requests", len(requests))

	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			log.Warn("batch.cancelled", "done", i, "err", err)
			fmt.Fprintf(w, "\nBatch cancelled after %d of %d requests\n", i, len(requests))
			return report, err
		}

		out := Outcome{Index: i + 1, Request: req}
		c, err := conv.ConvertRequest(req)
		if err != nil {
			out.Error = err.Error()
			out.Kind = convert.KindOf(err)
			report.Failed++
			log.Debug("batch.failed", "index", out.Index, "kind", out.Kind, "err", err)
			fmt.Fprintf(w, "failed:    #%d %s %s -> %s (%v)\n", out.Index, req.Value, req.From, req.To, err)
		} else {
			out.Result = &c
			report.Converted++
			fmt.Fprintf(w, "converted: #%d %s %s = %s %s\n", out.Index, req.Value, c.From, c.Formatted, c.To)
		}
		report.Outcomes = append(report.Outcomes, out)
	}

	log.Info("batch.done", "converted", report.Converted, "failed", report.Failed)
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		report.Converted, report.Failed, report.Total())
	return report, nil
}

// Package bench runs timed repetitions of Frank/Verify/Judge and reports
// simple throughput statistics, filling in for the teacher's own
// bbs/benchmarks package (referenced from its cmd/bench/main.go but not
// present in the retrieved pack) adapted to the AMF operations.
package bench

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/amf-labs/amf-franking/amf"
	"github.com/amf-labs/amf-franking/group"
)

// Config controls one benchmark run.
type Config struct {
	Name       string
	Iterations int
	Concurrent bool
	BatchSize  int
}

// Result holds the timing for one named operation.
type Result struct {
	Operation string
	Count     int
	Total     time.Duration
}

// OpsPerSecond returns the throughput implied by Total/Count.
func (r Result) OpsPerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Count) / r.Total.Seconds()
}

// Runner executes a Config against freshly generated keys.
type Runner struct {
	cfg Config
}

// NewRunner builds a Runner for cfg, validating it has sane bounds.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("bench: iterations must be at least 1, got %d", cfg.Iterations)
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return &Runner{cfg: cfg}, nil
}

// RunAll exercises Frank, Verify, and Judge (and, if cfg.Concurrent is set,
// one BatchVerify pass over cfg.BatchSize signatures) the configured
// number of iterations, returning one Result per operation.
func (r *Runner) RunAll() ([]Result, error) {
	sender, err := amf.KeyGen(group.RoleSender)
	if err != nil {
		return nil, fmt.Errorf("bench: keygen sender: %w", err)
	}
	recipient, err := amf.KeyGen(group.RoleRecipient)
	if err != nil {
		return nil, fmt.Errorf("bench: keygen recipient: %w", err)
	}
	judge, err := amf.KeyGen(group.RoleJudge)
	if err != nil {
		return nil, fmt.Errorf("bench: keygen judge: %w", err)
	}
	msg := []byte("amf benchmark payload")

	var results []Result

	frankStart := time.Now()
	sigs := make([]amf.Signature, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		sig, err := amf.Frank(sender.Private, sender.Public, recipient.Public, judge.Public, msg)
		if err != nil {
			return nil, fmt.Errorf("bench: frank iteration %d: %w", i, err)
		}
		sigs[i] = sig
	}
	results = append(results, Result{Operation: "Frank", Count: r.cfg.Iterations, Total: time.Since(frankStart)})

	verifyStart := time.Now()
	for i, sig := range sigs {
		if !amf.Verify(recipient.Private, sender.Public, recipient.Public, judge.Public, msg, sig) {
			return nil, fmt.Errorf("bench: verify iteration %d: unexpected rejection", i)
		}
	}
	results = append(results, Result{Operation: "Verify", Count: r.cfg.Iterations, Total: time.Since(verifyStart)})

	judgeStart := time.Now()
	for i, sig := range sigs {
		if !amf.Judge(judge.Private, sender.Public, recipient.Public, judge.Public, msg, sig) {
			return nil, fmt.Errorf("bench: judge iteration %d: unexpected rejection", i)
		}
	}
	results = append(results, Result{Operation: "Judge", Count: r.cfg.Iterations, Total: time.Since(judgeStart)})

	if r.cfg.Concurrent {
		tasks := make([]amf.VerificationTask, r.cfg.BatchSize)
		for i := range tasks {
			tasks[i] = amf.VerificationTask{
				PkS: sender.Public, PkR: recipient.Public, PkJ: judge.Public,
				Message: msg, Sig: sigs[i%len(sigs)],
			}
		}
		batchStart := time.Now()
		for _, ok := range amf.BatchVerify(recipient.Private, tasks) {
			if !ok {
				return nil, fmt.Errorf("bench: batch verify: unexpected rejection")
			}
		}
		results = append(results, Result{Operation: "BatchVerify", Count: len(tasks), Total: time.Since(batchStart)})
	}

	return results, nil
}

// WriteText renders results as an aligned text table, the default output
// format, in the same spirit as the teacher's text reporter.
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-14s %8d ops  %12s  %10.1f ops/s\n",
			r.Operation, r.Count, r.Total.Round(time.Microsecond), r.OpsPerSecond()); err != nil {
			return err
		}
	}
	return nil
}

// WriteChart renders results as a PNG bar chart of throughput (ops/sec),
// one bar per operation, for the "-format chart" output the teacher's own
// cmd/bench names (text, json, csv, html) but backed by a non-text
// renderer in this repo.
func WriteChart(w io.Writer, results []Result) error {
	bars := make([]chart.Value, len(results))
	for i, r := range results {
		bars[i] = chart.Value{Label: r.Operation, Value: r.OpsPerSecond()}
	}

	bc := chart.BarChart{
		Title:      "amf throughput (ops/sec)",
		Height:     400,
		BarWidth:   60,
		Bars:       bars,
		XAxis:      chart.Style{StrokeColor: chart.ColorBlack, FontSize: 10},
		YAxis:      chart.YAxis{Style: chart.Style{StrokeColor: chart.ColorBlack, FontSize: 10}},
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
	}
	return bc.Render(chart.PNG, w)
}

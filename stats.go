package qcmdpc

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mhr3/streamvbyte"
)

// Recorder accumulates decode outcomes across a batch of trials: how many
// succeeded at each iteration count, and how many exhausted maxIter without
// converging. It mirrors the original harness's print_stats accounting,
// which buckets trials by iteration count rather than keeping every trial's
// raw record.
type Recorder struct {
	params   Params
	maxIter  int
	byIter   []uint32 // byIter[i] = trials that converged in exactly i iterations
	failures uint32
	logger   *log.Logger
}

// NewRecorder creates a Recorder for params, bucketing successful trials by
// iteration count up to maxIter.
func NewRecorder(params Params, maxIter int, out io.Writer) *Recorder {
	return &Recorder{
		params:  params,
		maxIter: maxIter,
		byIter:  make([]uint32, maxIter+1),
		logger:  log.NewWithOptions(out, log.Options{ReportTimestamp: false}),
	}
}

// Record adds one trial's outcome to the batch.
func (r *Recorder) Record(success bool, iterations int) {
	if success && iterations <= r.maxIter {
		r.byIter[iterations]++
		return
	}
	r.failures++
}

// Total returns the number of trials recorded so far.
func (r *Recorder) Total() uint32 {
	total := r.failures
	for _, c := range r.byIter {
		total += c
	}
	return total
}

// PrintParameters logs the active code parameters in the original harness's
// "-Dname=value" echo format, one key-value pair per structured log field,
// so the batch a stats line belongs to can be reconstructed from logs alone.
func (r *Recorder) PrintParameters() {
	r.logger.Info("parameters",
		"INDEX", Index,
		"BLOCK_LENGTH", r.params.BlockLength,
		"BLOCK_WEIGHT", r.params.BlockWeight,
		"ERROR_WEIGHT", r.params.ErrorWeight,
		"OUROBOROS", r.params.Ouroboros,
		"TTL_COEFF0", r.params.TTLCoeff0,
		"TTL_COEFF1", r.params.TTLCoeff1,
		"TTL_SATURATE", r.params.TTLSaturate,
		"MAX_ITER", r.maxIter,
	)
}

// Report renders the accumulated histogram as a single line in the
// original's "<total> <i>:<count> ... [>MAX:<failures>]" format and logs it.
func (r *Recorder) Report() {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", r.Total())
	for i, count := range r.byIter {
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, " %d:%d", i, count)
	}
	if r.failures > 0 {
		fmt.Fprintf(&b, " >%d:%d", r.maxIter, r.failures)
	}
	r.logger.Info("decode results", "histogram", b.String())
}

// Snapshot encodes the iteration histogram (plus the failure count as one
// trailing element) as a StreamVByte-compressed uint32 stream, letting a
// long-running batch checkpoint its counters far more compactly than a
// textual report, using the same codec the pack's compression tooling uses
// for its own integer sequences.
func (r *Recorder) Snapshot() []byte {
	values := make([]uint32, len(r.byIter)+1)
	copy(values, r.byIter)
	values[len(r.byIter)] = r.failures
	return streamvbyte.EncodeUint32(values, nil)
}

// LoadSnapshot restores a histogram previously produced by Snapshot,
// replacing the Recorder's current counts.
func (r *Recorder) LoadSnapshot(data []byte) error {
	count := len(r.byIter) + 1
	values := streamvbyte.DecodeUint32(data, count, nil)
	if len(values) != count {
		return fmt.Errorf("qcmdpc: snapshot has %d values, want %d", len(values), count)
	}
	copy(r.byIter, values[:len(r.byIter)])
	r.failures = values[len(r.byIter)]
	return nil
}

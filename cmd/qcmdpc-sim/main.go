// Command qcmdpc-sim runs batches of random QC-MDPC decoding trials and
// reports the resulting iteration-count histogram, the Go equivalent of the
// original qcmdpc_decoder.c harness: one goroutine per worker in place of
// one OpenMP thread, each with its own jumped PRNG substream, plus a
// periodic reporting ticker in place of the original's TIME_BETWEEN_PRINTS
// alarm.
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vvasseur/qcmdpc-go"
	"github.com/vvasseur/qcmdpc-go/prng"
)

// reportPeriod is how often the running harness prints an interim
// statistics line while workers are still active, the Go equivalent of the
// original's TIME_BETWEEN_PRINTS alarm.
const reportPeriod = 5 * time.Second

func main() {
	var (
		maxIter = pflag.IntP("max-iter", "i", 100, "maximum bit-flipping iterations per trial")
		rounds  = pflag.IntP("rounds", "r", -1, "number of trials per worker (-1 = run until signaled)")
		threads = pflag.IntP("threads", "T", 1, "number of concurrent decoding workers")
		quiet   = pflag.BoolP("quiet", "q", false, "suppress the parameter echo and periodic reports")
		preset  = pflag.Int("preset", 128, "security level preset (128, 192 or 256)")
		ouro    = pflag.Bool("ouroboros", false, "use the Ouroboros variant")
		seed    = pflag.Uint64("seed", 0, "PRNG seed (sourced from crypto/rand if unset)")
		help    = pflag.BoolP("help", "h", false, "display this help text")
	)
	pflag.Parse()
	if *help {
		pflag.Usage()
		return
	}

	logger := log.New(os.Stderr)

	params, err := qcmdpc.Preset(*preset, *ouro)
	if err != nil {
		logger.Fatal("invalid parameters", "err", err)
	}

	if !pflag.CommandLine.Changed("seed") {
		*seed, err = randomSeed()
		if err != nil {
			logger.Fatal("failed to source seed from crypto/rand", "err", err)
		}
	}
	seedHi, seedLo := prng.Seed(*seed)

	rec := qcmdpc.NewRecorder(params, *maxIter, os.Stderr)
	if !*quiet {
		rec.PrintParameters()
	}

	var mu sync.Mutex
	var completed atomic.Int64

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	go handleSignals(sigCh, cancel, rec, &mu)

	if !*quiet {
		go periodicReport(ctx, rec, &mu)
	}

	var wg sync.WaitGroup
	for w := 0; w < *threads; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			runWorker(ctx, params, *maxIter, *rounds, seedHi, seedLo, worker, rec, &mu, &completed)
		}(w)
	}
	wg.Wait()

	mu.Lock()
	rec.Report()
	mu.Unlock()
	fmt.Fprintf(os.Stderr, "completed %d trials\n", completed.Load())
}

// randomSeed draws a fresh 64-bit seed from crypto/rand, used whenever the
// caller doesn't pin one with --seed (e.g. for a reproducible run).
func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// handleSignals distinguishes the two signals the harness reacts to:
// SIGHUP prints an interim report and keeps running, SIGINT prints a final
// report and cancels ctx, stopping every worker at its next between-trials
// check.
func handleSignals(sigCh <-chan os.Signal, cancel context.CancelFunc, rec *qcmdpc.Recorder, mu *sync.Mutex) {
	for sig := range sigCh {
		mu.Lock()
		rec.Report()
		mu.Unlock()
		if sig == syscall.SIGHUP {
			continue
		}
		cancel()
		return
	}
}

// periodicReport prints an interim statistics line every reportPeriod while
// ctx is live, mirroring the original harness's alarm-driven print_stats.
func periodicReport(ctx context.Context, rec *qcmdpc.Recorder, mu *sync.Mutex) {
	ticker := time.NewTicker(reportPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			rec.Report()
			mu.Unlock()
		}
	}
}

// runWorker runs up to rounds decoding trials (unbounded if rounds < 0) on
// a private Decoder and PRNG substream, recording each outcome under mu. It
// checks ctx between trials so SIGINT stops the batch early and still
// leaves whatever was recorded in place.
func runWorker(ctx context.Context, params qcmdpc.Params, maxIter, rounds int, seedHi, seedLo uint64, worker int, rec *qcmdpc.Recorder, mu *sync.Mutex, completed *atomic.Int64) {
	source := qcmdpc.WorkerSource(seedHi, seedLo, worker)

	dec, err := qcmdpc.NewDecoder(params)
	if err != nil {
		log.Fatal("failed to allocate decoder", "err", err)
	}

	for r := 0; rounds < 0 || r < rounds; r++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		columns := qcmdpc.RandomParityCheck(source, params)
		dec.SetSupport(columns)

		errorBlocks := qcmdpc.RandomError(source, params)
		dec.InitError(errorBlocks)
		if params.Ouroboros {
			dec.InjectSyndromeError(qcmdpc.RandomSyndromeError(source, params))
		}

		success, iterations, _ := dec.DecodeTTL(maxIter)

		mu.Lock()
		rec.Record(success, iterations)
		mu.Unlock()
		completed.Add(1)
	}
}

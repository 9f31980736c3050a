// Package workload benchmarks the ordered containers against other
// dictionary types. A workload inserts, looks up, bound-queries, iterates
// and deletes a generated key set on each configured target and reports the
// elapsed time per phase.
package workload

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"

	"github.com/mythicalcodelabs/yggdrasil/pkg/treemetrics"
)

// Phases, in execution order.
const (
	PhaseInsert     = "insert"
	PhaseFind       = "find"
	PhaseUpperBound = "upper_bound"
	PhaseIterate    = "iterate"
	PhaseDelete     = "delete"
)

// PhaseResult is one cell of the comparison table.
type PhaseResult struct {
	Target      string
	Phase       string
	Ops         int
	Elapsed     time.Duration
	Unsupported bool
}

// Runner executes a workload.
type Runner struct {
	cfg *Config

	// Registry, when set, receives a structure collector for the btree
	// target so a scrape endpoint can watch the tree grow during the run.
	Registry *prometheus.Registry
}

// NewRunner validates the configuration and prepares a runner.
func NewRunner(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	return &Runner{cfg: cfg}, nil
}

// Run executes every phase on every configured target.
func (r *Runner) Run() ([]PhaseResult, error) {
	keys := r.generateKeys()

	var results []PhaseResult
	for _, target := range r.cfg.Targets {
		cfg := *r.cfg
		if target == "pebble" && cfg.DataDir == "" {
			dir, err := os.MkdirTemp("", "yggdrasil-bench")
			if err != nil {
				return nil, fmt.Errorf("failed to create pebble dir: %w", err)
			}
			defer os.RemoveAll(dir)
			cfg.DataDir = dir
		}

		dict, err := openDictionary(target, &cfg)
		if err != nil {
			return nil, err
		}

		if td, ok := dict.(*treeDict); ok && r.Registry != nil {
			collector := treemetrics.NewCollector(r.cfg.Name, td.Tree())
			if err := r.Registry.Register(collector); err != nil {
				dict.Close()
				return nil, fmt.Errorf("failed to register collector: %w", err)
			}
		}

		targetResults, err := r.runTarget(dict, keys)
		closeErr := dict.Close()
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", target, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("target %s close: %w", target, closeErr)
		}
		results = append(results, targetResults...)
	}
	return results, nil
}

func (r *Runner) runTarget(dict Dictionary, keys []string) ([]PhaseResult, error) {
	var results []PhaseResult
	record := func(phase string, ops int, elapsed time.Duration, unsupported bool) {
		results = append(results, PhaseResult{
			Target:      dict.Name(),
			Phase:       phase,
			Ops:         ops,
			Elapsed:     elapsed,
			Unsupported: unsupported,
		})
	}

	start := time.Now()
	for _, k := range keys {
		if err := dict.Insert(k, k); err != nil {
			return nil, fmt.Errorf("insert: %w", err)
		}
	}
	record(PhaseInsert, len(keys), time.Since(start), false)

	start = time.Now()
	for _, k := range keys {
		found, err := dict.Find(k)
		if err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("find: inserted key %q missing", k)
		}
	}
	record(PhaseFind, len(keys), time.Since(start), false)

	start = time.Now()
	unsupported := false
	for _, k := range keys {
		if _, _, err := dict.UpperBound(k); err != nil {
			if errors.Is(err, ErrUnsupported) {
				unsupported = true
				break
			}
			return nil, fmt.Errorf("upper_bound: %w", err)
		}
	}
	record(PhaseUpperBound, len(keys), time.Since(start), unsupported)

	start = time.Now()
	seen := 0
	if err := dict.Iterate(func(string, string) bool {
		seen++
		return true
	}); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	if seen != len(keys) {
		return nil, fmt.Errorf("iterate: saw %d of %d records", seen, len(keys))
	}
	record(PhaseIterate, seen, time.Since(start), false)

	start = time.Now()
	for _, k := range keys {
		if err := dict.Delete(k); err != nil {
			return nil, fmt.Errorf("delete: %w", err)
		}
	}
	record(PhaseDelete, len(keys), time.Since(start), false)

	return results, nil
}

// generateKeys produces the key set for the run: either a shuffled range of
// fixed-width integers or random ksuid strings, both deterministic under the
// configured seed.
func (r *Runner) generateKeys() []string {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	keys := make([]string, r.cfg.Size)
	switch r.cfg.Keys {
	case "ksuid":
		var payload [16]byte
		for i := range keys {
			rng.Read(payload[:])
			id, err := ksuid.FromParts(time.Unix(int64(i), 0), payload[:])
			if err != nil {
				// FromParts only fails on a bad payload length.
				panic(err)
			}
			keys[i] = id.String()
		}
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	default:
		perm := rng.Perm(r.cfg.Size)
		for i, p := range perm {
			keys[i] = fmt.Sprintf("%012d", p)
		}
	}
	return keys
}

// FormatTable renders results as an aligned text table, phases as columns.
func FormatTable(results []PhaseResult) string {
	phases := []string{PhaseInsert, PhaseFind, PhaseUpperBound, PhaseIterate, PhaseDelete}
	cells := make(map[string]map[string]PhaseResult)
	var targets []string
	for _, res := range results {
		if _, ok := cells[res.Target]; !ok {
			cells[res.Target] = make(map[string]PhaseResult)
			targets = append(targets, res.Target)
		}
		cells[res.Target][res.Phase] = res
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s", "target")
	for _, phase := range phases {
		fmt.Fprintf(&b, "%14s", phase)
	}
	b.WriteString("\n")
	for _, target := range targets {
		fmt.Fprintf(&b, "%-10s", target)
		for _, phase := range phases {
			res, ok := cells[target][phase]
			switch {
			case !ok:
				fmt.Fprintf(&b, "%14s", "-")
			case res.Unsupported:
				fmt.Fprintf(&b, "%14s", "unsupported")
			default:
				fmt.Fprintf(&b, "%14s", res.Elapsed.Round(time.Millisecond))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Package sweep runs many random soups to completion in parallel and
// summarizes how they settle per density.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"life-ca/internal/core"
	"life-ca/internal/patterns"
	"life-ca/internal/sims/life"
)

// Options describes the grid every soup runs on.
type Options struct {
	Width    int
	Height   int
	Boundary life.Boundary
	// Steps caps how long one soup may run.
	Steps   int
	Workers int
}

// Job is one soup: a density and the RNG seed that scatters it.
type Job struct {
	Density float64
	Seed    int64
}

// Outcome records how a single soup ended.
type Outcome struct {
	Job
	Initial    int
	Population int
	Generation uint64
	// Period is 1 for a still life, 2 for a period-2 oscillator, and 0 when
	// the soup had not settled within the step budget.
	Period int
}

// Settled reports whether the soup reached a still life or period-2 state.
func (o Outcome) Settled() bool { return o.Period > 0 }

// Jobs builds the cross product of densities and seeds base..base+n-1.
func Jobs(densities []float64, seeds int, base int64) []Job {
	out := make([]Job, 0, len(densities)*seeds)
	for _, d := range densities {
		for i := 0; i < seeds; i++ {
			out = append(out, Job{Density: d, Seed: base + int64(i)})
		}
	}
	return out
}

// Run evaluates every job on a pool of workers. Each engine stays on one
// goroutine. Outcomes come back in job order.
func Run(ctx context.Context, opts Options, jobs []Job) ([]Outcome, error) {
	cfg := life.Config{Height: opts.Height, Width: opts.Width, Boundary: opts.Boundary}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	type indexed struct {
		i   int
		job Job
	}
	queue := make(chan indexed)
	out := make([]Outcome, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				out[item.i] = runOne(cfg, opts.Steps, item.job)
			}
		}()
	}

	var err error
feed:
	for i, job := range jobs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case queue <- indexed{i: i, job: job}:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(queue)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("sweep interrupted: %w", err)
	}
	return out, nil
}

func runOne(cfg life.Config, steps int, job Job) Outcome {
	eng, err := life.NewWithConfig(cfg)
	if err != nil {
		// Run validated cfg already.
		panic(err)
	}
	size := eng.Size()
	eng.Seed(patterns.Soup(core.NewRNG(job.Seed), size, job.Density), 0, 0)

	res := Outcome{Job: job, Initial: eng.Population()}
	var prev, prev2 []uint32
	cur := eng.Frame().Cells
	for i := 0; i < steps; i++ {
		prev2, prev = prev, cur
		eng.Advance()
		cur = eng.Frame().Cells
		if slices.Equal(cur, prev) {
			res.Period = 1
			break
		}
		if prev2 != nil && slices.Equal(cur, prev2) {
			res.Period = 2
			break
		}
	}
	res.Population = eng.Population()
	res.Generation = eng.Generation()
	return res
}

// Summary aggregates the outcomes of one density.
type Summary struct {
	Density        float64
	Runs           int
	Settled        int
	MeanInitial    float64
	MeanPopulation float64
	// MeanSettleGen averages the final generation over settled runs only.
	MeanSettleGen float64
}

// Summarize groups outcomes by density, sorted ascending.
func Summarize(outcomes []Outcome) []Summary {
	byDensity := map[float64]*Summary{}
	settleTotals := map[float64]uint64{}
	for _, o := range outcomes {
		s, ok := byDensity[o.Density]
		if !ok {
			s = &Summary{Density: o.Density}
			byDensity[o.Density] = s
		}
		s.Runs++
		s.MeanInitial += float64(o.Initial)
		s.MeanPopulation += float64(o.Population)
		if o.Settled() {
			s.Settled++
			settleTotals[o.Density] += o.Generation
		}
	}

	out := make([]Summary, 0, len(byDensity))
	for d, s := range byDensity {
		s.MeanInitial /= float64(s.Runs)
		s.MeanPopulation /= float64(s.Runs)
		if s.Settled > 0 {
			s.MeanSettleGen = float64(settleTotals[d]) / float64(s.Settled)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Density < out[j].Density })
	return out
}

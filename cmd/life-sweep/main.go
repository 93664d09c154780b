// Command life-sweep runs batches of random soups and reports how they
// settle at each density.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"life-ca/internal/sims/life"
	"life-ca/internal/sweep"
)

type densityList []float64

func (l *densityList) String() string {
	parts := make([]string, len(*l))
	for i, d := range *l {
		parts[i] = strconv.FormatFloat(d, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *densityList) Set(value string) error {
	var out densityList
	for _, field := range strings.Split(value, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		if d < 0 || d > 1 {
			return fmt.Errorf("density %g outside [0, 1]", d)
		}
		out = append(out, d)
	}
	*l = out
	return nil
}

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per soup before giving up")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 64, "grid width")
	height := flag.Int("height", 32, "grid height")
	boundaryFlag := flag.String("boundary", "toroidal", "edge handling: clamped or toroidal")
	seeds := flag.Int("seeds", 20, "soups per density")
	seed := flag.Int64("seed", 1, "first RNG seed")
	densities := densityList{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	flag.Var(&densities, "densities", "comma separated soup densities")
	flag.Parse()

	boundary, err := life.ParseBoundary(*boundaryFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	jobs := sweep.Jobs(densities, *seeds, *seed)
	opts := sweep.Options{Width: *width, Height: *height, Boundary: boundary, Steps: *steps, Workers: *workers}
	fmt.Printf("Sweeping %d soups on %dx%d %s (%d workers, %d steps)\n", len(jobs), *height, *width, boundary, *workers, *steps)

	start := time.Now()
	outcomes, err := sweep.Run(ctx, opts, jobs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	fmt.Println("density  runs  settled  initial  final    settle-gen")
	for _, s := range sweep.Summarize(outcomes) {
		fmt.Printf("%-7.2f  %4d  %7d  %7.1f  %7.1f  %10.1f\n",
			s.Density, s.Runs, s.Settled, s.MeanInitial, s.MeanPopulation, s.MeanSettleGen)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfleet/internal/config"
	"github.com/efreeman/hexfleet/internal/logger"
	"github.com/efreeman/hexfleet/internal/scenario"
)

func main() {
	logger.Init()

	var (
		numRuns int
		turns   int
		workers int
		seed    int64
		jsonOut bool
	)

	flag.IntVar(&numRuns, "n", 1, "Number of skirmishes to run")
	flag.IntVar(&turns, "turns", 100, "Turn cap per skirmish")
	flag.IntVar(&workers, "workers", 1, "Concurrency (parallel skirmishes)")
	flag.Int64Var(&seed, "seed", 1, "Base seed (run i uses seed+i)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")

	flag.Parse()

	rules := config.Load().Rules()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	results := make([]*scenario.Result, numRuns)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numRuns; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			cfg := scenario.Config{
				Name:  fmt.Sprintf("skirmish-%d", idx+1),
				Turns: turns,
				Seed:  seed + int64(idx),
				Rules: rules,
			}

			result, err := scenario.Run(ctx, cfg, log.Logger)
			if err != nil {
				log.Error().Err(err).Int("run", idx+1).Msg("Skirmish failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().
				Int("run", idx+1).
				Int("turns", result.TurnsPlayed).
				Int("colonized", result.Colonized).
				Int("built", result.Built).
				Msg("Skirmish completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, numRuns, errCount)
	} else {
		printSummary(results, errCount)
	}
}

func printJSON(results []*scenario.Result, numRuns, errCount int) {
	out := struct {
		Runs    int                `json:"runs"`
		Errors  int                `json:"errors"`
		Results []*scenario.Result `json:"results"`
	}{Runs: numRuns, Errors: errCount}
	for _, r := range results {
		if r != nil {
			out.Results = append(out.Results, r)
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error().Err(err).Msg("JSON output failed")
	}
}

func printSummary(results []*scenario.Result, errCount int) {
	completed := 0
	totalTurns, totalColonized, totalBuilt := 0, 0, 0
	for _, r := range results {
		if r == nil {
			continue
		}
		completed++
		totalTurns += r.TurnsPlayed
		totalColonized += r.Colonized
		totalBuilt += r.Built
	}

	fmt.Printf("\n=== Skirmish results ===\n")
	fmt.Printf("Completed: %d   Errors: %d\n", completed, errCount)
	if completed > 0 {
		fmt.Printf("Avg turns: %.1f   Colonized: %d   Built: %d\n",
			float64(totalTurns)/float64(completed), totalColonized, totalBuilt)
	}
}

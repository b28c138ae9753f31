// Package trials runs many mints against throwaway decks and measures
// how uniform the dispensed permutations are.
package trials

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hidden/dispenser"
	"github.com/lox/hidden/internal/randutil"
	"github.com/lox/hidden/internal/statistics"
)

// Run mints cfg.Trials hands across cfg.Workers parallel workers, each
// with its own dispenser and random source, and collects every dispensed
// permutation into a statistics collector. Progress is reported through
// mon.
func Run(ctx context.Context, cfg Config, logger *log.Logger, mon Monitor) (*statistics.Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trial config: %w", err)
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
		logger.Debug("using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Debug("using random seed", "seed", seed)
	}

	collector := statistics.NewCollector(cfg.DeckSize)
	results := make(chan []int, cfg.Workers)

	mon.OnStart(cfg.Trials)

	// The cancel unblocks workers mid-send if collection bails out early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	perWorker := cfg.Trials / cfg.Workers
	remainder := cfg.Trials % cfg.Workers

	for w := 0; w < cfg.Workers; w++ {
		share := perWorker
		if w < remainder {
			share++
		}
		// Each worker gets an independent seed-derived RNG to avoid
		// contention on a shared source.
		workerSeed := seed + int64(w)

		g.Go(func() error {
			return runWorker(ctx, cfg.DeckSize, share, workerSeed, results)
		})
	}

	// Close the results channel once all workers finish, so the
	// collection loop below terminates.
	errCh := make(chan error, 1)
	go func() {
		errCh <- g.Wait()
		close(results)
	}()

	collected := 0
	for perm := range results {
		if err := collector.Add(perm); err != nil {
			return nil, fmt.Errorf("collecting hand %d: %w", collected, err)
		}
		collected++
		mon.OnHand()
	}

	if err := <-errCh; err != nil {
		return nil, err
	}

	mon.OnComplete(collected)

	if err := collector.Validate(); err != nil {
		return nil, fmt.Errorf("inconsistent statistics: %w", err)
	}
	return collector, nil
}

// runWorker mints share hands from a fresh dispenser and sends each
// dispensed permutation on results.
func runWorker(ctx context.Context, deckSize, share int, seed int64, results chan<- []int) error {
	deck := make([]int, deckSize)
	for i := range deck {
		deck[i] = i
	}

	d := dispenser.New[int](deckSize, randutil.New(seed))

	for t := 0; t < share; t++ {
		hand, err := d.Mint(deck)
		if err != nil {
			return fmt.Errorf("minting trial hand: %w", err)
		}

		// The deck maps position i to value i, so reading the hand back
		// recovers the frozen permutation.
		perm := make([]int, hand.Len())
		for i := range perm {
			v, ok := hand.Choose(i)
			if !ok {
				return fmt.Errorf("choice %d absent from a checked hand of %d", i, hand.Len())
			}
			perm[i] = *v
		}

		select {
		case results <- perm:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

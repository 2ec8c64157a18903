// Package search looks for the ingredient sequence with the highest multiplier.
package search

import (
	"cmp"
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/catalog"
	"github.com/Dr1p5ter/Schedule-One-Recipe-Builder/internal/mix"
)

// Config tunes the search. Wider beams trade speed for solution quality.
type Config struct {
	// Depth is the mix length to search up to, prefix included.
	Depth int
	// BeamWidth is how many states survive each expansion step.
	BeamWidth int
	// Workers caps the goroutines expanding states. 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the tuning used by the CLI when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Depth:     4,
		BeamWidth: 8,
		Workers:   0,
	}
}

// Result is the best mix found.
type Result struct {
	Order      []catalog.IngredientID
	Effects    []catalog.EffectID
	Multiplier float32
}

// Searcher runs a beam search over one source.
type Searcher struct {
	src    catalog.Source
	cfg    Config
	logger *slog.Logger
}

// New returns a searcher. A nil logger uses slog.Default.
func New(src catalog.Source, cfg Config, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{src: src, cfg: cfg, logger: logger.With("component", "search")}
}

type candidate struct {
	mix        *mix.Mix
	multiplier float32
}

// Best extends prefix one ingredient at a time up to Depth and returns the
// highest-multiplier mix seen at any length. Ties go to the shorter mix, then
// to the lexicographically smaller order, so the result is deterministic.
func (s *Searcher) Best(prefix []catalog.IngredientID) (Result, time.Duration, error) {
	start := time.Now()

	table, err := s.src.Ingredients()
	if err != nil {
		return Result{}, time.Since(start), err
	}
	ids := table.IDs()

	root := mix.New(s.src)
	for _, id := range prefix {
		if err := root.AddIngredient(id); err != nil {
			return Result{}, time.Since(start), err
		}
	}
	rootMul, err := root.Multiplier()
	if err != nil {
		return Result{}, time.Since(start), err
	}

	// Capped so extend never sees ErrMaxIngredients.
	depth := min(s.cfg.Depth, mix.MaxIngredients)
	width := max(s.cfg.BeamWidth, 1)
	s.logger.Info("search started", "prefix", len(prefix), "depth", depth, "beam", width, "ingredients", len(ids))

	best := candidate{mix: root, multiplier: rootMul}
	beam := []candidate{best}
	for n := root.Len(); n < depth && len(beam) > 0; n++ {
		next, err := s.expand(beam, ids)
		if err != nil {
			return Result{}, time.Since(start), err
		}
		next = dedup(next)
		slices.SortFunc(next, compareCandidates)
		if len(next) > width {
			next = next[:width]
		}
		if len(next) > 0 && compareCandidates(next[0], best) < 0 {
			best = next[0]
		}
		beam = next
		s.logger.Debug("depth expanded", "length", n+1, "states", len(beam), "best", best.multiplier)
	}

	elapsed := time.Since(start)
	s.logger.Info("search done", "best", best.multiplier, "order", best.mix.Order(), "elapsed", elapsed)
	return Result{
		Order:      best.mix.Order(),
		Effects:    best.mix.Effects(),
		Multiplier: best.multiplier,
	}, elapsed, nil
}

// expand adds every ingredient to every beam state. States are fanned out to
// a worker pool; each worker owns the mixes it builds.
func (s *Searcher) expand(beam []candidate, ids []catalog.IngredientID) ([]candidate, error) {
	numWorkers := s.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	numWorkers = min(numWorkers, len(beam))

	type result struct {
		cands []candidate
		err   error
	}
	stateCh := make(chan int, len(beam))
	for i := range beam {
		stateCh <- i
	}
	close(stateCh)
	resultCh := make(chan result, len(beam))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range stateCh {
				cands, err := extend(beam[idx].mix, ids)
				resultCh <- result{cands, err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var out []candidate
	var firstErr error
	for r := range resultCh {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		out = append(out, r.cands...)
	}
	return out, firstErr
}

func extend(base *mix.Mix, ids []catalog.IngredientID) ([]candidate, error) {
	var out []candidate
	for _, id := range ids {
		m := base.Clone()
		if err := m.AddIngredient(id); err != nil {
			if errors.Is(err, mix.ErrDuplicateIngredient) {
				continue
			}
			return nil, err
		}
		mul, err := m.Multiplier()
		if err != nil {
			return nil, err
		}
		out = append(out, candidate{mix: m, multiplier: mul})
	}
	return out, nil
}

func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(b.multiplier, a.multiplier); c != 0 {
		return c
	}
	if c := cmp.Compare(a.mix.Len(), b.mix.Len()); c != 0 {
		return c
	}
	return slices.Compare(a.mix.Order(), b.mix.Order())
}

// dedup keeps the best candidate per state. Future substitutions depend only
// on the multiset of active effects, and the duplicate rule only on the last
// ingredient, so two mixes agreeing on both are interchangeable.
func dedup(cands []candidate) []candidate {
	best := make(map[string]int, len(cands))
	var out []candidate
	for _, c := range cands {
		fp := fingerprint(c.mix)
		if i, ok := best[fp]; ok {
			if compareCandidates(c, out[i]) < 0 {
				out[i] = c
			}
			continue
		}
		best[fp] = len(out)
		out = append(out, c)
	}
	return out
}

func fingerprint(m *mix.Mix) string {
	effects := m.Effects()
	slices.Sort(effects)
	last, _ := m.Last()
	buf := make([]byte, 0, 2*len(effects)+2)
	buf = append(buf, byte(last>>8), byte(last))
	for _, e := range effects {
		buf = append(buf, byte(e>>8), byte(e))
	}
	return string(buf)
}

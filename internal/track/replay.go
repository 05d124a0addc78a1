package track

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/batch"
	"github.com/rshade/headway/internal/logging"
)

// Options tune how a replay is executed. Zero values select defaults.
type Options struct {
	// BatchSize is the number of samples per batch.
	BatchSize int
	// Concurrency is the number of batches (or tracks, in ReplayAll)
	// processed at once. Defaults to runtime.NumCPU().
	Concurrency int
}

func (o Options) processor() (*batch.Processor[Sample], error) {
	if o.BatchSize <= 0 {
		return batch.NewProcessorWithDefaults[Sample](), nil
	}
	return batch.NewProcessor[Sample](o.BatchSize)
}

func (o Options) concurrency() int {
	if o.Concurrency <= 0 {
		return runtime.NumCPU()
	}
	return o.Concurrency
}

// Result is the recommendation for one sample.
type Result struct {
	T                      float64 `yaml:"t" json:"t"`
	advisor.Recommendation `yaml:",inline"`
}

// TimedTransition is a regime change and the sample time it happened at.
type TimedTransition struct {
	T                  float64 `yaml:"t" json:"t"`
	advisor.Transition `yaml:",inline"`
}

// Summary aggregates a replay.
type Summary struct {
	Samples      int     `yaml:"samples" json:"samples"`
	Duration     float64 `yaml:"duration_s" json:"duration_s"`
	MinDistance  float64 `yaml:"min_distance_m" json:"min_distance_m"`
	MaxDistance  float64 `yaml:"max_distance_m" json:"max_distance_m"`
	MeanDistance float64 `yaml:"mean_distance_m" json:"mean_distance_m"`
	Warnings     int     `yaml:"warnings" json:"warnings"`
	// TimeInRegime is the number of seconds spent in each regime, keyed by
	// regime name. Each sample's regime holds until the next sample.
	TimeInRegime map[string]float64 `yaml:"time_in_regime_s" json:"time_in_regime_s"`
}

// Report is the outcome of replaying one track.
type Report struct {
	RunID       string            `yaml:"run_id" json:"run_id"`
	Track       string            `yaml:"track" json:"track"`
	Unit        advisor.SpeedUnit `yaml:"unit" json:"unit"`
	Results     []Result          `yaml:"results" json:"results"`
	Transitions []TimedTransition `yaml:"transitions" json:"transitions"`
	Summary     Summary           `yaml:"summary" json:"summary"`
}

// Replay maps every sample of tr through adv. Samples are converted and
// mapped in batches, concurrently; transitions and the summary are then
// computed in sample order.
func Replay(ctx context.Context, adv *advisor.Advisor, tr *Track, opts Options) (*Report, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	proc, err := opts.processor()
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(func(snap batch.Snapshot) {
		logger.Debug().
			Str("component", "track").
			Str("track", tr.Name).
			Int("batches_done", snap.ProcessedBatches).
			Int("batches_total", snap.TotalBatches).
			Float64("percent", snap.PercentComplete()).
			Msg("replay progress")
	})

	results := make([]Result, len(tr.Samples))
	err = proc.ProcessConcurrent(ctx, tr.Samples, func(_ context.Context, samples []Sample, start int) error {
		for i, s := range samples {
			rec, recErr := adv.RecommendIn(s.Speed, tr.Unit)
			if recErr != nil {
				return recErr
			}
			results[start+i] = Result{T: s.T, Recommendation: rec}
		}
		return nil
	}, opts.concurrency())
	if err != nil {
		return nil, fmt.Errorf("replaying track %q: %w", tr.Name, err)
	}

	changes := transitions(results)
	summary := summarize(results, changes)
	summary.Duration = tr.Duration()
	report := &Report{
		RunID:       logging.NewID(),
		Track:       tr.Name,
		Unit:        tr.Unit,
		Results:     results,
		Transitions: changes,
		Summary:     summary,
	}

	logger.Debug().
		Str("component", "track").
		Str("run_id", report.RunID).
		Str("track", tr.Name).
		Int("samples", report.Summary.Samples).
		Int("transitions", len(report.Transitions)).
		Int("warnings", report.Summary.Warnings).
		Msg("track replayed")

	return report, nil
}

// ReplayAll loads and replays several track files at once. Reports are
// returned in the order of paths; the first failure cancels the rest.
func ReplayAll(ctx context.Context, adv *advisor.Advisor, paths []string, opts Options) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	for i, path := range paths {
		g.Go(func() error {
			tr, err := Load(path)
			if err != nil {
				return err
			}
			report, err := Replay(gCtx, adv, tr, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func transitions(results []Result) []TimedTransition {
	tracker := advisor.NewTracker()
	out := []TimedTransition{}
	for _, r := range results {
		if tr, changed := tracker.Observe(r.Recommendation); changed {
			out = append(out, TimedTransition{T: r.T, Transition: tr})
		}
	}
	return out
}

func summarize(results []Result, changes []TimedTransition) Summary {
	s := Summary{
		Samples:      len(results),
		MinDistance:  math.Inf(1),
		MaxDistance:  math.Inf(-1),
		TimeInRegime: map[string]float64{},
	}
	if len(results) == 0 {
		s.MinDistance, s.MaxDistance = 0, 0
		return s
	}

	var total float64
	for i, r := range results {
		s.MinDistance = math.Min(s.MinDistance, r.Distance)
		s.MaxDistance = math.Max(s.MaxDistance, r.Distance)
		total += r.Distance

		if i+1 < len(results) {
			s.TimeInRegime[r.Regime.String()] += results[i+1].T - r.T
		}
	}
	s.MeanDistance = total / float64(len(results))

	for _, tr := range changes {
		if tr.Warn {
			s.Warnings++
		}
	}
	return s
}

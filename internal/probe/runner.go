package probe

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Runner runs probers one after another and logs each step.
type Runner struct {
	Probers []Prober
	Logger  *zap.Logger
}

func NewRunner(logger *zap.Logger, probers ...Prober) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Probers: probers, Logger: logger}
}

func (r *Runner) Run(ctx context.Context) []Result {
	results := make([]Result, 0, len(r.Probers))
	for _, p := range r.Probers {
		results = append(results, r.runOne(ctx, p))
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, p Prober) Result {
	r.Logger.Info("probe_start", zap.String("probe", p.Name()))
	res := p.Probe(ctx)

	fields := []zap.Field{
		zap.String("probe", res.Probe),
		zap.String("kind", string(res.Kind)),
		zap.Float64("latency_ms", res.LatencyMS),
	}
	if res.StatusCode != 0 {
		fields = append(fields, zap.Int("status", res.StatusCode))
	}
	if res.OK() {
		r.Logger.Info("probe_done", fields...)
	} else {
		r.Logger.Warn("probe_failed", append(fields, zap.String("message", res.Message))...)
	}
	return res
}

// Combined joins the errors of every failed result; nil when all succeeded.
func Combined(results []Result) error {
	var err error
	for _, res := range results {
		err = multierr.Append(err, res.Err())
	}
	return err
}

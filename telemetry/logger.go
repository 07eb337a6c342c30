package telemetry

import (
	"time"

	"go.uber.org/zap"
)

// Logger wraps a *zap.SugaredLogger with the fields common to every call
// site in this engine, following this codebase's convention of carrying a
// pre-scoped logger (log.With(...)) through the call graph rather than
// passing raw fields at every log site.
type Logger struct {
	log *zap.SugaredLogger
}

// NewProduction builds a Logger backed by zap's production JSON encoder.
func NewProduction() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{log: z.Sugar()}, nil
}

// NewDevelopment builds a Logger backed by zap's human-readable console
// encoder, suited to local CLI runs.
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{log: z.Sugar()}, nil
}

// Nop returns a Logger that discards everything, for tests and library
// callers that don't want log output.
func Nop() *Logger {
	return &Logger{log: zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries. Call before process exit.
func (l *Logger) Sync() error {
	return l.log.Sync()
}

// Worker scopes the logger to a single worker id, for use across a whole
// controller's lifetime.
func (l *Logger) Worker(id int) *Logger {
	return &Logger{log: l.log.With(zap.Int("worker", id))}
}

// Iteration logs per-iteration progress at debug level: cheap to call every
// loop tick since zap defers formatting until the sink actually writes.
func (l *Logger) Iteration(n int, currentCost, globalBestCost float64, stagnation int) {
	l.log.Debugw("lns iteration",
		zap.Int("iteration", n),
		zap.Float64("current_cost", currentCost),
		zap.Float64("global_best_cost", globalBestCost),
		zap.Int("stagnation", stagnation),
	)
}

// Improvement logs an accepted global-best improvement at Info level
// (one line per improvement, per this engine's logging contract).
func (l *Logger) Improvement(iteration int, cost float64) {
	l.log.Infow("global best improved",
		zap.Int("iteration", iteration),
		zap.Float64("cost", cost),
	)
}

// Restart logs a stagnation-triggered restart event.
func (l *Logger) Restart(iteration int, seededFromGlobalBest bool, jumpSize int) {
	l.log.Infow("restart triggered",
		zap.Int("iteration", iteration),
		zap.Bool("seeded_from_global_best", seededFromGlobalBest),
		zap.Int("jump_size", jumpSize),
	)
}

// RunComplete logs the final summary of one orchestrator run.
func (l *Logger) RunComplete(bestCost float64, iterations int, elapsed time.Duration) {
	l.log.Infow("run complete",
		zap.Float64("best_cost", bestCost),
		zap.Int("iterations", iterations),
		zap.Duration("elapsed", elapsed),
	)
}

// Warn logs a recoverable condition (e.g. a transient infeasible repair)
// without aborting the run.
func (l *Logger) Warn(msg string, err error) {
	l.log.Warnw(msg, zap.Error(err))
}

// Fatal logs an unrecoverable condition just before the caller aborts.
func (l *Logger) Fatal(msg string, err error) {
	l.log.Errorw(msg, zap.Error(err))
}

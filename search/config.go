package search

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/checkers/eval"
)

const (
	// MaxDepth is the deepest iteration the engine will start.
	MaxDepth = 50
)

// Config is the structure to configure the engine.
type Config struct {
	// TimeLimit is the wall-clock budget of one decision.
	TimeLimit time.Duration `json:"time_limit"`
	// SafetyMargin is the part of the budget never spent: an iteration is abandoned as soon as
	// less than this much time remains.
	SafetyMargin time.Duration `json:"safety_margin"`
	MaxDepth     int           `json:"max_depth"`
}

func DefaultConfig() Config {
	return Config{
		TimeLimit:    3 * time.Second,
		SafetyMargin: 100 * time.Millisecond,
		MaxDepth:     MaxDepth,
	}
}

func (c Config) IsValid() bool {
	return c.TimeLimit >= 0 &&
		c.SafetyMargin >= 0 &&
		c.MaxDepth >= 1 && c.MaxDepth <= MaxDepth
}

// Engine picks moves with a time-bounded iterative-deepening alpha-beta search.
// An Engine holds no state between searches, but it is not safe for concurrent use.
type Engine struct {
	Config
	eval   *eval.Evaluator
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEvaluator replaces the default evaluator.
func WithEvaluator(e *eval.Evaluator) Option {
	return func(en *Engine) { en.eval = e }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(en *Engine) { en.now = now }
}

// WithLogger sets the logger that receives per-iteration progress.
func WithLogger(l zerolog.Logger) Option {
	return func(en *Engine) { en.logger = l }
}

// New creates an engine. It panics if conf is not valid.
func New(conf Config, opts ...Option) *Engine {
	if !conf.IsValid() {
		panic("search config is not valid. Unable to proceed")
	}
	e := &Engine{
		Config: conf,
		eval:   eval.New(eval.DefaultWeights()),
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

package tempocnn

import (
	"log/slog"
)

// Tie describes a majority vote in which the two most voted tempi received
// the same number of votes. Winner is the one seen first.
type Tie struct {
	Winner   int
	RunnerUp int
	Votes    int
}

// Result holds the output of one aggregation.
type Result struct {
	// Global is the aggregated tempo in BPM.
	Global float64
	// Local holds the most likely tempo of each segment in BPM.
	Local []float64
	// Confidence holds the probability of each local tempo.
	Confidence []float64
	// Method is the aggregation method that produced Global.
	Method Method
	// Votes is the winner's vote count for MethodMajority, 0 otherwise.
	Votes int
	// Tie is set when a majority vote was ambiguous.
	Tie *Tie
}

// Observer receives aggregation events. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveAggregation(method Method, segments int)
	ObserveTie(tie Tie)
}

type options struct {
	logger   *slog.Logger
	observer Observer
	workers  int
}

// Option configures an [Estimator].
type Option func(*options)

// WithLogger sets the logger used for tie warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an observer for aggregation events.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithDecodeWorkers decodes segments on up to n goroutines. Values below 2
// keep decoding sequential. Results do not depend on n.
func WithDecodeWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Estimator turns classifier predictions into local and global tempo.
type Estimator struct {
	cfg       Config
	method    Method
	predictor Predictor
	log       *slog.Logger
	observer  Observer
	workers   int
}

// New validates cfg and returns an Estimator. predictor may be nil when only
// [Estimator.Aggregate] is used.
func New(predictor Predictor, cfg Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := ParseMethod(cfg.AggregationMethod)
	if err != nil {
		return nil, err
	}
	cfg.AggregationMethod = string(method)

	o := options{logger: slog.Default(), workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Estimator{
		cfg:       cfg,
		method:    method,
		predictor: predictor,
		log:       o.logger.With("component", "tempocnn"),
		observer:  o.observer,
		workers:   o.workers,
	}, nil
}

// Method returns the normalized aggregation method.
func (e *Estimator) Method() Method { return e.method }

// Config returns the normalized configuration, including the predictor
// parameters passed through from construction.
func (e *Estimator) Config() Config { return e.cfg }

// Compute runs the predictor on signal and aggregates its output.
func (e *Estimator) Compute(signal []float64) (Result, error) {
	if e.predictor == nil {
		return Result{}, configError("no predictor configured")
	}
	predictions, err := e.predictor.Predict(signal)
	if err != nil {
		return Result{}, err
	}
	return e.Aggregate(predictions)
}

// Aggregate decodes predictions, one distribution of [Classes] values per
// segment, and reduces the local tempi with the configured method.
func (e *Estimator) Aggregate(predictions [][]float64) (Result, error) {
	if err := validatePredictions(predictions); err != nil {
		return Result{}, err
	}

	var local, confidence []float64
	if e.workers > 1 {
		local, confidence = decodeParallel(predictions, e.workers)
	} else {
		local, confidence = Decode(predictions)
	}

	res := Result{
		Local:      local,
		Confidence: confidence,
		Method:     e.method,
	}

	switch e.method {
	case MethodMean:
		res.Global = Mean(local)
	case MethodMedian:
		res.Global = Median(local)
	case MethodMajority:
		vote := MajorityVote(local)
		res.Global = float64(vote.Winner)
		res.Votes = vote.Votes
		if vote.Tied() {
			tie := Tie{Winner: vote.Winner, RunnerUp: vote.RunnerUp, Votes: vote.Votes}
			res.Tie = &tie
			e.log.Warn("majority vote tie",
				"winner", tie.Winner,
				"runner_up", tie.RunnerUp,
				"votes", tie.Votes,
			)
			if e.observer != nil {
				e.observer.ObserveTie(tie)
			}
		}
	default:
		return Result{}, configError("unsupported aggregation method %q", e.method)
	}

	if e.observer != nil {
		e.observer.ObserveAggregation(e.method, len(local))
	}
	return res, nil
}

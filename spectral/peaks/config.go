package peaks

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"github.com/cwbudde/algo-mir/dsp/core"
)

// ErrConfiguration is returned for invalid or unsupported settings.
var ErrConfiguration = errors.New("peaks: invalid configuration")

var validate = validator.New()

// Config holds the frequency-domain peak settings.
type Config struct {
	SampleRate         float64 `yaml:"sample_rate" json:"sample_rate" validate:"gt=0"`
	MaxPeaks           int     `yaml:"max_peaks" json:"max_peaks" validate:"gt=0"`
	MinFrequency       float64 `yaml:"min_frequency" json:"min_frequency" validate:"gte=0"`
	MaxFrequency       float64 `yaml:"max_frequency" json:"max_frequency" validate:"gtefield=MinFrequency"`
	MagnitudeThreshold float64 `yaml:"magnitude_threshold" json:"magnitude_threshold"`
	// OrderBy is "magnitude" or "frequency", in any case.
	OrderBy string `yaml:"order_by" json:"order_by" validate:"required"`
}

// DefaultConfig returns a full-band configuration at 44.1 kHz ordered by
// frequency.
func DefaultConfig() Config {
	return Config{
		SampleRate:         core.DefaultProcessorConfig().SampleRate,
		MaxPeaks:           100,
		MinFrequency:       0,
		MaxFrequency:       5000,
		MagnitudeThreshold: 0,
		OrderBy:            "frequency",
	}
}

// Order is the sort key a [Finder] applies to its output.
type Order string

// Generic orderings understood by a [Finder].
const (
	// OrderPosition sorts peaks by ascending position.
	OrderPosition Order = "position"
	// OrderAmplitude sorts peaks by descending amplitude.
	OrderAmplitude Order = "amplitude"
)

// Params is the generic configuration passed to a [Finder].
type Params struct {
	// Range is the position of the last array element; positions scale
	// linearly from 0 at index 0.
	Range       float64
	MaxPeaks    int
	MinPosition float64
	MaxPosition float64
	Threshold   float64
	OrderBy     Order
}

// Remap validates cfg and translates it into finder parameters.
func Remap(cfg Config) (Params, error) {
	if err := validate.Struct(cfg); err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	order, err := parseOrder(cfg.OrderBy)
	if err != nil {
		return Params{}, err
	}

	return Params{
		Range:       cfg.SampleRate / 2,
		MaxPeaks:    cfg.MaxPeaks,
		MinPosition: cfg.MinFrequency,
		MaxPosition: cfg.MaxFrequency,
		Threshold:   cfg.MagnitudeThreshold,
		OrderBy:     order,
	}, nil
}

func parseOrder(orderBy string) (Order, error) {
	switch cases.Fold().String(orderBy) {
	case "magnitude":
		return OrderAmplitude, nil
	case "frequency":
		return OrderPosition, nil
	default:
		return "", fmt.Errorf("%w: unsupported ordering type %q", ErrConfiguration, orderBy)
	}
}

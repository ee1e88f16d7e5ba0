package tempocnn

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// Classes is the length of every per-segment probability distribution.
	Classes = 256

	// BPMOffset is the tempo in BPM represented by distribution index 0.
	BPMOffset = 30
)

var validate = validator.New()

// Config holds the aggregation method and the predictor parameters that are
// passed through unchanged to whoever builds the [Predictor].
type Config struct {
	// AggregationMethod is one of "mean", "median" or "majority", in any case.
	AggregationMethod string `yaml:"aggregation_method" json:"aggregation_method" validate:"required"`

	// GraphFilename is the path of a frozen model graph.
	GraphFilename string `yaml:"graph_filename" json:"graph_filename"`
	// SavedModel is the path of a SavedModel directory. Mutually exclusive
	// with GraphFilename.
	SavedModel string `yaml:"saved_model" json:"saved_model" validate:"excluded_with=GraphFilename"`
	// Input and Output name the model's input and output tensors.
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
	// PatchHopSize is the hop between consecutive patches in frames.
	PatchHopSize int `yaml:"patch_hop_size" json:"patch_hop_size" validate:"gte=0"`
	// LastPatchMode controls the incomplete trailing patch.
	LastPatchMode string `yaml:"last_patch_mode" json:"last_patch_mode" validate:"omitempty,oneof=discard repeat"`
	// BatchSize is the number of patches per inference batch; -1 and 0 mean
	// all patches in one batch.
	BatchSize int `yaml:"batch_size" json:"batch_size" validate:"gte=-1"`
}

// DefaultConfig returns the usual TempoCNN settings with majority voting.
func DefaultConfig() Config {
	return Config{
		AggregationMethod: string(MethodMajority),
		Input:             "input",
		Output:            "output",
		PatchHopSize:      128,
		LastPatchMode:     "discard",
		BatchSize:         64,
	}
}

// Validate checks the struct constraints and the aggregation method.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if _, err := ParseMethod(c.AggregationMethod); err != nil {
		return err
	}
	return nil
}

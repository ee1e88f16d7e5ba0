package core

// ProcessorConfig defines the frame settings shared by spectral analysis.
type ProcessorConfig struct {
	SampleRate float64
	FrameSize  int
	HopSize    int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the usual music-analysis framing:
// 44.1 kHz, 2048-sample frames, 50% overlap.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		FrameSize:  2048,
		HopSize:    1024,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the analysis frame length in samples.
func WithFrameSize(frameSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the distance between frame starts in samples.
func WithHopSize(hopSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Frames returns the number of full frames of cfg that fit in n samples.
func (cfg ProcessorConfig) Frames(n int) int {
	if cfg.FrameSize <= 0 || cfg.HopSize <= 0 || n < cfg.FrameSize {
		return 0
	}
	return 1 + (n-cfg.FrameSize)/cfg.HopSize
}

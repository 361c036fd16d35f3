package mix

import (
	"fmt"
	"math"
)

// mixerConfig collects Mixer settings before validation.
type mixerConfig struct {
	gainL, gainR float32
	level        float32
}

// Option configures a Mixer.
type Option func(*mixerConfig)

// WithGains sets the per-channel gains directly.
func WithGains(gainL, gainR float32) Option {
	return func(cfg *mixerConfig) {
		cfg.gainL, cfg.gainR = gainL, gainR
	}
}

// WithPan derives the channel gains from a pan position and law. It
// replaces any gains set earlier.
func WithPan(pan float32, law PanLaw) Option {
	return func(cfg *mixerConfig) {
		cfg.gainL, cfg.gainR = PanGains(pan, law)
	}
}

// WithLevelDB scales both channel gains by a level in dB.
func WithLevelDB(db float64) Option {
	return func(cfg *mixerConfig) {
		cfg.level = DBToGain(db)
	}
}

// Mixer applies a fixed gain pair to mono blocks. The gains are resolved
// once in NewMixer and never change, so a Mixer can be shared between
// goroutines.
type Mixer struct {
	gainL, gainR float32
}

// NewMixer returns a Mixer with unity gains modified by opts.
func NewMixer(opts ...Option) (*Mixer, error) {
	cfg := mixerConfig{gainL: 1, gainR: 1, level: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mixer{
		gainL: cfg.gainL * cfg.level,
		gainR: cfg.gainR * cfg.level,
	}
	if !isFinite(m.gainL) || !isFinite(m.gainR) {
		return nil, fmt.Errorf("%w: left=%v right=%v", ErrInvalidGain, m.gainL, m.gainR)
	}
	return m, nil
}

// Gains returns the effective left and right gains.
func (m *Mixer) Gains() (gainL, gainR float32) {
	return m.gainL, m.gainR
}

// Process mixes src into dst as interleaved stereo. See MonoToStereo.
func (m *Mixer) Process(dst, src []float32) error {
	return MonoToStereo(dst, src, m.gainL, m.gainR)
}

// ProcessFrames mixes src into dst frames. See MonoToFrames.
func (m *Mixer) ProcessFrames(dst []Frame, src []float32) error {
	return MonoToFrames(dst, src, m.gainL, m.gainR)
}

func isFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

package regression

import "github.com/arloliu/lineq/internal/options"

// FitConfig holds configuration for least-squares fitting.
type FitConfig struct {
	Normalize bool
}

// defaultFitConfig returns the default config (equations are left unnormalized).
func defaultFitConfig() FitConfig {
	return FitConfig{}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithNormalize scales fitted equations to a unit-length normal vector.
func WithNormalize(normalize bool) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Normalize = normalize
	})
}

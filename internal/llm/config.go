// Package llm provides the reasoning-service client used for badge
// threshold evaluation, plus its model configuration.
package llm

// ModelTier selects the capability level used for a reasoning call.
type ModelTier string

const (
	// TierLite is for cheap structured-output calls (per-project batches).
	TierLite ModelTier = "lite"
	// TierStandard is for calls that need cross-project reasoning (aggregate badges).
	TierStandard ModelTier = "standard"
)

// Provider identifies an LLM backend.
type Provider string

// Supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model selection.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model configured for a tier, falling back to the
// standard tier when the requested one is unset.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

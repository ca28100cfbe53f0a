package domain

import "fmt"

const (
	DefaultConsensusThreshold = 0.85
	DefaultMaxDialogueRounds  = 5

	ConfigStatusEnabled  = "enabled"
	ConfigStatusDisabled = "disabled"
)

type InfinityConfig struct {
	Enabled            bool    `json:"enabled" toml:"enabled"`
	Status             string  `json:"status" toml:"-"`
	ConsensusThreshold float64 `json:"consensusThreshold" toml:"consensus_threshold"`
	MaxDialogueRounds  int     `json:"maxDialogueRounds" toml:"max_dialogue_rounds"`
}

// DefaultInfinityConfig is the static record used when the feature is off or
// its configuration cannot be loaded.
func DefaultInfinityConfig() InfinityConfig {
	return InfinityConfig{
		Enabled:            false,
		Status:             ConfigStatusDisabled,
		ConsensusThreshold: DefaultConsensusThreshold,
		MaxDialogueRounds:  DefaultMaxDialogueRounds,
	}
}

func (c InfinityConfig) Validate() error {
	if c.ConsensusThreshold <= 0 || c.ConsensusThreshold > 1 {
		return fmt.Errorf("%w: consensus threshold %.2f out of range (0,1]", ErrInvalidConfig, c.ConsensusThreshold)
	}
	if c.MaxDialogueRounds <= 0 {
		return fmt.Errorf("%w: max dialogue rounds must be positive, got %d", ErrInvalidConfig, c.MaxDialogueRounds)
	}

	return nil
}

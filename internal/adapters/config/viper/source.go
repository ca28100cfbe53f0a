// Package viper loads athena settings from ~/.athena/config.toml and
// ATHENA_* environment variables.
package viper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".athena"
	envPrefix  = "ATHENA"

	InfinityEnabledKey   = "infinity.enabled"
	InfinityThresholdKey = "infinity.consensus_threshold"
	InfinityRoundsKey    = "infinity.max_dialogue_rounds"
	StorePathKey         = "store.path"
	RecordsPathKey       = "records.path"
	SignaturesPathKey    = "signatures.path"
)

// Source reads configuration once at construction; environment overrides are
// resolved on every lookup.
type Source struct {
	cfg *viper.Viper
}

var _ ports.ConfigSource = (*Source)(nil)

// New reads configFile, or ~/.athena/config.toml when configFile is empty.
// A missing default file is not an error; a missing explicit file is.
func New(cfg *viper.Viper, configFile string) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetDefault(InfinityEnabledKey, false)
	cfg.SetDefault(InfinityThresholdKey, domain.DefaultConsensusThreshold)
	cfg.SetDefault(InfinityRoundsKey, domain.DefaultMaxDialogueRounds)
	cfg.SetDefault(StorePathKey, filepath.Join(baseDir, "athena.db"))
	cfg.SetDefault(RecordsPathKey, filepath.Join(baseDir, "partnerships.jsonl"))
	cfg.SetDefault(SignaturesPathKey, filepath.Join(baseDir, "signatures.toml"))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(baseDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Source{cfg: cfg}, nil
}

// LoadInfinityConfig returns the static defaults while the feature is off and
// a validated config when it is on.
func (s *Source) LoadInfinityConfig(ctx context.Context) (domain.InfinityConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.InfinityConfig{}, err
	}
	if !s.cfg.GetBool(InfinityEnabledKey) {
		return domain.DefaultInfinityConfig(), nil
	}

	cfg := domain.InfinityConfig{
		Enabled:            true,
		Status:             domain.ConfigStatusEnabled,
		ConsensusThreshold: s.cfg.GetFloat64(InfinityThresholdKey),
		MaxDialogueRounds:  s.cfg.GetInt(InfinityRoundsKey),
	}
	if err := cfg.Validate(); err != nil {
		return domain.InfinityConfig{}, err
	}

	return cfg, nil
}

func (s *Source) StorePath() (string, error) {
	return s.path(StorePathKey)
}

func (s *Source) RecordsPath() (string, error) {
	return s.path(RecordsPathKey)
}

func (s *Source) SignaturesPath() (string, error) {
	return s.path(SignaturesPathKey)
}

// ConfigFileUsed is empty when no config file was found.
func (s *Source) ConfigFileUsed() string {
	return s.cfg.ConfigFileUsed()
}

func (s *Source) path(key string) (string, error) {
	raw := strings.TrimSpace(s.cfg.GetString(key))
	if raw == "" {
		return "", fmt.Errorf("%s is empty", key)
	}

	if rest, ok := strings.CutPrefix(raw, "~/"); ok {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		raw = filepath.Join(homeDir, rest)
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}

	return filepath.Clean(abs), nil
}

package detect

import (
	"fmt"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
)

const currentSchemaVersion = 1

type catalogSchema struct {
	Version    int               `toml:"version"`
	Signatures []signatureSchema `toml:"signatures"`
}

func (s *catalogSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s catalogSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported signature catalog version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type signatureSchema struct {
	Name           string   `toml:"name"`
	Description    string   `toml:"description,omitempty"`
	Keywords       []string `toml:"keywords"`
	Recommendation string   `toml:"recommendation,omitempty"`
}

func toSchema(sig domain.Signature) signatureSchema {
	return signatureSchema{
		Name:           strings.TrimSpace(sig.Name),
		Description:    sig.Description,
		Keywords:       normalizeKeywords(sig.Keywords),
		Recommendation: sig.Recommendation,
	}
}

func fromSchema(sig signatureSchema) domain.Signature {
	return domain.Signature{
		Name:           sig.Name,
		Description:    sig.Description,
		Keywords:       normalizeKeywords(sig.Keywords),
		Recommendation: sig.Recommendation,
	}
}

func normalizeKeywords(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	return out
}

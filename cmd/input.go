package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/athena-partnership/internal/application"
	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/spf13/cobra"
)

const windowFingerprintEnv = "ATHENA_WINDOW_FINGERPRINT"

// missionFlags are the plan and mission inputs shared by coordinate,
// consensus and detect.
type missionFlags struct {
	planPath   string
	message    string
	complexity int
	session    string
	meshPath   string
	colonels   []string
}

func (f *missionFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.planPath, "plan", "", "Plan JSON file, or - for stdin")
	flags.StringVar(&f.message, "message", "", "The user's message for this request")
	flags.IntVar(&f.complexity, "complexity", 0, "Mission complexity 0-100 (default: the plan's complexityScore)")
	flags.StringVar(&f.session, "session", "", "Session ID (default: derived from the working directory)")
	flags.StringVar(&f.meshPath, "mesh", "", "Mesh intelligence JSON file")
	flags.StringSliceVar(&f.colonels, "colonel", nil, "Role consulted for the review (repeatable)")
	_ = cmd.MarkFlagRequired("plan")
}

func (f *missionFlags) load(cmd *cobra.Command) (domain.Plan, domain.MissionContext, error) {
	var plan domain.Plan
	if err := decodeJSONInput(cmd, f.planPath, &plan); err != nil {
		return domain.Plan{}, domain.MissionContext{}, fmt.Errorf("read plan: %w", err)
	}

	mission := domain.MissionContext{
		SessionID:       f.session,
		UserMessage:     f.message,
		ComplexityScore: plan.ComplexityScore,
		Colonels:        f.colonels,
	}
	if cmd.Flags().Changed("complexity") {
		mission.ComplexityScore = f.complexity
	}

	if mission.SessionID == "" {
		workspace, err := os.Getwd()
		if err != nil {
			return domain.Plan{}, domain.MissionContext{}, fmt.Errorf("resolve workspace: %w", err)
		}
		fingerprint := strings.TrimSpace(os.Getenv(windowFingerprintEnv))
		if fingerprint == "" {
			fingerprint = application.DefaultWindowFingerprint
		}
		mission.SessionID = application.ResolveSessionID(workspace, fingerprint)
	}

	if f.meshPath != "" {
		var mesh domain.MeshIntelligence
		if err := decodeJSONInput(cmd, f.meshPath, &mesh); err != nil {
			return domain.Plan{}, domain.MissionContext{}, fmt.Errorf("read mesh intelligence: %w", err)
		}
		mission.Mesh = &mesh
	}

	return plan, mission, nil
}

func decodeJSONInput(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

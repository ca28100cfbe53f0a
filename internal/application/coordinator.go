package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// infinityComplexityGate is exclusive: a complexity of exactly 70 stays in standard mode.
	infinityComplexityGate = 70

	defaultPersistTimeout = 5 * time.Second
)

// Deps lists the coordinator's collaborators. Dialogue, Strategic and Creative
// are required; everything else is optional and treated as a disabled feature
// when nil.
type Deps struct {
	Dialogue  ports.DialogueEngine
	Strategic ports.StrategicEngine
	Creative  ports.CreativeEngine

	Enforcer ports.StandardsEnforcer
	Memory   ports.MemoryRetriever
	Sink     ports.PartnershipSink
	Config   ports.ConfigSource
	Scorer   ports.ConsensusScorer

	Signatures    ports.SignatureDetector
	Iterations    ports.IterationCounter
	Precedents    ports.PrecedentMatcher
	Interventions ports.InterventionDetector
	Checkpoint    ports.HaltCheckpoint

	Clock          ports.Clock
	Logger         *zap.Logger
	PersistTimeout time.Duration
}

// Coordinator runs a plan through the EPSILON/ATHENA partnership review.
// It is safe for concurrent use; the only state shared between calls is the
// infinity config, which is loaded once and never refreshed.
type Coordinator struct {
	dialogue  ports.DialogueEngine
	strategic ports.StrategicEngine
	creative  ports.CreativeEngine

	enforcer ports.StandardsEnforcer
	memory   ports.MemoryRetriever
	sink     ports.PartnershipSink
	config   ports.ConfigSource
	scorer   ports.ConsensusScorer

	signatures    ports.SignatureDetector
	iterations    ports.IterationCounter
	precedents    ports.PrecedentMatcher
	interventions ports.InterventionDetector
	checkpoint    ports.HaltCheckpoint

	clock          ports.Clock
	log            *zap.Logger
	persistTimeout time.Duration
	telemetry      telemetry

	configOnce sync.Once
	infinity   domain.InfinityConfig
}

func NewCoordinator(deps Deps) (*Coordinator, error) {
	var missing []error
	if deps.Dialogue == nil {
		missing = append(missing, fmt.Errorf("%w: dialogue engine", domain.ErrMissingCollaborator))
	}
	if deps.Strategic == nil {
		missing = append(missing, fmt.Errorf("%w: strategic engine", domain.ErrMissingCollaborator))
	}
	if deps.Creative == nil {
		missing = append(missing, fmt.Errorf("%w: creative engine", domain.ErrMissingCollaborator))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("initialize coordinator: %w", errors.Join(missing...))
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	scorer := deps.Scorer
	if scorer == nil {
		scorer = NewConsensusScorer(deps.Memory, nil, logger)
	}
	persistTimeout := deps.PersistTimeout
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}

	return &Coordinator{
		dialogue:       deps.Dialogue,
		strategic:      deps.Strategic,
		creative:       deps.Creative,
		enforcer:       deps.Enforcer,
		memory:         deps.Memory,
		sink:           deps.Sink,
		config:         deps.Config,
		scorer:         scorer,
		signatures:     deps.Signatures,
		iterations:     deps.Iterations,
		precedents:     deps.Precedents,
		interventions:  deps.Interventions,
		checkpoint:     deps.Checkpoint,
		clock:          clock,
		log:            logger.Named("coordinator"),
		persistTimeout: persistTimeout,
		telemetry:      newTelemetry(),
	}, nil
}

// InfinityConfig returns the cached config, loading it on first use. Load
// failures and invalid values fall back to the static defaults.
func (c *Coordinator) InfinityConfig(ctx context.Context) domain.InfinityConfig {
	c.configOnce.Do(func() {
		c.infinity = c.loadInfinityConfig(ctx)
	})

	return c.infinity
}

func (c *Coordinator) loadInfinityConfig(ctx context.Context) domain.InfinityConfig {
	if c.config == nil {
		return domain.DefaultInfinityConfig()
	}

	cfg, err := guard(func() (domain.InfinityConfig, error) {
		return c.config.LoadInfinityConfig(ctx)
	})
	if err != nil {
		c.log.Warn("load infinity config failed, using defaults", zap.String("phase", "config"), zap.Error(err))
		return domain.DefaultInfinityConfig()
	}
	if !cfg.Enabled {
		return domain.DefaultInfinityConfig()
	}
	if err := cfg.Validate(); err != nil {
		c.log.Warn("invalid infinity config, using defaults", zap.String("phase", "config"), zap.Error(err))
		return domain.DefaultInfinityConfig()
	}
	if cfg.Status == "" {
		cfg.Status = domain.ConfigStatusEnabled
	}

	return cfg
}

// Coordinate runs error detection and then either standard or infinity mode.
// It never panics and never returns an error: failures are reported through
// Outcome.Error. The caller's plan is never modified.
func (c *Coordinator) Coordinate(ctx context.Context, mesh *domain.MeshIntelligence, plan domain.Plan, mission domain.MissionContext) (outcome domain.Outcome) {
	ctx, span := c.telemetry.tracer.Start(ctx, "partnership.coordinate",
		trace.WithAttributes(attribute.String("session.id", mission.SessionID)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			outcome = c.failure(ctx, span, fmt.Errorf("coordinate partnership: recovered panic: %v", r))
		}
	}()

	if err := plan.Validate(); err != nil {
		return c.failure(ctx, span, err)
	}

	if mesh == nil {
		mesh = mission.Mesh
	}
	mission.Mesh = mesh

	working := plan.Clone()
	proposal := buildProposal(working, mission)

	detection := c.detect(ctx, proposal)
	if detection.Decision.ShouldHalt {
		return c.halt(ctx, span, mission, detection)
	}

	cfg := c.InfinityConfig(ctx)
	mode := selectMode(cfg, mission)
	span.SetAttributes(attribute.String("partnership.mode", string(mode)))

	var (
		record domain.PartnershipRecord
		err    error
	)
	switch mode {
	case domain.ModeInfinity:
		record, err = c.runInfinity(ctx, working, mission, proposal.Keywords, cfg)
	default:
		record, err = c.runStandard(ctx, working, mission)
	}
	if err != nil {
		return c.failure(ctx, span, err)
	}

	record.ID = newRecordID()
	record.Timestamp = c.clock.Now()
	record.SessionID = mission.SessionID
	record.Keywords = proposal.Keywords

	c.persist(ctx, record)
	c.telemetry.partnerships.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", string(mode)),
		attribute.String("outcome", "success"),
	))
	c.log.Info("partnership completed",
		zap.String("session_id", record.SessionID),
		zap.String("mode", string(record.Mode)),
		zap.Float64("initial_confidence", record.InitialConfidence),
		zap.Float64("final_confidence", record.FinalConfidence),
	)

	return domain.Outcome{Success: true, Record: &record}
}

func selectMode(cfg domain.InfinityConfig, mission domain.MissionContext) domain.Mode {
	if cfg.Enabled && mission.ComplexityScore > infinityComplexityGate {
		return domain.ModeInfinity
	}

	return domain.ModeStandard
}

func buildProposal(plan domain.Plan, mission domain.MissionContext) domain.Proposal {
	return domain.Proposal{
		SessionID:   mission.SessionID,
		Description: plan.Task,
		UserMessage: mission.UserMessage,
		Keywords:    keywords.Extract(plan.Task, mission.UserMessage, mission.Mesh),
		Approach:    plan.Approach,
	}
}

func (c *Coordinator) halt(ctx context.Context, span trace.Span, mission domain.MissionContext, detection domain.ErrorDetectionResult) domain.Outcome {
	decision := detection.Decision
	span.SetAttributes(
		attribute.Bool("partnership.halted", true),
		attribute.String("halt.severity", string(decision.Severity)),
	)
	c.telemetry.halts.Add(ctx, 1, metric.WithAttributes(attribute.String("severity", string(decision.Severity))))
	c.log.Warn("partnership halted by error detection",
		zap.String("session_id", mission.SessionID),
		zap.String("severity", string(decision.Severity)),
		zap.Strings("reasons", decision.Reasons),
	)

	return domain.Outcome{
		Success: true,
		Halted:  true,
		Halt: &domain.HaltResult{
			SessionID:       mission.SessionID,
			Timestamp:       c.clock.Now(),
			Severity:        decision.Severity,
			Reasons:         decision.Reasons,
			Recommendations: decision.Recommendations,
			Precedents:      decision.Precedents,
			Detection:       detection,
		},
	}
}

func (c *Coordinator) failure(ctx context.Context, span trace.Span, err error) domain.Outcome {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.telemetry.partnerships.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "failure")))
	c.log.Error("partnership coordination failed", zap.Error(err))

	return domain.Outcome{Success: false, Error: err.Error()}
}

// persist hands the record to the sink. It runs detached from the caller's
// cancellation so partial records still land, bounded by persistTimeout.
func (c *Coordinator) persist(ctx context.Context, record domain.PartnershipRecord) {
	if c.sink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.persistTimeout)
	defer cancel()

	_, err := guard(func() (struct{}, error) {
		return struct{}{}, c.sink.LogPartnership(ctx, record)
	})
	if err != nil {
		c.log.Warn("persist partnership record failed",
			zap.String("phase", "persist"),
			zap.String("record_id", record.ID),
			zap.Error(err),
		)
	}
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// guard converts a panic inside a collaborator call into an error.
func guard[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()

	return fn()
}

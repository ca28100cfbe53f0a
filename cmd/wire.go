package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/athena-partnership/internal/adapters/config/viper"
	"github.com/bnema/athena-partnership/internal/adapters/detect"
	"github.com/bnema/athena-partnership/internal/adapters/engines/heuristic"
	"github.com/bnema/athena-partnership/internal/adapters/memory/history"
	recordrender "github.com/bnema/athena-partnership/internal/adapters/render/record"
	chainsink "github.com/bnema/athena-partnership/internal/adapters/sink/chain"
	filesink "github.com/bnema/athena-partnership/internal/adapters/sink/file"
	"github.com/bnema/athena-partnership/internal/adapters/store/sqlite"
	"github.com/bnema/athena-partnership/internal/application"
	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/telemetry"
	"github.com/spf13/cobra"
	spf13viper "github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	opts      globalOptions
	logger    *zap.Logger
	telemetry *telemetry.Providers
	cancel    context.CancelFunc
	stopOnce  sync.Once

	config      *viper.Source
	store       *sqlite.Store
	records     chainsink.Backend
	catalog     *detect.Catalog
	coordinator *application.Coordinator

	renderOutcome func(domain.Outcome) (string, error)
	renderHistory func([]domain.HistoryEntry) (string, error)
}

// runE stops the app when fn fails, since cobra skips PersistentPostRun then.
func (a *app) runE(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			a.stop()
		}
		return err
	}
}

func (a *app) loadConfig() (*viper.Source, error) {
	if a.config != nil {
		return a.config, nil
	}

	source, err := viper.New(spf13viper.New(), a.opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}
	a.config = source

	return source, nil
}

// openRecords returns the SQLite store backed by a JSONL fallback. When the
// database cannot be opened the JSONL file serves alone.
func (a *app) openRecords(ctx context.Context) (chainsink.Backend, error) {
	if a.records != nil {
		return a.records, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	recordsPath, err := cfg.RecordsPath()
	if err != nil {
		return nil, fmt.Errorf("wire record file: %w", err)
	}
	fallback := filesink.NewSink(recordsPath)

	storePath, err := cfg.StorePath()
	if err != nil {
		return nil, fmt.Errorf("wire record store: %w", err)
	}
	store, err := sqlite.Open(ctx, storePath, a.logger)
	if err != nil {
		a.logger.Warn("sqlite store unavailable, using record file only",
			zap.String("phase", "wire"),
			zap.String("path", storePath),
			zap.Error(err),
		)
		a.records = fallback
		return a.records, nil
	}
	a.store = store

	records, err := chainsink.NewSinkChecked(store, fallback)
	if err != nil {
		return nil, fmt.Errorf("wire record sink: %w", err)
	}
	a.records = records

	return records, nil
}

func (a *app) openCatalog() (*detect.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	path, err := cfg.SignaturesPath()
	if err != nil {
		return nil, fmt.Errorf("wire signature catalog: %w", err)
	}
	catalog, err := detect.NewCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("wire signature catalog: %w", err)
	}
	a.catalog = catalog

	return catalog, nil
}

func (a *app) wireCoordinator(ctx context.Context) (*application.Coordinator, error) {
	if a.coordinator != nil {
		return a.coordinator, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	records, err := a.openRecords(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := a.openCatalog()
	if err != nil {
		return nil, err
	}

	memory := history.NewRetriever(records, nil)
	coordinator, err := application.NewCoordinator(application.Deps{
		Dialogue:      heuristic.DialogueEngine{},
		Strategic:     heuristic.StrategicEngine{},
		Creative:      heuristic.CreativeEngine{},
		Memory:        memory,
		Sink:          records,
		Config:        cfg,
		Scorer:        application.NewConsensusScorer(memory, application.StaticProfileSignals{}, a.logger),
		Signatures:    detect.NewSignatureDetector(catalog),
		Iterations:    detect.NewIterationCounter(records),
		Precedents:    detect.NewPrecedentMatcher(records),
		Interventions: detect.NewInterventionDetector(),
		Checkpoint:    detect.NewCheckpoint(catalog, a.logger),
		Logger:        a.logger,
	})
	if err != nil {
		return nil, err
	}
	a.coordinator = coordinator

	return coordinator, nil
}

func (a *app) outcomeRenderer() func(domain.Outcome) (string, error) {
	if a.renderOutcome != nil {
		return a.renderOutcome
	}
	return recordrender.Render
}

func (a *app) historyRenderer() func([]domain.HistoryEntry) (string, error) {
	if a.renderHistory != nil {
		return a.renderHistory
	}
	return recordrender.RenderHistory
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil && a.logger != nil {
			a.logger.Warn("close record store", zap.Error(err))
		}
		a.store = nil
	}
	a.records = nil
	a.coordinator = nil
}

package detect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/athena-partnership/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	catalogFileMode = 0o600
	catalogDirMode  = 0o700
	tempFilePattern = ".signatures-*.toml.tmp"
)

// DefaultSignatures is the built-in catalog used until a catalog file exists.
var DefaultSignatures = []domain.Signature{
	{
		Name:           "rewrite-from-scratch",
		Description:    "Large rewrite proposed while the existing behaviour is still unverified",
		Keywords:       []string{"rewrite", "scratch", "replace", "entire"},
		Recommendation: "Characterise current behaviour with tests before replacing it",
	},
	{
		Name:           "retry-loop-without-diagnosis",
		Description:    "The same fix is retried without understanding the failure",
		Keywords:       []string{"retry", "still", "failing", "broken", "attempt"},
		Recommendation: "Stop and reproduce the failure in isolation before another attempt",
	},
	{
		Name:           "schema-migration-without-rollback",
		Description:    "Data migration planned with no rollback path",
		Keywords:       []string{"migration", "schema", "database", "column", "production"},
		Recommendation: "Write and rehearse the down migration first",
	},
	{
		Name:           "dependency-upgrade-cascade",
		Description:    "Upgrading one dependency forces a chain of unrelated upgrades",
		Keywords:       []string{"upgrade", "dependency", "version", "conflict", "lockfile"},
		Recommendation: "Pin the conflicting dependency and upgrade one module at a time",
	},
}

var errEmptySignatureName = errors.New("signature name is empty")

// Catalog stores known failure signatures in a TOML file.
type Catalog struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("signature catalog path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve signature catalog path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Catalog{path: absPath, mu: lockForPath(absPath)}, nil
}

func (c *Catalog) Path() string {
	return c.path
}

// List returns the stored signatures, or DefaultSignatures when no catalog
// file has been written yet.
func (c *Catalog) List(ctx context.Context) ([]domain.Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	file, found, err := c.readSchema()
	if err != nil {
		return nil, err
	}
	if !found {
		out := make([]domain.Signature, 0, len(DefaultSignatures))
		for _, sig := range DefaultSignatures {
			out = append(out, fromSchema(toSchema(sig)))
		}
		return out, nil
	}

	signatures := make([]domain.Signature, 0, len(file.Signatures))
	for _, entry := range file.Signatures {
		signatures = append(signatures, fromSchema(entry))
	}

	return signatures, nil
}

// Save inserts or replaces a signature by name. The first write seeds the
// file with DefaultSignatures.
func (c *Catalog) Save(ctx context.Context, sig domain.Signature) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := toSchema(sig)
	if encoded.Name == "" {
		return errEmptySignatureName
	}
	if len(encoded.Keywords) == 0 {
		return fmt.Errorf("signature %q has no keywords", encoded.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	file, found, err := c.readSchema()
	if err != nil {
		return err
	}
	if !found {
		for _, def := range DefaultSignatures {
			file.Signatures = append(file.Signatures, toSchema(def))
		}
	}
	file.applyDefaults()

	updated := false
	for i := range file.Signatures {
		if file.Signatures[i].Name == encoded.Name {
			file.Signatures[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Signatures = append(file.Signatures, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return c.writeSchema(file)
}

func (c *Catalog) readSchema() (catalogSchema, bool, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return catalogSchema{}, false, nil
		}
		return catalogSchema{}, false, fmt.Errorf("read signature catalog: %w", err)
	}

	var file catalogSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return catalogSchema{}, false, fmt.Errorf("decode signature catalog: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return catalogSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (c *Catalog) writeSchema(file catalogSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(c.path), catalogDirMode); err != nil {
		return fmt.Errorf("create signature catalog directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode signature catalog: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(c.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp signature catalog: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp signature catalog: %w", err)
	}
	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp signature catalog: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp signature catalog: %w", err)
	}

	if err := os.Rename(tempName, c.path); err != nil {
		return fmt.Errorf("replace signature catalog: %w", err)
	}
	cleanup = false

	if err := os.Chmod(c.path, catalogFileMode); err != nil {
		return fmt.Errorf("chmod signature catalog: %w", err)
	}

	return nil
}

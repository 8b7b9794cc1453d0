package submissions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

const (
	PropdeskDir     = ".propdesk"
	SubmissionsFile = "submissions.json"
)

// storeDocument is the persisted layout: the entire collection under a
// single key, written on every mutation and read once at startup.
type storeDocument struct {
	Submissions []*models.Submission `json:"submissions"`
}

// FileRepository stores the submission collection in a json file on the
// system. Records are held most-recent-first; every mutation writes the
// whole collection back through to disk.
type FileRepository struct {
	rootDir string
	log     *slog.Logger

	mu      sync.RWMutex
	ordered []*models.Submission
	byID    map[string]*models.Submission
}

// NewFileRepository creates a submission repository rooted at the given
// project directory, loading any previously persisted collection.
func NewFileRepository(rootDir string, log *slog.Logger) (*FileRepository, error) {
	dataDir := filepath.Join(rootDir, PropdeskDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", PropdeskDir, err)
	}

	r := &FileRepository{
		rootDir: rootDir,
		log:     log,
		byID:    make(map[string]*models.Submission),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	return r, nil
}

// load reads the persisted collection. A payload that cannot be parsed
// resets the store to an empty collection instead of failing startup;
// partially-shaped records are repaired by normalization.
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(r.rootDir, PropdeskDir, SubmissionsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.log.Warn("submissions file is unparseable, resetting to empty collection",
			"path", path, "error", err)
		return nil
	}

	for _, s := range doc.Submissions {
		s = models.Normalize(s)
		if _, dup := r.byID[s.ID]; dup {
			continue
		}
		r.ordered = append(r.ordered, s)
		r.byID[s.ID] = s
	}

	return nil
}

// save writes the full collection back to disk. Callers must hold the
// write lock.
func (r *FileRepository) save() error {
	path := filepath.Join(r.rootDir, PropdeskDir, SubmissionsFile)

	doc := storeDocument{Submissions: r.ordered}
	if doc.Submissions == nil {
		doc.Submissions = []*models.Submission{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}

// Get retrieves a submission by ID
func (r *FileRepository) Get(ctx context.Context, id string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.byID[id]
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Clone to avoid mutations
	clone := *s
	return &clone, nil
}

// List returns submissions matching the filter, most-recent-first.
func (r *FileRepository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Submission
	for _, s := range r.ordered {
		if !filter.Matches(s) {
			continue
		}
		clone := *s
		result = append(result, &clone)
	}

	return result, nil
}

// Count returns the total number of stored submissions.
func (r *FileRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ordered)
}

// Insert adds a submission at the head of the collection and persists.
func (r *FileRepository) Insert(ctx context.Context, s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return fmt.Errorf("submission %s: %w", s.ID, domain.ErrAlreadyExists)
	}

	clone := *s
	r.ordered = append([]*models.Submission{&clone}, r.ordered...)
	r.byID[clone.ID] = &clone

	return r.save()
}

// Update replaces a stored submission in place and persists. The
// record keeps its position in the collection.
func (r *FileRepository) Update(ctx context.Context, s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.byID[s.ID]
	if !exists {
		return domain.ErrNotFound
	}

	*existing = *s
	return r.save()
}

// Delete removes a submission if present. Deleting an absent ID is not
// an error; the removed flag makes the no-op explicit for callers.
func (r *FileRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}

	delete(r.byID, id)
	for i, s := range r.ordered {
		if s.ID == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}

	return true, r.save()
}

// Replace swaps oldID for a new record in a single critical section so
// there is no window where both or neither exist. The replacement takes
// the old record's position in the collection.
func (r *FileRepository) Replace(ctx context.Context, oldID string, s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[oldID]; !exists {
		return domain.ErrNotFound
	}
	if _, exists := r.byID[s.ID]; exists {
		return fmt.Errorf("submission %s: %w", s.ID, domain.ErrAlreadyExists)
	}

	clone := *s
	delete(r.byID, oldID)
	r.byID[clone.ID] = &clone
	for i, old := range r.ordered {
		if old.ID == oldID {
			r.ordered[i] = &clone
			break
		}
	}

	return r.save()
}

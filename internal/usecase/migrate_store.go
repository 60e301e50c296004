package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/runoshun/nearby/internal/domain"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites a destination that already holds a different list.
	Force bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Total    int  // Tasks in the source store
	Migrated int  // Tasks written to the destination
	Skipped  bool // Destination already held the same list
}

// MigrateStore copies the task list from the active store to another backend.
type MigrateStore struct {
	source TaskStore
	dest   TaskStore
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest TaskStore) *MigrateStore {
	return &MigrateStore{source: source, dest: dest}
}

// Execute copies the whole collection in one write.
// An identical destination is skipped; a different, non-empty one fails
// with ErrMigrationConflict unless Force is set.
func (uc *MigrateStore) Execute(_ context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.source == nil || uc.dest == nil {
		return nil, errors.New("source or destination store is nil")
	}

	tasks := uc.source.Load()
	out := &MigrateStoreOutput{Total: len(tasks)}

	existing := uc.dest.Load()
	if len(existing) > 0 {
		if slices.Equal(existing, tasks) {
			out.Skipped = true
			return out, nil
		}
		if !in.Force {
			return nil, fmt.Errorf("%w (%d tasks, use --force to overwrite)", domain.ErrMigrationConflict, len(existing))
		}
	}

	if err := uc.dest.ReplaceAll(tasks); err != nil {
		return nil, fmt.Errorf("write destination store: %w", err)
	}
	out.Migrated = len(tasks)
	return out, nil
}

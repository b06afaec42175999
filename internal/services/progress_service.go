package services

import (
	"context"
	"time"

	"github.com/nlitvin/pytrail/internal/catalog"
	"github.com/nlitvin/pytrail/internal/models"
)

type ProgressStore interface {
	UpsertProgress(ctx context.Context, rec *models.ProgressRecord) error
	ListProgressByUser(ctx context.Context, userID int64) ([]*models.ProgressRecord, error)
}

// ProgressService upserts and lists per-user module progress. Scores and
// times are stored as the client supplies them; there is no server-side
// validation of ranges.
type ProgressService struct {
	store   ProgressStore
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewProgressService(store ProgressStore, cat *catalog.Catalog) *ProgressService {
	return &ProgressService{
		store:   store,
		catalog: cat,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Save replaces any prior record for (userID, moduleID) with the given
// values. Last write wins.
func (s *ProgressService) Save(ctx context.Context, userID int64, moduleID int, completed bool, score, timeSpent int) error {
	if moduleID <= 0 {
		return NewInvalidError("moduleId is required")
	}
	rec := &models.ProgressRecord{
		UserID:       userID,
		ModuleID:     moduleID,
		Completed:    completed,
		Score:        score,
		TimeSpentSec: timeSpent,
		LastAccessed: s.now(),
	}
	return s.store.UpsertProgress(ctx, rec)
}

// List returns the caller's progress rows joined with module titles from the
// catalog. Rows for ids the catalog no longer carries keep an empty title.
func (s *ProgressService) List(ctx context.Context, userID int64) ([]models.ProgressView, error) {
	recs, err := s.store.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProgressView, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.ProgressView{
			ModuleID:     r.ModuleID,
			ModuleTitle:  s.catalog.Title(r.ModuleID),
			Completed:    r.Completed,
			Score:        r.Score,
			TimeSpentSec: r.TimeSpentSec,
			LastAccessed: r.LastAccessed,
		})
	}
	return out, nil
}

package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-board/internal/app/fanout"
	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// DefaultReindexWorkers bounds Reindex concurrency when none is configured.
const DefaultReindexWorkers = 4

// Compile-time check that ExpirationService implements ports.ExpirationService.
var _ ports.ExpirationService = (*ExpirationService)(nil)

// ExpirationService implements ports.ExpirationService.
type ExpirationService struct {
	todos     ports.TodoRepository
	index     ports.ExpirationRepository
	projector ports.ExpirationProjector
	workers   int
	logger    *slog.Logger
}

// NewExpirationService creates an ExpirationService. workers bounds the
// number of concurrent projector syncs during Reindex.
func NewExpirationService(
	todos ports.TodoRepository,
	index ports.ExpirationRepository,
	projector ports.ExpirationProjector,
	workers int,
	logger *slog.Logger,
) *ExpirationService {
	if workers < 1 {
		workers = DefaultReindexWorkers
	}
	logger = logging.OrDiscard(logger)
	return &ExpirationService{
		todos:     todos,
		index:     index,
		projector: projector,
		workers:   workers,
		logger:    logger,
	}
}

// ListLive derives the report from the todos collection.
func (s *ExpirationService) ListLive(ctx context.Context) ([]expiration.Entry, error) {
	todos, err := s.todos.List(ctx, todo.Filter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos for expirations",
			slog.String("operation", "ListLive"),
			slog.Any("error", err),
		)
		return nil, err
	}

	entries := expiration.Live(todos)
	if entries == nil {
		entries = []expiration.Entry{}
	}
	return entries, nil
}

// ListSynced returns the persisted index.
func (s *ExpirationService) ListSynced(ctx context.Context) ([]expiration.Record, error) {
	records, err := s.index.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list course expirations",
			slog.String("operation", "ListSynced"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if records == nil {
		records = []expiration.Record{}
	}
	return records, nil
}

// ItemDates returns the checklist dates of one todo, or an empty list when
// it does not exist.
func (s *ExpirationService) ItemDates(ctx context.Context, todoID string) ([]expiration.ItemDate, error) {
	t, err := s.todos.Get(ctx, todoID)
	if errors.Is(err, domain.ErrNotFound) {
		return []expiration.ItemDate{}, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for expiration dates",
			slog.String("operation", "ItemDates"),
			slog.String("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return expiration.ItemDates(*t), nil
}

// Reindex re-syncs every todo and removes index entries whose todo no
// longer exists. Individual failures are counted, not returned.
func (s *ExpirationService) Reindex(ctx context.Context) (*ports.ReindexResult, error) {
	s.logger.InfoContext(ctx, "reindexing course expirations")

	todos, err := s.todos.List(ctx, todo.Filter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos for reindex",
			slog.String("operation", "Reindex"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, s.workers, todos, func(ctx context.Context, t todo.Todo) (string, error) {
		return t.ID, s.projector.Sync(ctx, t.ID, t.Title, t.SubCategory, t.Checklist)
	})

	res := &ports.ReindexResult{Total: len(todos)}
	for i, r := range results {
		if r.Err != nil {
			res.Failed++
			s.logger.WarnContext(ctx, "reindex failed for todo",
				slog.String("todo_id", todos[i].ID),
				slog.Any("error", r.Err),
			)
			continue
		}
		res.Synced++
	}

	if err := s.removeOrphans(ctx, todos); err != nil {
		s.logger.WarnContext(ctx, "failed to remove orphaned course expirations", slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "reindex complete",
		slog.Int("total", res.Total),
		slog.Int("synced", res.Synced),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *ExpirationService) removeOrphans(ctx context.Context, todos []todo.Todo) error {
	records, err := s.index.List(ctx)
	if err != nil {
		return err
	}

	live := make(map[string]struct{}, len(todos))
	for i := range todos {
		live[todos[i].ID] = struct{}{}
	}

	var errs []error
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := live[r.TodoID]; ok {
			continue
		}
		if _, ok := seen[r.TodoID]; ok {
			continue
		}
		seen[r.TodoID] = struct{}{}
		if err := s.projector.DeleteAll(ctx, r.TodoID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

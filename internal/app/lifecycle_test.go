package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/adapters/docstore"
	"github.com/jsamuelsen11/todo-board/internal/adapters/repository"
	"github.com/jsamuelsen11/todo-board/internal/app"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

// TestCourseExpirationLifecycle drives the services against a real store:
// a dated checked item in a Courses todo is indexed, and the entry goes
// away when the todo leaves Courses or is deleted.
func TestCourseExpirationLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := docstore.Open(ctx, docstore.Options{
		Path: docstore.MemoryPath,
		Now:  func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.DiscardHandler)
	todos := repository.NewTodoRepository(store)
	index := repository.NewExpirationRepository(store)
	projector := app.NewProjector(index, nil, logger)
	todoSvc := app.NewTodoService(todos, projector, logger)
	expSvc := app.NewExpirationService(todos, index, projector, 2, logger)

	str := func(s string) *string { return &s }
	checklist := []todo.ChecklistItem{
		{ID: "aws", Text: "AWS", Checked: true, ExpirationDate: str("2026-09-01")},
		{ID: "gcp", Text: "GCP", Checked: false},
	}
	created, err := todoSvc.CreateTodo(ctx, todo.Patch{
		Title:       str("Renew certs"),
		Category:    str("Work"),
		SubCategory: str("Courses"),
		Checklist:   &checklist,
	})
	require.NoError(t, err)

	synced, err := expSvc.ListSynced(ctx)
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, created.ID+"_aws", synced[0].ID)
	assert.Equal(t, "Renew certs", synced[0].TodoTitle)
	assert.Equal(t, "2026-09-01", synced[0].ExpirationDate)

	_, err = todoSvc.UpdateTodo(ctx, created.ID, todo.Patch{SubCategory: str("Work")})
	require.NoError(t, err)

	synced, err = expSvc.ListSynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, synced, "leaving Courses removes the entry")

	live, err := expSvc.ListLive(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)

	stored, err := todoSvc.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Checklist[0].ExpirationDate, "dates are cleared outside Courses")

	back := []todo.ChecklistItem{{ID: "aws", Text: "AWS", Checked: true, ExpirationDate: str("2026-10-01")}}
	_, err = todoSvc.UpdateTodo(ctx, created.ID, todo.Patch{SubCategory: str("Courses"), Checklist: &back})
	require.NoError(t, err)
	synced, err = expSvc.ListSynced(ctx)
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, "2026-10-01", synced[0].ExpirationDate)

	require.NoError(t, todoSvc.DeleteTodo(ctx, created.ID))

	synced, err = expSvc.ListSynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, synced, "deleting the todo removes its entries")
}

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-board/mocks"
)

func TestProjector_Sync(t *testing.T) {
	t.Parallel()

	checklist := []todo.ChecklistItem{
		{ID: "i1", Text: "AWS", Checked: true, ExpirationDate: strPtr("2026-09-01")},
	}

	t.Run("writes additions and removals in one batch", func(t *testing.T) {
		t.Parallel()
		index := mocks.NewMockExpirationRepository(t)
		p := NewProjector(index, nil, discardLogger())

		index.EXPECT().ListByTodo(mock.Anything, "t1").Return([]expiration.Record{
			{ID: "t1_gone", Entry: expiration.Entry{TodoID: "t1", ItemID: "gone"}},
		}, nil)
		index.EXPECT().Apply(mock.Anything, mock.MatchedBy(func(plan expiration.Plan) bool {
			return len(plan.Upserts) == 1 && plan.Upserts[0].New &&
				plan.Upserts[0].DocID() == "t1_i1" &&
				len(plan.Deletes) == 1 && plan.Deletes[0] == "t1_gone"
		})).Return(nil)

		if err := p.Sync(context.Background(), "t1", "Certs", "Courses", checklist); err != nil {
			t.Errorf("Sync() error = %v, want nil", err)
		}
	})

	t.Run("skips the batch when nothing changed", func(t *testing.T) {
		t.Parallel()
		index := mocks.NewMockExpirationRepository(t)
		p := NewProjector(index, nil, nil)

		stored := expiration.Desired("t1", "Certs", "Courses", checklist)[0]
		index.EXPECT().ListByTodo(mock.Anything, "t1").Return([]expiration.Record{
			{ID: "t1_i1", Entry: stored},
		}, nil)

		if err := p.Sync(context.Background(), "t1", "Certs", "Courses", checklist); err != nil {
			t.Errorf("Sync() error = %v, want nil", err)
		}
	})

	t.Run("wraps store errors", func(t *testing.T) {
		t.Parallel()
		index := mocks.NewMockExpirationRepository(t)
		p := NewProjector(index, nil, discardLogger())

		cause := errors.New("locked")
		index.EXPECT().ListByTodo(mock.Anything, "t1").Return(nil, cause)

		if err := p.Sync(context.Background(), "t1", "Certs", "Courses", checklist); !errors.Is(err, cause) {
			t.Errorf("Sync() error = %v, want wrapped %v", err, cause)
		}
	})
}

func TestProjector_DeleteAll(t *testing.T) {
	t.Parallel()
	index := mocks.NewMockExpirationRepository(t)
	p := NewProjector(index, nil, discardLogger())

	index.EXPECT().DeleteByTodo(mock.Anything, "t1").Return(nil)

	if err := p.DeleteAll(context.Background(), "t1"); err != nil {
		t.Errorf("DeleteAll() error = %v, want nil", err)
	}
}

func TestProjector_CountsEverySync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "todo-board-test")
	require.NoError(t, err)

	index := mocks.NewMockExpirationRepository(t)
	p := NewProjector(index, metrics.ProjectorSyncTotal, discardLogger())

	checklist := []todo.ChecklistItem{
		{ID: "i1", Text: "AWS", Checked: true, ExpirationDate: strPtr("2026-09-01")},
	}
	stored := expiration.Desired("t1", "Certs", "Courses", checklist)[0]
	index.EXPECT().ListByTodo(mock.Anything, "t1").Return([]expiration.Record{{ID: "t1_i1", Entry: stored}}, nil)
	index.EXPECT().ListByTodo(mock.Anything, "t2").Return(nil, nil)
	index.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil).Once()
	index.EXPECT().ListByTodo(mock.Anything, "t3").Return(nil, errors.New("locked"))

	require.NoError(t, p.Sync(ctx, "t1", "Certs", "Courses", checklist))
	require.NoError(t, p.Sync(ctx, "t2", "Certs", "Courses", checklist))
	require.Error(t, p.Sync(ctx, "t3", "Certs", "Courses", checklist))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "projector.sync.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				got[result.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"noop": 1, "success": 1, "error": 1}, got)
}

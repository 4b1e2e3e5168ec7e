package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-board/internal/platform/health"
	"github.com/jsamuelsen11/todo-board/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

// stuckChecker ignores its context until release is closed.
type stuckChecker struct {
	release chan struct{}
}

func (stuckChecker) Name() string { return "docstore" }

func (s stuckChecker) HealthCheck(context.Context) error {
	<-s.release
	return nil
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errLocked := errors.New("database is locked")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "docstore", nil), checker(t, "todo-board-api", nil)}
			},
			want: map[string]error{"docstore": nil, "todo-board-api": nil},
		},
		{
			name: "one failing",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "docstore", errLocked), checker(t, "todo-board-api", nil)}
			},
			want: map[string]error{"docstore": errLocked, "todo-board-api": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New(time.Second)
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			assert.Equal(t, tt.want, r.CheckAll(context.Background()))
		})
	}
}

func TestCheckAll_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("docstore")

	errClosed := errors.New("store closed")
	r := health.New(time.Second)
	r.Register(first)
	r.Register(checker(t, "docstore", errClosed))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 1)
	assert.ErrorIs(t, results["docstore"], errClosed)
}

func TestCheckAll_TimesOutHungChecker(t *testing.T) {
	t.Parallel()

	stuck := stuckChecker{release: make(chan struct{})}
	t.Cleanup(func() { close(stuck.release) })

	r := health.New(20 * time.Millisecond)
	r.Register(stuck)
	r.Register(checker(t, "todo-board-api", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, results["docstore"], context.DeadlineExceeded)
	assert.NoError(t, results["todo-board-api"])
}

func TestCheckAll_PassesCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("docstore")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled).Maybe()

	r := health.New(time.Second)
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["docstore"], context.Canceled)
}

func TestNew_DefaultTimeout(t *testing.T) {
	t.Parallel()

	stuck := stuckChecker{release: make(chan struct{})}
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(stuck.release)
	}()

	r := health.New(0)
	r.Register(stuck)

	// Released well before DefaultCheckTimeout.
	assert.NoError(t, r.CheckAll(context.Background())["docstore"])
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New(time.Second)

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("docstore").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 1)
}

package appctx_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	appctx "github.com/jsamuelsen11/todo-board/internal/app/context"
)

type tabs struct {
	Active string
	Labels []string
}

func TestRef_Update(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(tabs{Active: "All"})
	before := ref.Get()

	ref.Update(func(s *tabs) { s.Active = "Work" })

	assert.Equal(t, "All", before.Active)
	assert.Equal(t, "Work", ref.Get().Active)
}

func TestRef_UpdateSeesInterleavedWrites(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(tabs{Active: "All"})
	ref.Update(func(s *tabs) { s.Labels = []string{"Work"} })
	ref.Update(func(s *tabs) { s.Active = "Work" })

	ref.Update(func(s *tabs) {
		assert.Equal(t, "Work", s.Active)
		s.Labels = append(s.Labels, "Home")
	})

	assert.Equal(t, []string{"Work", "Home"}, ref.Get().Labels)
}

func TestRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(tabs{})

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			ref.Update(func(s *tabs) { s.Labels = append(s.Labels, "x") })
		})
		wg.Go(func() {
			_ = len(ref.Get().Labels)
		})
	}
	wg.Wait()

	assert.Len(t, ref.Get().Labels, 50)
}

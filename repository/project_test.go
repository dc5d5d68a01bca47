package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/buzkaaclicker/folio/inmem"
	"github.com/buzkaaclicker/folio/mock"
	"github.com/stretchr/testify/assert"
)

func TestProjectsListFallback(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		projects []folio.Project
		err      error
	}{
		{"table missing", nil, fmt.Errorf("select: %w", folio.ErrTableMissing)},
		{"connection refused", nil, errors.New("dial tcp 127.0.0.1:443: connect: connection refused")},
		{"invalid row", nil, &folio.RowError{Table: folio.TableProjects, Err: errors.New("title is required")}},
		{"no rows", []folio.Project{}, nil},
	}
	for _, tc := range cases {
		repo := &Projects{Store: mock.ProjectStore{
			ListFn: func(ctx context.Context) ([]folio.Project, error) {
				return tc.projects, tc.err
			},
		}}
		assert.Equal(folio.FallbackProjects(), repo.List(ctx), tc.name)
	}
}

func TestProjectsFreshEnvironment(t *testing.T) {
	assert := assert.New(t)

	store := inmem.NewProjectStore()
	store.Missing = true
	repo := &Projects{Store: store}

	projects := repo.List(context.Background())
	if !assert.Len(projects, 3) {
		return
	}
	assert.Equal("Personal Blog", projects[0].Title)
	assert.Equal("Weather App", projects[1].Title)
	assert.Equal("E-commerce Dashboard", projects[2].Title)
}

func TestProjectsCreateAndList(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	clock := tickingClock()
	store := inmem.NewProjectStore()
	store.Now = clock
	repo := &Projects{Store: store, Now: clock}

	fields := folio.ProjectFields{
		Title:       "Thumbnail Generator",
		Description: "Batch thumbnails for the channel",
		Link:        "https://example.com/thumbs",
	}
	created, err := repo.Create(ctx, fields)
	if !assert.NoError(err) {
		return
	}
	assert.NotZero(created.Id)

	second, err := repo.Create(ctx, folio.ProjectFields{
		Title: "Editor Presets", Description: "LUT pack", Link: "https://example.com/luts"})
	if !assert.NoError(err) {
		return
	}

	projects := repo.List(ctx)
	if !assert.Len(projects, 2) {
		return
	}
	// newest first
	assert.Equal(second.Id, projects[0].Id)
	assert.Equal(fields.Title, projects[1].Title)
	assert.Equal(fields.Description, projects[1].Description)
	assert.Equal(fields.Link, projects[1].Link)
}

func TestProjectsCreateValidation(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	repo := &Projects{Store: mock.ProjectStore{
		CreateFn: func(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
			t.Fatal("store must not be called with invalid fields")
			return folio.Project{}, nil
		},
	}}

	cases := []struct {
		fields folio.ProjectFields
		field  string
	}{
		{folio.ProjectFields{Description: "d", Link: "https://example.com"}, "title"},
		{folio.ProjectFields{Title: "t", Link: "https://example.com"}, "description"},
		{folio.ProjectFields{Title: "t", Description: "d"}, "link"},
		{folio.ProjectFields{Title: "t", Description: "d", Link: "not a link"}, "link"},
		{folio.ProjectFields{Title: "t", Description: "d", Link: "https://example.com", ImageUrl: "nope"}, "image_url"},
	}
	for _, tc := range cases {
		_, err := repo.Create(ctx, tc.fields)
		var verr *folio.ValidationError
		if assert.True(errors.As(err, &verr), tc.field) {
			assert.Equal(tc.field, verr.Field)
		}
	}
}

func TestProjectsWritesPropagate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	store := inmem.NewProjectStore()
	store.Missing = true
	repo := &Projects{Store: store}

	_, err := repo.Create(ctx, folio.ProjectFields{Title: "t", Description: "d", Link: "https://example.com"})
	assert.True(errors.Is(err, folio.ErrTableMissing))

	_, err = repo.Update(ctx, 1, folio.ProjectPatch{Title: str("x")})
	assert.True(errors.Is(err, folio.ErrTableMissing))

	store.Missing = false
	_, err = repo.Update(ctx, 404, folio.ProjectPatch{Title: str("x")})
	assert.True(errors.Is(err, folio.ErrNotFound))
}

func TestProjectsUpdate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	clock := tickingClock()
	store := inmem.NewProjectStore()
	store.Now = clock
	repo := &Projects{Store: store, Now: clock}

	created, err := repo.Create(ctx, folio.ProjectFields{
		Title: "Old", Description: "d", Link: "https://example.com"})
	if !assert.NoError(err) {
		return
	}

	updated, err := repo.Update(ctx, created.Id, folio.ProjectPatch{Title: str("New")})
	if !assert.NoError(err) {
		return
	}
	assert.Equal("New", updated.Title)
	assert.Equal("d", updated.Description)
	assert.True(updated.UpdatedAt.After(created.UpdatedAt))

	_, err = repo.Update(ctx, created.Id, folio.ProjectPatch{Title: str(" ")})
	var verr *folio.ValidationError
	assert.True(errors.As(err, &verr))

	projects := repo.List(ctx)
	if assert.Len(projects, 1) {
		assert.Equal("New", projects[0].Title)
	}
}

func TestProjectsListReturnsCopies(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	store := inmem.NewProjectStore()
	repo := &Projects{Store: store}
	_, err := repo.Create(ctx, folio.ProjectFields{Title: "t", Description: "d", Link: "https://example.com"})
	if !assert.NoError(err) {
		return
	}

	first := repo.List(ctx)
	first[0].Title = "mutated"
	assert.Equal("t", repo.List(ctx)[0].Title)

	fallback := (&Projects{Store: inmem.NewProjectStore()}).List(ctx)
	fallback[0].Title = "mutated"
	assert.Equal("Personal Blog", folio.FallbackProjects()[0].Title)
}

func TestProjectsListCoalescesConcurrentReads(t *testing.T) {
	assert := assert.New(t)
	const callers = 8

	var calls int32
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	var storeCtx context.Context
	repo := &Projects{Store: mock.ProjectStore{
		ListFn: func(ctx context.Context) ([]folio.Project, error) {
			atomic.AddInt32(&calls, 1)
			storeCtx = ctx
			entered <- struct{}{}
			<-release
			return []folio.Project{
				{Id: 1, Title: "Thumbnail Generator"},
				{Id: 2, Title: "Editor Presets"},
			}, nil
		},
	}}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan []folio.Project)
	go func() { firstDone <- repo.List(firstCtx) }()
	<-entered

	results := make([][]folio.Project, callers)
	var started, finished sync.WaitGroup
	started.Add(callers)
	finished.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer finished.Done()
			started.Done()
			results[i] = repo.List(context.Background())
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)

	// the caller that started the read gives up, the rest keep waiting
	cancelFirst()
	assert.Equal(folio.FallbackProjects(), <-firstDone)
	assert.NoError(storeCtx.Err())

	close(release)
	finished.Wait()

	assert.Equal(int32(1), atomic.LoadInt32(&calls))
	for i, projects := range results {
		if !assert.Len(projects, 2, "caller %d", i) {
			return
		}
		assert.Equal("Thumbnail Generator", projects[0].Title, "caller %d", i)
	}
	results[0][0].Title = "changed"
	assert.Equal("Thumbnail Generator", results[1][0].Title)
}

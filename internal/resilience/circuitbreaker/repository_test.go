package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domain/entity"
)

// flakyRepo fails every call with err until err is cleared.
type flakyRepo struct {
	err   error
	calls int
}

func (f *flakyRepo) List(context.Context) ([]*entity.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []*entity.Article{{ID: 1, Title: "t", Body: "b"}}, nil
}

func (f *flakyRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if id != 1 {
		return nil, nil
	}
	return &entity.Article{ID: 1, Title: "t", Body: "b"}, nil
}

func (f *flakyRepo) Create(_ context.Context, a *entity.Article) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	a.ID = 10
	return nil
}

func (f *flakyRepo) Update(_ context.Context, a *entity.Article) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if a.ID != 1 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (f *flakyRepo) Delete(_ context.Context, id int64) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if id != 1 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func testStoreConfig() Config {
	cfg := StoreConfig()
	cfg.Name = "test-store"
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func TestRepository_PassThrough(t *testing.T) {
	ctx := context.Background()
	inner := &flakyRepo{}
	repo := NewRepository(inner, testStoreConfig())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	missing, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	a := &entity.Article{Title: "t", Body: "b"}
	require.NoError(t, repo.Create(ctx, a))
	assert.Equal(t, int64(10), a.ID)

	require.NoError(t, repo.Update(ctx, &entity.Article{ID: 1, Title: "x", Body: "y"}))
	require.NoError(t, repo.Delete(ctx, 1))
	assert.Equal(t, 6, inner.calls)
}

func TestRepository_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	inner := &flakyRepo{}
	repo := NewRepository(inner, testStoreConfig())

	for i := 0; i < 10; i++ {
		err := repo.Delete(ctx, 99)
		require.ErrorIs(t, err, entity.ErrNotFound)
	}

	assert.Equal(t, gobreaker.StateClosed, repo.Breaker().State())
}

func TestRepository_OpensAndFailsFast(t *testing.T) {
	ctx := context.Background()
	inner := &flakyRepo{err: errors.New("connection refused")}
	repo := NewRepository(inner, testStoreConfig())

	// 5回連続の失敗で開く
	for i := 0; i < 5; i++ {
		_, err := repo.List(ctx)
		require.Error(t, err)
	}
	require.True(t, repo.Breaker().IsOpen())

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	err = repo.Create(ctx, &entity.Article{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	// ストアには到達しない（リトライもしない）
	assert.Equal(t, 5, inner.calls)
}

func TestRepository_RecoversAfterTimeout(t *testing.T) {
	ctx := context.Background()
	inner := &flakyRepo{err: errors.New("connection refused")}
	repo := NewRepository(inner, testStoreConfig())

	for i := 0; i < 5; i++ {
		_, _ = repo.List(ctx)
	}
	require.True(t, repo.Breaker().IsOpen())

	inner.err = nil
	time.Sleep(80 * time.Millisecond)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.False(t, repo.Breaker().IsOpen())
}

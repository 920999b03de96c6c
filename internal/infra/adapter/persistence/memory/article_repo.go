// Package memory implements the article store in process memory.
// It backs the "memory" database driver and the HTTP level tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"article-api/internal/domain/entity"
)

// ArticleRepo keeps articles in a map guarded by a RWMutex.
// Articles are copied on the way in and out, so callers never share state with the store.
type ArticleRepo struct {
	mu     sync.RWMutex
	data   map[int64]entity.Article
	nextID int64
}

func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{data: make(map[int64]entity.Article)}
}

// Ping always succeeds.
func (repo *ArticleRepo) Ping(context.Context) error {
	return nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Article, 0, len(repo.data))
	for _, a := range repo.data {
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	a, ok := repo.data[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	article.ID = repo.nextID
	repo.data[article.ID] = *article
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[article.ID]; !ok {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	repo.data[article.ID] = *article
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[id]; !ok {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	delete(repo.data, id)
	return nil
}

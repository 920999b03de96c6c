package repository

import (
	"context"

	"article-api/internal/domain/entity"
)

// ArticleRepository is the persistence contract for articles.
// Implementations own the stored records; callers only ever see copies.
type ArticleRepository interface {
	// List returns every stored article ordered by ID.
	// An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns (nil, nil) when no article has the given ID.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create persists a new article and assigns article.ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update overwrites title and body. It returns an error wrapping
	// entity.ErrNotFound when the ID does not exist.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article. It returns an error wrapping
	// entity.ErrNotFound when the ID does not exist.
	Delete(ctx context.Context, id int64) error
}

package circuitbreaker

import (
	"context"
	"fmt"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// Repository decorates an article store with a circuit breaker.
// While the breaker is open every call returns gobreaker.ErrOpenState
// without reaching the store.
type Repository struct {
	next repository.ArticleRepository
	cb   *CircuitBreaker
}

var _ repository.ArticleRepository = (*Repository)(nil)

// NewRepository wraps next with a breaker built from cfg.
func NewRepository(next repository.ArticleRepository, cfg Config) *Repository {
	return &Repository{next: next, cb: New(cfg)}
}

// Breaker exposes the underlying breaker, e.g. for health reporting.
func (r *Repository) Breaker() *CircuitBreaker {
	return r.cb
}

// call runs fn through the breaker and restores the concrete result type.
func call[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := res.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("circuit breaker %s: unexpected result %T", cb.Name(), res)
	}
	return out, nil
}

func (r *Repository) List(ctx context.Context) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) {
		return r.next.List(ctx)
	})
}

func (r *Repository) Get(ctx context.Context, id int64) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) {
		return r.next.Get(ctx, id)
	})
}

func (r *Repository) Create(ctx context.Context, article *entity.Article) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.next.Create(ctx, article)
	})
	return err
}

func (r *Repository) Update(ctx context.Context, article *entity.Article) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.next.Update(ctx, article)
	})
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.next.Delete(ctx, id)
	})
	return err
}

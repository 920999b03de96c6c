package article

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/metrics"
	"article-api/internal/observability/tracing"
	"article-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title string `validate:"notblank"`
	Body  string `validate:"notblank"`
}

// Validate returns entity.ValidationErrors listing every invalid field.
func (in CreateInput) Validate() error {
	return validateStruct(in)
}

// UpdateInput represents the input parameters for updating an existing article.
// Title and Body replace the stored values; both are required.
type UpdateInput struct {
	ID    int64
	Title string `validate:"notblank"`
	Body  string `validate:"notblank"`
}

// Validate returns entity.ValidationErrors listing every invalid field.
func (in UpdateInput) Validate() error {
	return validateStruct(in)
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles from the repository.
// An empty repository yields an empty slice, never nil.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ArticleService.List")
	defer span.End()

	articles, err := s.Repo.List(ctx)
	if err != nil {
		fail(span, "list", err)
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}

	span.SetAttributes(attribute.Int("article.count", len(articles)))
	metrics.UpdateArticlesTotal(len(articles))
	metrics.RecordArticleOperation("list", metrics.ResultSuccess)
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ArticleService.Get",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer span.End()

	article, err := s.get(ctx, id)
	if err != nil {
		fail(span, "get", err)
		return nil, err
	}
	metrics.RecordArticleOperation("get", metrics.ResultSuccess)
	return article, nil
}

// Create validates the input and persists a new article.
// Returns entity.ValidationErrors without touching the repository when the input is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ArticleService.Create")
	defer span.End()

	if err := in.Validate(); err != nil {
		fail(span, "create", err)
		return nil, err
	}

	art := &entity.Article{
		Title: in.Title,
		Body:  in.Body,
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		fail(span, "create", err)
		return nil, fmt.Errorf("create article: %w", err)
	}

	span.SetAttributes(attribute.Int64("article.id", art.ID))
	metrics.IncArticlesTotal()
	metrics.RecordArticleOperation("create", metrics.ResultSuccess)
	return art, nil
}

// Update replaces the title and body of an existing article.
// Validation runs first, so an invalid payload never reaches the repository.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ArticleService.Update",
		trace.WithAttributes(attribute.Int64("article.id", in.ID)))
	defer span.End()

	if err := in.Validate(); err != nil {
		fail(span, "update", err)
		return nil, err
	}

	art, err := s.get(ctx, in.ID)
	if err != nil {
		fail(span, "update", err)
		return nil, err
	}

	art.Title = in.Title
	art.Body = in.Body

	if err := s.Repo.Update(ctx, art); err != nil {
		// 取得後に削除された場合
		if errors.Is(err, entity.ErrNotFound) {
			err = ErrArticleNotFound
		} else {
			err = fmt.Errorf("update article: %w", err)
		}
		fail(span, "update", err)
		return nil, err
	}

	metrics.RecordArticleOperation("update", metrics.ResultSuccess)
	return art, nil
}

// Delete removes an article after confirming that it exists.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.GetTracer().Start(ctx, "ArticleService.Delete",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer span.End()

	if _, err := s.get(ctx, id); err != nil {
		fail(span, "delete", err)
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			err = ErrArticleNotFound
		} else {
			err = fmt.Errorf("delete article: %w", err)
		}
		fail(span, "delete", err)
		return err
	}

	metrics.DecArticlesTotal()
	metrics.RecordArticleOperation("delete", metrics.ResultSuccess)
	return nil
}

func (s *Service) get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// fail records the error on the span and counts the operation by outcome.
func fail(span trace.Span, op string, err error) {
	result := metrics.ResultError
	switch {
	case errors.Is(err, ErrArticleNotFound), errors.Is(err, ErrInvalidArticleID):
		result = metrics.ResultNotFound
	case errors.Is(err, entity.ErrValidationFailed):
		result = metrics.ResultInvalid
	default:
		span.RecordError(err)
	}
	span.SetStatus(codes.Error, err.Error())
	metrics.RecordArticleOperation(op, result)
}

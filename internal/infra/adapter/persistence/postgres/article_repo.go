// Package postgres implements the article store on PostgreSQL through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/metrics"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// observe records the duration of one store operation.
func observe(op string, start time.Time) {
	metrics.RecordOperationDuration(op, time.Since(start))
}

// Ping reports whether the database is reachable.
func (repo *ArticleRepo) Ping(ctx context.Context) error {
	return repo.db.PingContext(ctx)
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	defer observe("articles.list", time.Now())

	const query = `
SELECT id, title, body
FROM articles
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Body); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

// Get returns (nil, nil) when no row has the given id.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("articles.get", time.Now())

	const query = `
SELECT id, title, body
FROM articles
WHERE id = $1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Create inserts the article and stores the generated id on it.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observe("articles.create", time.Now())

	const query = `
INSERT INTO articles (title, body)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, article.Title, article.Body).Scan(&article.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer observe("articles.update", time.Now())

	const query = `
UPDATE articles SET
       title = $1,
       body  = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, article.Title, article.Body, article.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	defer observe("articles.delete", time.Now())

	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

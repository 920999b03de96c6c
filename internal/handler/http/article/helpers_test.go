package article_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/article"
	"article-api/internal/infra/adapter/persistence/memory"
	"article-api/internal/repository"
	artUC "article-api/internal/usecase/article"
)

// stubRepo wraps a memory store, counts calls and can be told to fail.
type stubRepo struct {
	next repository.ArticleRepository

	mu    sync.Mutex
	calls map[string]int
	err   error // returned by every method when set
}

func newStubRepo() *stubRepo {
	return &stubRepo{next: memory.NewArticleRepo(), calls: map[string]int{}}
}

func (s *stubRepo) record(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.err
}

func (s *stubRepo) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *stubRepo) List(ctx context.Context) ([]*entity.Article, error) {
	if err := s.record("list"); err != nil {
		return nil, err
	}
	return s.next.List(ctx)
}

func (s *stubRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if err := s.record("get"); err != nil {
		return nil, err
	}
	return s.next.Get(ctx, id)
}

func (s *stubRepo) Create(ctx context.Context, a *entity.Article) error {
	if err := s.record("create"); err != nil {
		return err
	}
	return s.next.Create(ctx, a)
}

func (s *stubRepo) Update(ctx context.Context, a *entity.Article) error {
	if err := s.record("update"); err != nil {
		return err
	}
	return s.next.Update(ctx, a)
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	if err := s.record("delete"); err != nil {
		return err
	}
	return s.next.Delete(ctx, id)
}

// seed stores articles directly, bypassing the call counters.
func (s *stubRepo) seed(t *testing.T, articles ...entity.Article) {
	t.Helper()
	for i := range articles {
		if err := s.next.Create(context.Background(), &articles[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func newRouter(repo repository.ArticleRepository) http.Handler {
	r := chi.NewRouter()
	article.Register(r, &artUC.Service{Repo: repo})
	return r
}

// do sends a request through the article routes. An empty contentType leaves the header unset.
func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

const jsonType = "application/json"

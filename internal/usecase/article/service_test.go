package article_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"article-api/internal/domain/entity"
	artUC "article-api/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error // 強制的にエラーを返したいとき用
	calls  int   // リポジトリ呼び出し回数
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for id := int64(1); id < s.nextID; id++ {
		if v, ok := s.data[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}
func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.data[a.ID] = &cp
	return nil
}
func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	cp := *a
	s.data[a.ID] = &cp
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	delete(s.data, id)
	return nil
}

// 取得直後に別リクエストが削除したケースを再現する
type vanishingRepo struct{ *stubRepo }

func (v vanishingRepo) Update(ctx context.Context, a *entity.Article) error {
	delete(v.data, a.ID)
	return v.stubRepo.Update(ctx, a)
}
func (v vanishingRepo) Delete(ctx context.Context, id int64) error {
	delete(v.data, id)
	return v.stubRepo.Delete(ctx, id)
}

func seed(s *stubRepo, title, body string) int64 {
	id := s.nextID
	s.data[id] = &entity.Article{ID: id, Title: title, Body: body}
	s.nextID++
	return id
}

/* ───────── 1. Create のバリデーション ───────── */

func TestService_Create_validation(t *testing.T) {
	tests := []struct {
		name       string
		in         artUC.CreateInput
		wantFields map[string]string
	}{
		{
			name:       "both missing",
			in:         artUC.CreateInput{},
			wantFields: map[string]string{"title": "is required", "body": "is required"},
		},
		{
			name:       "empty title",
			in:         artUC.CreateInput{Title: "", Body: "x"},
			wantFields: map[string]string{"title": "is required"},
		},
		{
			name:       "blank body",
			in:         artUC.CreateInput{Title: "t", Body: "  \n\t"},
			wantFields: map[string]string{"body": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			svc := artUC.Service{Repo: stub}

			got, err := svc.Create(context.Background(), tt.in)
			if got != nil {
				t.Fatalf("want nil article, got %#v", got)
			}

			var verrs entity.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("want ValidationErrors, got %v", err)
			}
			if diff := cmp.Diff(tt.wantFields, verrs.Fields()); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
			if !errors.Is(err, entity.ErrValidationFailed) {
				t.Errorf("want errors.Is(err, ErrValidationFailed)")
			}
			// バリデーション失敗時はリポジトリに触れない
			if stub.calls != 0 {
				t.Errorf("repository called %d times, want 0", stub.calls)
			}
		})
	}
}

/* ───────── 2. Create → 保存確認 ───────── */

func TestService_Create_success(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	first, err := svc.Create(context.Background(), artUC.CreateInput{Title: "t1", Body: "b1"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	second, err := svc.Create(context.Background(), artUC.CreateInput{Title: "t2", Body: "b2"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both are %d", first.ID)
	}
	want := &entity.Article{ID: first.ID, Title: "t1", Body: "b1"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("created article mismatch (-want +got):\n%s", diff)
	}

	got, err := svc.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("Get after Create mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Create_repoError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("database error")
	svc := artUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), artUC.CreateInput{Title: "t", Body: "b"})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("store failure must not look like a client error: %v", err)
	}
}

/* ───────── 3. Update: not-found ───────── */

func TestService_Update_notFound(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 99, Title: "t", Body: "b"})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("want ErrArticleNotFound, got %v", err)
	}
}

func TestService_Update_vanishedBeforeWrite(t *testing.T) {
	stub := newStub()
	id := seed(stub, "old", "old body")
	svc := artUC.Service{Repo: vanishingRepo{stub}}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: id, Title: "t", Body: "b"})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("want ErrArticleNotFound, got %v", err)
	}
}

/* ───────── 4. Update: バリデーションは存在確認より先 ───────── */

func TestService_Update_validation(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: 99, Title: "t"})
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
	if diff := cmp.Diff(map[string]string{"body": "is required"}, verrs.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if stub.calls != 0 {
		t.Errorf("repository called %d times, want 0", stub.calls)
	}
}

/* ───────── 5. Update: 正常フロー ───────── */

func TestService_Update_ok(t *testing.T) {
	stub := newStub()
	id := seed(stub, "old", "old body")
	svc := artUC.Service{Repo: stub}

	got, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: id, Title: "new", Body: "new body",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}

	want := &entity.Article{ID: id, Title: "new", Body: "new body"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("returned article mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, stub.data[id]); diff != "" {
		t.Errorf("stored article mismatch (-want +got):\n%s", diff)
	}
}

/* ───────── 6. Delete ───────── */

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupRepo func(*stubRepo) int64
		wantErr   error
		wantCalls int
	}{
		{
			name:      "invalid id - zero",
			setupRepo: func(s *stubRepo) int64 { return 0 },
			wantErr:   artUC.ErrInvalidArticleID,
			wantCalls: 0,
		},
		{
			name:      "article not found",
			setupRepo: func(s *stubRepo) int64 { return 999 },
			wantErr:   artUC.ErrArticleNotFound,
			wantCalls: 1, // 存在確認のみ
		},
		{
			name:      "deleted",
			setupRepo: func(s *stubRepo) int64 { return seed(s, "t", "b") },
			wantErr:   nil,
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			id := tt.setupRepo(stub)
			svc := artUC.Service{Repo: stub}

			err := svc.Delete(context.Background(), id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
			if stub.calls != tt.wantCalls {
				t.Errorf("repository calls = %d, want %d", stub.calls, tt.wantCalls)
			}
			if tt.wantErr == nil {
				if _, err := svc.Get(context.Background(), id); !errors.Is(err, artUC.ErrArticleNotFound) {
					t.Errorf("Get after Delete: want ErrArticleNotFound, got %v", err)
				}
			}
		})
	}
}

func TestService_Delete_vanishedBeforeWrite(t *testing.T) {
	stub := newStub()
	id := seed(stub, "t", "b")
	svc := artUC.Service{Repo: vanishingRepo{stub}}

	if err := svc.Delete(context.Background(), id); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("want ErrArticleNotFound, got %v", err)
	}
}

/* ───────── 7. List: 全記事取得 ───────── */

func TestService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupRepo func(*stubRepo)
		wantCount int
		wantErr   bool
	}{
		{
			name: "empty list",
			setupRepo: func(s *stubRepo) {
				// 空のまま
			},
			wantCount: 0,
			wantErr:   false,
		},
		{
			name: "multiple articles",
			setupRepo: func(s *stubRepo) {
				seed(s, "Article 1", "Body 1")
				seed(s, "Article 2", "Body 2")
				seed(s, "Article 3", "Body 3")
			},
			wantCount: 3,
			wantErr:   false,
		},
		{
			name: "repository error",
			setupRepo: func(s *stubRepo) {
				s.err = errors.New("database error")
			},
			wantCount: 0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			tt.setupRepo(stub)
			svc := artUC.Service{Repo: stub}

			articles, err := svc.List(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("List() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			// 空でも nil ではなく空スライス
			if articles == nil {
				t.Fatal("List() returned nil slice")
			}
			if len(articles) != tt.wantCount {
				t.Errorf("List() got %d articles, want %d", len(articles), tt.wantCount)
			}
		})
	}
}

/* ───────── 8. Get: ID指定で記事取得 ───────── */

func TestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		setupRepo func(*stubRepo)
		wantID    int64
		wantErr   error
	}{
		{
			name:      "invalid id - zero",
			id:        0,
			setupRepo: func(s *stubRepo) {},
			wantErr:   artUC.ErrInvalidArticleID,
		},
		{
			name:      "invalid id - negative",
			id:        -1,
			setupRepo: func(s *stubRepo) {},
			wantErr:   artUC.ErrInvalidArticleID,
		},
		{
			name:      "article not found",
			id:        999,
			setupRepo: func(s *stubRepo) {},
			wantErr:   artUC.ErrArticleNotFound,
		},
		{
			name: "article found",
			id:   1,
			setupRepo: func(s *stubRepo) {
				seed(s, "Test Article", "Body")
			},
			wantID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			tt.setupRepo(stub)
			svc := artUC.Service{Repo: stub}

			article, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get() unexpected error = %v", err)
			}
			if article.ID != tt.wantID {
				t.Errorf("Get() got ID = %d, want %d", article.ID, tt.wantID)
			}
		})
	}
}

func TestService_Get_repoError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("database error")
	svc := artUC.Service{Repo: stub}

	_, err := svc.Get(context.Background(), 1)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if errors.Is(err, artUC.ErrArticleNotFound) {
		t.Fatalf("store failure reported as not found: %v", err)
	}
	if !errors.Is(err, stub.err) {
		t.Errorf("want wrapped store error, got %v", err)
	}
}

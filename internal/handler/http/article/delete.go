package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	artUC "article-api/internal/usecase/article"

	"github.com/go-chi/chi/v5"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します。存在しない場合は 404 を返します。
// @Tags         articles
// @Param        id path int true "記事ID"
// @Success      204 "No Content"
// @Failure      404 {object} respond.ErrorBody "Not found - article not found"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, artUC.ErrInvalidArticleID)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

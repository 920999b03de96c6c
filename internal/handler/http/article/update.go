package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"

	"github.com/go-chi/chi/v5"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  既存の記事の title と body を置き換えます
// @Tags         articles
// @Accept       json,x-www-form-urlencoded,xml
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body Request true "更新する記事情報"
// @Success      200 {object} DTO "更新された記事"
// @Failure      400 {object} respond.ErrorBody "Bad request - validation failed"
// @Failure      404 {object} respond.ErrorBody "Not found - article not found"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      415 {object} respond.ErrorBody "Unsupported content type"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{id} [post]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, artUC.ErrInvalidArticleID)
		return
	}

	req, err := bindRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}

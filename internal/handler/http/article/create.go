package article

import (
	"net/http"
	"strconv"

	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。title と body は必須です。
// @Tags         articles
// @Accept       json,x-www-form-urlencoded,xml
// @Produce      json
// @Param        article body Request true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Header       201 {string} Location "作成された記事のURL"
// @Failure      400 {object} respond.ErrorBody "Bad request - validation failed"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      415 {object} respond.ErrorBody "Unsupported content type"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := bindRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/articles/"+strconv.FormatInt(a.ID, 10))
	respond.JSON(w, http.StatusCreated, toDTO(a))
}

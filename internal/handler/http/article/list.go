package article

import (
	"net/http"

	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  登録されている全ての記事を ID 順に返します。記事がない場合は空配列を返します。
// @Tags         articles
// @Produce      json
// @Success      200 {array}  DTO "記事一覧"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

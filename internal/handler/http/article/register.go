package article

import (
	"net/http"

	artUC "article-api/internal/usecase/article"

	"github.com/go-chi/chi/v5"
)

// IDPattern restricts article ids to digits; anything else is a routing miss.
const IDPattern = "/articles/{id:[0-9]+}"

// Register mounts the article routes on r.
// Updates use POST on the item route.
func Register(r chi.Router, svc *artUC.Service) {
	r.Method(http.MethodGet, "/articles", ListHandler{svc})
	r.Method(http.MethodPost, "/articles", CreateHandler{svc})
	r.Method(http.MethodGet, IDPattern, GetHandler{svc})
	r.Method(http.MethodPost, IDPattern, UpdateHandler{svc})
	r.Method(http.MethodDelete, IDPattern, DeleteHandler{svc})
}

package article

import (
	"errors"
	"log/slog"
	"net/http"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	artUC "article-api/internal/usecase/article"
)

// writeError maps binding and use case errors to a status code and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs entity.ValidationErrors
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &verrs):
		respond.ValidationFailed(w, verrs.Fields())
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrInvalidArticleID):
		respond.Message(w, http.StatusNotFound, "article not found")
	case errors.As(err, &maxErr):
		respond.Message(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, errUnsupportedContent):
		respond.Message(w, http.StatusUnsupportedMediaType, errUnsupportedContent.Error())
	case errors.Is(err, errMalformedBody):
		respond.Message(w, http.StatusBadRequest, errMalformedBody.Error())
	default:
		// 詳細はログのみに出す
		logging.FromContext(r.Context()).Error("article request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", respond.SanitizeError(err)))
		respond.Message(w, http.StatusInternalServerError, "internal server error")
	}
}

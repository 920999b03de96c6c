package article

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

var (
	errMalformedBody      = errors.New("invalid request body")
	errUnsupportedContent = errors.New("unsupported content type")
)

// bindRequest decodes the body according to its Content-Type.
// A request without Content-Type is read as JSON and an empty body
// decodes to an empty Request, leaving the field checks to the use case.
func bindRequest(r *http.Request) (*Request, error) {
	if strings.TrimSpace(r.Header.Get("Content-Type")) == "" {
		r = r.WithContext(context.WithValue(r.Context(), render.ContentTypeCtxKey, render.ContentTypeJSON))
	}

	switch render.GetRequestContentType(r) {
	case render.ContentTypeJSON, render.ContentTypeForm, render.ContentTypeXML:
	default:
		return nil, errUnsupportedContent
	}

	req := &Request{}
	if err := render.Bind(r, req); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, err
		case errors.Is(err, io.EOF):
			return req, nil
		default:
			return nil, errMalformedBody
		}
	}
	return req, nil
}

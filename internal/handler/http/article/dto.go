// Package article provides the HTTP handlers for the article resource.
// Each operation is a stateless handler sharing one use case Service.
package article

import (
	"encoding/xml"
	"net/http"

	"article-api/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Go 1.25 リリース"`
	Body  string `json:"body" example:"Go 1.25 がリリースされました。"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{ID: a.ID, Title: a.Title, Body: a.Body}
}

// Request is the payload accepted by create and update.
// It can be sent as JSON, as a urlencoded form or as XML.
type Request struct {
	XMLName xml.Name `json:"-" form:"-" xml:"article" swaggerignore:"true"`
	Title   string   `json:"title" form:"title" xml:"title" example:"Go 1.25 リリース"`
	Body    string   `json:"body" form:"body" xml:"body" example:"Go 1.25 がリリースされました。"`
}

// Bind implements render.Binder. Field rules are enforced by the use case.
func (req *Request) Bind(*http.Request) error {
	return nil
}

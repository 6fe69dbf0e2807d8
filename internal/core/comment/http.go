package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dmlane/newswire/internal/platform/request"
	"github.com/dmlane/newswire/internal/platform/respond"
	"github.com/dmlane/newswire/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the routes addressed by comment id.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Patch("/{comment_id}", handler.updateVotes)
	router.Delete("/{comment_id}", handler.deleteComment)
}

// RegisterArticleRoutes mounts the per-article comment routes; the caller
// nests these under the articles route group.
func (handler *Handler) RegisterArticleRoutes(router chi.Router) {
	router.Get("/{article_id}/comments", handler.listComments)
	router.Post("/{article_id}/comments", handler.addComment)
}

type listResponse struct {
	Comments   []*Comment `json:"comments"`
	TotalCount int        `json:"total_count"`
}

type commentResponse struct {
	Comment *Comment `json:"comment"`
}

type addRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := pagination.FromQuery(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, total, err := handler.service.ListForArticle(request.Context(), articleID, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Comments: comments, TotalCount: total})
}

func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body := addRequest{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Add(request.Context(), articleID, body.Username, body.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, commentResponse{Comment: comment})
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body := voteRequest{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateVotes(request.Context(), commentID, body.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, commentResponse{Comment: comment})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

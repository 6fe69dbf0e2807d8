package article

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)
	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.updateVotes)
	router.Delete("/{article_id}", handler.deleteArticle)
}

type listResponse struct {
	Articles   []*Article `json:"articles"`
	TotalCount int        `json:"total_count"`
}

type articleResponse struct {
	Article *Article `json:"article"`
}

type createRequest struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Topic    string `json:"topic"`
	ImageURL string `json:"article_img_url"`
}

type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	page, err := pagination.FromQuery(query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, total, err := handler.service.ListArticles(
		request.Context(),
		query.Get("topic"), query.Get("sort_by"), query.Get("order"),
		page,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Articles: articles, TotalCount: total})
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articleResponse{Article: article})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	body := createRequest{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), CreateInput{
		Author:   body.Author,
		Title:    body.Title,
		Body:     body.Body,
		Topic:    body.Topic,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, articleResponse{Article: article})
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	body := voteRequest{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.UpdateVotes(request.Context(), articleID, body.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articleResponse{Article: article})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), articleID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

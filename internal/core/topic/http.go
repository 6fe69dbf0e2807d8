package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dmlane/newswire/internal/platform/request"
	"github.com/dmlane/newswire/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)
}

type listResponse struct {
	Topics []*Topic `json:"topics"`
}

type topicResponse struct {
	Topic *Topic `json:"topic"`
}

type createRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Topics: topics})
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	body := createRequest{}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	topic, err := handler.service.CreateTopic(request.Context(), body.Slug, body.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, topicResponse{Topic: topic})
}

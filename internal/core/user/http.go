package user

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
	router.Get("/", handler.listUsers)
	router.Get("/{username}", handler.getUser)
}

type listResponse struct {
	Users []*User `json:"users"`
}

type userResponse struct {
	User *User `json:"user"`
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Users: users})
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	user, err := handler.service.GetUser(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, userResponse{User: user})
}

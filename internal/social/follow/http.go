package follow

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AGBR121/social-media-API/internal/platform/middleware"
	requestutil "github.com/AGBR121/social-media-API/internal/platform/request"
	"github.com/AGBR121/social-media-API/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the follow domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.follow)
	router.Delete("/{id}", handler.unfollow)
	router.Get("/followings/{userId}", handler.listFollowings)
	router.Get("/followers/{userId}", handler.listFollowers)

	return router
}

func (handler *Handler) follow(writer http.ResponseWriter, request *http.Request) {
	var input Edge
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Follow(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) unfollow(writer http.ResponseWriter, request *http.Request) {
	edgeID := requestutil.ID(request, "id")

	if err := handler.service.Unfollow(request.Context(), edgeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listFollowings(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "userId")

	ids, err := handler.service.ListFollowees(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ids)
}

func (handler *Handler) listFollowers(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "userId")

	ids, err := handler.service.ListFollowers(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ids)
}

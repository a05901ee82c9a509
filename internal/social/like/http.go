package like

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

// Routes returns a [chi.Router] configured with the like domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/post/{postId}", handler.likePost)
	router.Delete("/post/{postId}", handler.unlikePost)
	router.Get("/post/{postId}", handler.listByPost)
	router.Get("/user/{userId}", handler.listByUser)

	return router
}

func (handler *Handler) likePost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.LikePost(request.Context(), postID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) unlikePost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnlikePost(request.Context(), postID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listByPost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")

	likes, err := handler.service.ListByPost(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, likes)
}

func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "userId")

	likes, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, likes)
}

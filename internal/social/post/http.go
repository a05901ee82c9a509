package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AGBR121/social-media-API/internal/platform/middleware"
	requestutil "github.com/AGBR121/social-media-API/internal/platform/request"
	"github.com/AGBR121/social-media-API/internal/platform/respond"
	"github.com/AGBR121/social-media-API/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the post domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/{id}", handler.getPost)
	router.Get("/user/{userId}/public", handler.listPublicByUser)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/", handler.createPost)
		authed.Patch("/{id}", handler.updatePost)
		authed.Delete("/{id}", handler.deletePost)
		authed.Get("/user/{userId}", handler.listByUser)
		authed.Get("/followed/{followerId}/{followedId}", handler.listOfFollowedUser)
	})

	return router
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePost(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	result, err := handler.service.GetPost(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePost(request.Context(), postID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "id")

	if err := handler.service.DeletePost(request.Context(), postID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	ownerID := requestutil.ID(request, "userId")

	posts, err := handler.service.ListByOwner(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) listPublicByUser(writer http.ResponseWriter, request *http.Request) {
	ownerID := requestutil.ID(request, "userId")
	paginationParams := pagination.FromRequest(request)

	posts, err := handler.service.ListPublicByOwner(request.Context(), ownerID, paginationParams.Offset(), paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) listOfFollowedUser(writer http.ResponseWriter, request *http.Request) {
	followerID := requestutil.ID(request, "followerId")
	followedID := requestutil.ID(request, "followedId")

	posts, err := handler.service.ListOfFollowedUser(request.Context(), followerID, followedID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

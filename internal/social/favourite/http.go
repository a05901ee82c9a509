package favourite

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

// Routes returns a [chi.Router] configured with the favourite domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/post/{postId}", handler.addFavourite)
	router.Delete("/post/{postId}", handler.removeFavourite)
	router.Get("/", handler.listFavourites)

	return router
}

func (handler *Handler) addFavourite(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.AddFavourite(request.Context(), userID, postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) removeFavourite(writer http.ResponseWriter, request *http.Request) {
	postID := requestutil.ID(request, "postId")
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveFavourite(request.Context(), userID, postID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listFavourites(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favourites, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favourites)
}

package feed

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AGBR121/social-media-API/internal/platform/apperr"
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

// Routes returns a [chi.Router] configured with the feed endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{followerId}", handler.getFeedPage)

	return router
}

func (handler *Handler) getFeedPage(writer http.ResponseWriter, request *http.Request) {
	followerID := requestutil.ID(request, "followerId")

	page, err := queryInt(request, "page", pagination.DefaultPage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	limit, err := queryInt(request, "limit", pagination.DefaultLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.GetFeedPage(request.Context(), followerID, page, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// queryInt parses an integer query parameter. Unlike the pagination helper it
// rejects garbage instead of clamping, so a malformed request is visible to
// the caller.
func queryInt(request *http.Request, key string, fallback int) (int, error) {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid request parameters",
			apperr.FieldError{Field: key, Message: "must be an integer"})
	}
	return value, nil
}

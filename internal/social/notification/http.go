package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AGBR121/social-media-API/internal/platform/middleware"
	requestutil "github.com/AGBR121/social-media-API/internal/platform/request"
	"github.com/AGBR121/social-media-API/internal/platform/respond"
	"github.com/AGBR121/social-media-API/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the notification domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.createNotification)
	router.Delete("/{id}", handler.deleteNotification)
	router.Get("/user/{userId}", handler.listNotifications)
	router.Patch("/{id}/read", handler.markRead)

	return router
}

func (handler *Handler) createNotification(writer http.ResponseWriter, request *http.Request) {
	var input Notification
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateNotification(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteNotification(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteNotification(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listNotifications(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "userId")
	actions := query.StringSlice(request.URL.Query().Get("actions"))

	notifications, err := handler.service.ListByRecipient(request.Context(), userID, actions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, notifications)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.MarkRead(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

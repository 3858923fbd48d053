package app

import (
	handlers "blogicum/internal/handler"
	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/service"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every route of the blog and wraps the router in the
// request middleware.
func NewRouter(h *handlers.Handlers, authService service.AuthService) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/category/{slug}/", h.CategoryPosts).Methods(http.MethodGet)

	router.HandleFunc("/auth/registration/", h.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login/", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/refresh-token/", h.RefreshToken).Methods(http.MethodPost)

	// "edit" must win over the {username} pattern
	router.Handle("/profile/edit/", middleware.RequireAuth(http.HandlerFunc(h.EditProfile))).
		Methods(http.MethodPut, http.MethodPost)
	router.HandleFunc("/profile/{username}/", h.Profile).Methods(http.MethodGet)

	auth := func(f http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(f)
	}

	router.Handle("/posts/create/", auth(h.NewPostForm)).Methods(http.MethodGet)
	router.Handle("/posts/create/", auth(h.CreatePost)).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}/", h.PostDetail).Methods(http.MethodGet)
	router.Handle("/posts/{id}/edit/", auth(h.EditablePost)).Methods(http.MethodGet)
	router.Handle("/posts/{id}/edit/", auth(h.EditPost)).Methods(http.MethodPut, http.MethodPost)
	router.Handle("/posts/{id}/delete/", auth(h.EditablePost)).Methods(http.MethodGet)
	router.Handle("/posts/{id}/delete/", auth(h.DeletePost)).Methods(http.MethodDelete, http.MethodPost)
	router.Handle("/posts/{id}/image/", auth(h.UploadImage)).Methods(http.MethodPost)
	router.Handle("/posts/{id}/image/", auth(h.DeleteImage)).Methods(http.MethodDelete)
	router.Handle("/posts/{id}/comment/", auth(h.AddComment)).Methods(http.MethodPost)
	router.Handle("/posts/{id}/edit_comment/{comment_id}/", auth(h.EditComment)).Methods(http.MethodPut, http.MethodPost)
	router.Handle("/posts/{id}/delete_comment/{comment_id}/", auth(h.DeleteComment)).Methods(http.MethodDelete, http.MethodPost)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.RoleMiddleware(models.RoleAdmin)))
	admin.HandleFunc("/categories/", h.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{slug}/", h.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{slug}/", h.DeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/locations/", h.CreateLocation).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{id}/", h.UpdateLocation).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id}/", h.DeleteLocation).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{username}/", h.DeleteUser).Methods(http.MethodDelete)

	return middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(authService),
		middleware.LoggingMiddleware,
	)
}

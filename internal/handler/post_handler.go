package handlers

import (
	"blogicum/internal/models"
	"blogicum/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
)

type PostRequest struct {
	Title       string     `json:"title" validate:"required,max=256,decent"`
	Text        string     `json:"text" validate:"required,decent"`
	PubDate     *time.Time `json:"pubDate" validate:"required"`
	IsPublished *bool      `json:"isPublished"`
	CategoryID  *string    `json:"categoryId" validate:"omitempty,uuid"`
	LocationID  *string    `json:"locationId" validate:"omitempty,uuid"`
}

type CategoryPostsResponse struct {
	Category *models.Category `json:"category"`
	*service.PostPage
}

type PostDetailResponse struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

type ImageResponse struct {
	PostID   string `json:"postId"`
	ImageURL string `json:"imageUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func postURL(postID string) string {
	return "/posts/" + url.PathEscape(postID) + "/"
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

// parsePage reads ?page=. A missing value is the first page.
func parsePage(r *http.Request) (int, bool) {
	value := r.URL.Query().Get("page")
	if value == "" {
		return 1, true
	}

	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// viewerProfileURL points at the viewer's profile under the username stored
// now, falling back to the one in the token.
func (h *Handlers) viewerProfileURL(r *http.Request, viewer service.Viewer) string {
	user, err := h.UserService.CurrentUser(r.Context(), viewer)
	if err != nil {
		log.Printf("Предупреждение: не удалось получить пользователя %s: %v", viewer.UserID, err)
		return profileURL(viewer.Username)
	}
	return profileURL(user.Username)
}

func (req PostRequest) toInput() service.PostInput {
	input := service.PostInput{
		Title:       req.Title,
		Text:        req.Text,
		IsPublished: true,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
	}
	if req.PubDate != nil {
		input.PubDate = *req.PubDate
	}
	if req.IsPublished != nil {
		input.IsPublished = *req.IsPublished
	}
	return input
}

func (h *Handlers) decodePost(w http.ResponseWriter, r *http.Request) (service.PostInput, bool) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return service.PostInput{}, false
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return service.PostInput{}, false
	}

	return req.toInput(), true
}

// writePostMutationError sends a non-author back to the post instead of
// reporting the refusal.
func writePostMutationError(w http.ResponseWriter, r *http.Request, postID string, err error) {
	if errors.Is(err, service.ErrForbidden) {
		seeOther(w, r, postURL(postID))
		return
	}
	writeServiceError(w, err)
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		WriteError(w, "Страница не найдена", http.StatusNotFound)
		return
	}

	posts, err := h.PostService.Index(r.Context(), page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		WriteError(w, "Страница не найдена", http.StatusNotFound)
		return
	}

	category, posts, err := h.PostService.CategoryPosts(r.Context(), mux.Vars(r)["slug"], page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, CategoryPostsResponse{Category: category, PostPage: posts}, http.StatusOK)
}

func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())

	post, comments, err := h.PostService.GetPost(r.Context(), viewer, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, PostDetailResponse{Post: post, Comments: comments}, http.StatusOK)
}

// NewPostForm returns the initial values of a new post.
func (h *Handlers) NewPostForm(w http.ResponseWriter, r *http.Request) {
	if !service.ViewerFromContext(r.Context()).IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	published := true
	writeSuccess(w, PostRequest{PubDate: &now, IsPublished: &published}, http.StatusOK)
}

// EditablePost hands the post to its author ahead of an edit or delete.
func (h *Handlers) EditablePost(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.EditablePost(r.Context(), viewer, postID)
	if err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	input, ok := h.decodePost(w, r)
	if !ok {
		return
	}

	if _, err := h.PostService.CreatePost(r.Context(), viewer, input); err != nil {
		writeServiceError(w, err)
		return
	}

	seeOther(w, r, h.viewerProfileURL(r, viewer))
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	// a non-author is sent back to the post whatever the body holds
	if _, err := h.PostService.EditablePost(r.Context(), viewer, postID); err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	input, ok := h.decodePost(w, r)
	if !ok {
		return
	}

	if _, err := h.PostService.UpdatePost(r.Context(), viewer, postID, input); err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	seeOther(w, r, postURL(postID))
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), viewer, postID); err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	seeOther(w, r, h.viewerProfileURL(r, viewer))
}

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	// getting the file
	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// the declared Content-Type is not trusted, the content is sniffed
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.AttachImage(r.Context(), viewer, postID, header.Filename, mtype.String(), file, header.Size)
	if err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	writeSuccess(w, ImageResponse{
		PostID:   post.PostID,
		ImageURL: post.Image,
		FileName: header.Filename,
		FileSize: header.Size,
		MimeType: mtype.String(),
	}, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	viewer := service.ViewerFromContext(r.Context())
	if !viewer.IsAuthenticated() {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}
	postID := mux.Vars(r)["id"]

	if err := h.PostService.RemoveImage(r.Context(), viewer, postID); err != nil {
		writePostMutationError(w, r, postID, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Картинка успешно удалена"}, http.StatusOK)
}

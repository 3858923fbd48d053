package service

import (
	"blogicum/internal/config"
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/storage"
	"context"
	"fmt"
	"io"
	"log"
	"time"
)

type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	IsPublished bool
	CategoryID  *string
	LocationID  *string
}

type PostService interface {
	Index(ctx context.Context, page int) (*PostPage, error)
	CategoryPosts(ctx context.Context, slug string, page int) (*models.Category, *PostPage, error)
	ProfilePosts(ctx context.Context, viewer Viewer, username string, page int) (*models.User, *PostPage, error)
	GetPost(ctx context.Context, viewer Viewer, postID string) (*models.Post, []models.Comment, error)
	EditablePost(ctx context.Context, viewer Viewer, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, viewer Viewer, req PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, viewer Viewer, postID string, req PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, viewer Viewer, postID string) error
	AttachImage(ctx context.Context, viewer Viewer, postID, fileName, contentType string, file io.Reader, size int64) (*models.Post, error)
	RemoveImage(ctx context.Context, viewer Viewer, postID string) error
}

type postService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	storage      storage.Storage
	cfg          *config.Config
	now          func() time.Time
}

func NewPostService(rep *repository.Repository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:     rep.Post,
		commentRepo:  rep.Comment,
		userRepo:     rep.User,
		categoryRepo: rep.Category,
		storage:      storage,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (p *postService) listPage(ctx context.Context, filter repository.PostFilter, page int) (*PostPage, error) {
	total, err := p.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := p.cfg.Blog.PostsPerPage
	offset, totalPages, err := pageOffset(page, limit, total)
	if err != nil {
		return nil, err
	}

	posts := []models.Post{}
	if total > 0 {
		posts, err = p.postRepo.List(ctx, filter, limit, offset)
		if err != nil {
			return nil, err
		}
	}

	return &PostPage{
		Posts:      posts,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (p *postService) Index(ctx context.Context, page int) (*PostPage, error) {
	return p.listPage(ctx, PublishedFilter(p.now()), page)
}

func (p *postService) CategoryPosts(ctx context.Context, slug string, page int) (*models.Category, *PostPage, error) {
	category, err := p.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	// an unpublished category does not exist for readers
	if !category.IsPublished {
		return nil, nil, fmt.Errorf("категория %s: %w", slug, ErrNotFound)
	}

	posts, err := p.listPage(ctx, CategoryFilter(category.CategoryID, p.now()), page)
	if err != nil {
		return nil, nil, err
	}

	return category, posts, nil
}

func (p *postService) ProfilePosts(ctx context.Context, viewer Viewer, username string, page int) (*models.User, *PostPage, error) {
	owner, err := p.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	posts, err := p.listPage(ctx, ProfileFilter(viewer, owner, p.now()), page)
	if err != nil {
		return nil, nil, err
	}

	return owner, posts, nil
}

// visiblePost loads a post the viewer is allowed to open. Posts hidden from
// the viewer are reported exactly like missing ones.
func (p *postService) visiblePost(ctx context.Context, viewer Viewer, postID string) (*models.Post, error) {
	if !validID(postID) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanView(viewer, post, p.now()) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	return post, nil
}

// ownPost loads a post for a mutation by viewer.
func (p *postService) ownPost(ctx context.Context, viewer Viewer, postID string) (*models.Post, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	if !validID(postID) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanModify(viewer, post.AuthorID) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrForbidden)
	}

	return post, nil
}

// EditablePost returns the post if viewer is its author. Anything else
// fails with ErrUnauthorized, ErrNotFound or ErrForbidden.
func (p *postService) EditablePost(ctx context.Context, viewer Viewer, postID string) (*models.Post, error) {
	return p.ownPost(ctx, viewer, postID)
}

func (p *postService) GetPost(ctx context.Context, viewer Viewer, postID string) (*models.Post, []models.Comment, error) {
	post, err := p.visiblePost(ctx, viewer, postID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := p.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	return post, comments, nil
}

func (p *postService) CreatePost(ctx context.Context, viewer Viewer, req PostInput) (*models.Post, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	post := &models.Post{
		AuthorID:       viewer.UserID,
		AuthorUsername: viewer.Username,
	}
	applyPostInput(post, req)

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, viewer Viewer, postID string, req PostInput) (*models.Post, error) {
	post, err := p.ownPost(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	applyPostInput(post, req)

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, viewer Viewer, postID string) error {
	post, err := p.ownPost(ctx, viewer, postID)
	if err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, post.PostID, viewer.UserID); err != nil {
		return err
	}

	p.dropImage(ctx, post.Image)
	return nil
}

func (p *postService) AttachImage(ctx context.Context, viewer Viewer, postID, fileName, contentType string, file io.Reader, size int64) (*models.Post, error) {
	post, err := p.ownPost(ctx, viewer, postID)
	if err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, contentType, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	if err := p.postRepo.UpdateImage(ctx, postID, viewer.UserID, imageURL); err != nil {
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO объект %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	p.dropImage(ctx, post.Image)
	post.Image = imageURL
	return post, nil
}

func (p *postService) RemoveImage(ctx context.Context, viewer Viewer, postID string) error {
	post, err := p.ownPost(ctx, viewer, postID)
	if err != nil {
		return err
	}

	if post.Image == "" {
		return nil
	}

	if err := p.postRepo.UpdateImage(ctx, postID, viewer.UserID, ""); err != nil {
		return err
	}

	p.dropImage(ctx, post.Image)
	return nil
}

// dropImage removes a stored image. Failures only leave an orphaned object
// behind, so they are logged and not returned.
func (p *postService) dropImage(ctx context.Context, imageURL string) {
	if imageURL == "" {
		return
	}

	objectName, ok := p.storage.ObjectName(imageURL)
	if !ok {
		return
	}

	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Предупреждение: не удалось удалить из MinIO объект %s: %v", objectName, err)
	}
}

func applyPostInput(post *models.Post, req PostInput) {
	post.Title = req.Title
	post.Text = req.Text
	post.PubDate = req.PubDate
	post.IsPublished = req.IsPublished
	post.CategoryID = req.CategoryID
	post.LocationID = req.LocationID
}

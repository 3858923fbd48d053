package service

import (
	"blogicum/internal/config"
	"blogicum/internal/repository"
	"blogicum/internal/storage"
)

type Service struct {
	User    UserService
	Post    PostService
	Comment CommentService
	Catalog CatalogService
	Auth    AuthService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:    NewUserService(rep.User, cfg),
		Post:    NewPostService(rep, storage, cfg),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Catalog: NewCatalogService(rep.Category, rep.Location),
		Auth:    NewAuthService(rep.User, cfg),
		Tables:  NewTablesService(rep.Tables),
	}
}

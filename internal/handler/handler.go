package handlers

import (
	"blogicum/internal/config"
	"blogicum/internal/service"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserService    service.UserService
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	CatalogService service.CatalogService
	TablesService  service.TablesService
	HealthCheck    func() error
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, healthCheck func() error, config *config.Config) *Handlers {
	return &Handlers{
		UserService:    service.User,
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		CatalogService: service.Catalog,
		TablesService:  service.Tables,
		HealthCheck:    healthCheck,
		Cfg:            config,
		Validate:       NewValidator(config.Blog.BannedWords),
	}
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// NewValidator builds the request validator. Field errors are reported
// under their json names. Besides the built-in rules it knows "slug" and
// "decent", the latter rejecting text that contains one of bannedWords.
func NewValidator(bannedWords []string) *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("decent", func(fl validator.FieldLevel) bool {
		text := strings.ToLower(fl.Field().String())
		for _, word := range bannedWords {
			if strings.Contains(text, word) {
				return false
			}
		}
		return true
	})

	return validate
}

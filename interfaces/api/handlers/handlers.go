package handlers

import (
	"tododeck/domain/services"
	"tododeck/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService        services.UserService
	TodoService        services.TodoService
	CategoryService    services.CategoryService
	CommentService     services.CommentService
	ActivityService    services.ActivityService
	StatsService       services.StatsService
	TemplateService    services.TemplateService
	PreferencesService services.PreferencesService
	SessionConfig      config.SessionConfig
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	TodoHandler        *TodoHandler
	CategoryHandler    *CategoryHandler
	CommentHandler     *CommentHandler
	ActivityHandler    *ActivityHandler
	StatsHandler       *StatsHandler
	TemplateHandler    *TemplateHandler
	PreferencesHandler *PreferencesHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:        NewAuthHandler(services.UserService, services.SessionConfig),
		UserHandler:        NewUserHandler(services.UserService),
		TodoHandler:        NewTodoHandler(services.TodoService),
		CategoryHandler:    NewCategoryHandler(services.CategoryService),
		CommentHandler:     NewCommentHandler(services.CommentService),
		ActivityHandler:    NewActivityHandler(services.ActivityService),
		StatsHandler:       NewStatsHandler(services.StatsService),
		TemplateHandler:    NewTemplateHandler(services.TemplateService),
		PreferencesHandler: NewPreferencesHandler(services.PreferencesService),
	}
}

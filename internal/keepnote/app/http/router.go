// Package http содержит HTTP сервер keepnote: middleware, проверку сессии и маршруты.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"keepnote/internal/keepnote/app/http/middleware"
	"keepnote/internal/keepnote/ports/api"
)

// Services - сервисы, которые вызывают обработчики.
type Services struct {
	Users      api.UserService
	Auth       api.AuthService
	Categories api.CategoryService
	Notes      api.NoteService
	Reminders  api.ReminderService
}

// Options настраивает маршрутизатор.
type Options struct {
	Cookie      CookieConfig
	CORSOrigins []string
	// Now - источник времени для отметок создания. По умолчанию time.Now.
	Now func() time.Time
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, services Services, opts Options) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	users := NewUserHandler(services.Users, opts.Cookie, opts.Now)
	auth := NewAuthHandler(services.Auth, opts.Cookie)
	categories := NewCategoryHandler(services.Categories, opts.Now)
	notes := NewNoteHandler(services.Notes, opts.Now)
	reminders := NewReminderHandler(services.Reminders, opts.Now)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		},
		AllowHeaders:  []string{fiber.HeaderContentType, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
	}))
	app.Use(middleware.NewSessionMiddleware(services.Auth, opts.Cookie.Name))

	app.Post("/user/register", users.Register)
	app.Put("/user/:id", users.Update)
	app.Delete("/user/:id", users.Delete)
	app.Get("/user/:id", users.Get)

	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	app.Post("/category", categories.Create)
	app.Put("/category/:id", categories.Update)
	app.Delete("/category/:id", categories.Delete)
	app.Get("/category", categories.List)
	app.Get("/category/:id", categories.Get)

	app.Post("/note", notes.Create)
	app.Put("/note", notes.Update)
	app.Delete("/note/:id", notes.Delete)
	app.Get("/note", notes.List)
	app.Get("/note/:id", notes.Get)

	app.Post("/reminder", reminders.Create)
	app.Put("/reminder/:id", reminders.Update)
	app.Delete("/reminder/:id", reminders.Delete)
	app.Get("/reminder", reminders.List)
	app.Get("/reminder/:id", reminders.Get)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}

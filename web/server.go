package web

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/teddylu0219/database-final-project-2025/web/handlers"
	"github.com/teddylu0219/database-final-project-2025/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer() *Server {
	// Initialize template engine
	engine := html.New("./web/templates", ".html")
	engine.Reload(true) // Enable hot reload for development

	// Add custom template functions
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	})
	engine.AddFunc("formatPrice", func(price float64) string {
		return fmt.Sprintf("$%.0f", price)
	})
	engine.AddFunc("formatRating", func(rating float64) string {
		return fmt.Sprintf("%.1f", rating)
	})
	engine.AddFunc("weekday", func(day int) string {
		names := []string{"日", "一", "二", "三", "四", "五", "六"}
		if day < 0 || day >= len(names) {
			return "?"
		}
		return "星期" + names[day]
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			page := "pages/500"
			if code == fiber.StatusNotFound {
				page = "pages/404"
			}

			return c.Status(code).Render(page, fiber.Map{
				"Title":  "Error",
				"Active": "",
				"Error":  err.Error(),
				"Code":   code,
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to inject SQL logs into context
	app.Use(middleware.SQLDebugMiddleware())

	// Static files
	app.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	// Home page
	app.Get("/", handlers.HomePage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	// Store management (order matters: specific routes before ":id")
	stores := app.Group("/stores")
	stores.Get("/", handlers.StoreList)
	stores.Get("/create", handlers.StoreNew)
	stores.Post("/create", handlers.StoreCreate)
	stores.Get("/:id", handlers.StoreDetail)
	stores.Get("/:id/edit", handlers.StoreEdit)
	stores.Post("/:id/edit", handlers.StoreUpdate)
	stores.Post("/:id/delete", handlers.StoreDelete)

	// Food management - /export must be before /:id routes
	foods := app.Group("/foods")
	foods.Get("/", handlers.FoodList)
	foods.Get("/export", handlers.FoodExportCSV)
	foods.Post("/create", handlers.FoodCreate)
	foods.Post("/:id/edit", handlers.FoodUpdate)
	foods.Post("/:id/delete", handlers.FoodDelete)

	// Reviews
	reviews := app.Group("/reviews")
	reviews.Post("/create", handlers.ReviewCreate)
	reviews.Post("/:id/delete", handlers.ReviewDelete)

	// Unmatched routes get the 404 page
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

package routes

import (
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/config"
	"github.com/dkaratas/vrlearn-backend/internal/handlers"
	"github.com/dkaratas/vrlearn-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	scoreHandler *handlers.ScoreHandler,
	profileHandler *handlers.ProfileHandler,
	coloringHandler *handlers.ColoringHandler,
	groceryHandler *handlers.GroceryHandler,
	sessionHandler *handlers.SessionHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimiter, authHandler.Register)
	api.Post("/login", authLimiter, authHandler.Login)
	api.Post("/refresh", authLimiter, authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)

	api.Post("/logout", jwt, authHandler.Logout)
	api.Get("/current-user", jwt, authHandler.CurrentUser)

	// Scores
	api.Post("/submit-score", jwt, scoreHandler.Submit)
	api.Get("/score", jwt, scoreHandler.GetCurrent)
	api.Get("/past-scores", jwt, scoreHandler.GetHistory)

	// Profile
	api.Get("/profile", jwt, profileHandler.Get)
	api.Put("/profile", jwt, profileHandler.Save)

	// Coloring canvas
	api.Get("/coloring", jwt, coloringHandler.List)
	api.Get("/coloring/:imageId", jwt, coloringHandler.Get)
	api.Put("/coloring/:imageId", jwt, coloringHandler.Save)

	// Grocery store catalog (public — the landing page renders it before login)
	api.Get("/products", groceryHandler.ListProducts)
	api.Get("/products/category/:category", groceryHandler.ListProductsByCategory)
	api.Get("/products/:id", groceryHandler.GetProduct)

	// Cart
	api.Get("/cart", jwt, groceryHandler.GetCart)
	api.Post("/cart", jwt, groceryHandler.AddToCart)
	api.Put("/cart/:id", jwt, groceryHandler.UpdateCartItem)
	api.Delete("/cart/:id", jwt, groceryHandler.DeleteCartItem)

	// VR sessions
	api.Post("/vrsession/start", jwt, sessionHandler.Start)
	api.Post("/vrsession/:id/end", jwt, sessionHandler.End)
	api.Get("/vrsession/user", jwt, sessionHandler.ListForUser)
	api.Get("/vrsession/:id", jwt, sessionHandler.Get)
}

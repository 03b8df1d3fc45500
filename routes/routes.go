package routes

import (
	"restring/auth"
	"restring/availability"
	"restring/bookings"
	"restring/inventory"
	"restring/livefeed"
	"restring/mailer"
	"restring/middleware"
	"restring/ratelim"
	"restring/seed"
	"restring/storage"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/verify", rl.Limit(auth.Verify))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/bookings", middleware.Authenticate(bookings.ListBookings))
	router.POST("/api/bookings", rl.Limit(bookings.CreateBooking))
	router.GET("/api/bookings/:id", bookings.GetBooking)
	router.PUT("/api/bookings/:id", middleware.Authenticate(bookings.UpdateBooking))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(bookings.DeleteBooking))
	router.POST("/api/bookings/:id/paid", middleware.Authenticate(bookings.MarkPaid))
	router.GET("/api/bookings/:id/receipt", middleware.Authenticate(bookings.Receipt))
}

func AddInventoryRoutes(router *httprouter.Router) {
	router.GET("/api/strings", inventory.ListStrings)
	router.POST("/api/strings", middleware.Authenticate(inventory.CreateString))
	router.GET("/api/strings/:id", inventory.GetString)
	router.PUT("/api/strings/:id", middleware.Authenticate(inventory.UpdateString))
	router.DELETE("/api/strings/:id", middleware.Authenticate(inventory.DeleteString))
}

func AddAvailabilityRoutes(router *httprouter.Router) {
	// Only GET and POST exist on /api/availability; the router answers
	// 405 for everything else.
	router.GET("/api/availability", availability.ListSlots)
	router.POST("/api/availability", middleware.Authenticate(availability.CreateSlot))
	router.DELETE("/api/availability/:id", middleware.Authenticate(availability.DeleteSlot))
}

func AddStorageRoutes(router *httprouter.Router) {
	router.POST("/api/upload", middleware.Authenticate(storage.Upload))
	router.GET("/api/images/:filename", storage.GetImageURL)
	router.GET("/media/:filename", storage.ServeMedia)
}

func AddMailRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/email", rl.Limit(mailer.SendEmail))
	router.POST("/api/contact", rl.Limit(mailer.Contact))
}

func AddSeedRoutes(router *httprouter.Router) {
	router.POST("/api/seed", middleware.Authenticate(seed.Seed))
}

func AddLivefeedRoutes(router *httprouter.Router, hub *livefeed.Hub) {
	router.GET("/ws/admin/bookings", middleware.Authenticate(hub.HandleWS))
}

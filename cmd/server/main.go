// Package main is the entry point for the HRMS onboarding service.
// It initializes the database, the session store, and all HTTP routes.
package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/database"
	"github.com/venkatesh481825/HRMS/internal/handlers"
	"github.com/venkatesh481825/HRMS/internal/middleware"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/security"
	"github.com/venkatesh481825/HRMS/internal/services"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Get()

	database.MustConnect(database.DefaultConfig(cfg.DatabaseURL))
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o750); err != nil {
		logrus.Fatalf("Failed to create upload directory: %v", err)
	}

	// Rate limiters for the endpoints an outsider can hammer.
	loginRateLimiter := security.NewRateLimiter(5, 12*time.Second) // 5/min
	defer loginRateLimiter.Stop()

	inviteRateLimiter := security.NewRateLimiter(20, 3*time.Second) // 20/min
	defer inviteRateLimiter.Stop()

	app := fiber.New()

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecureHeaders())

	store := session.New(session.Config{
		Expiration:     8 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieName:     "session_id",
		CookiePath:     "/",
	})

	mailer := services.NewSMTPMailer(cfg)
	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService()
	onboardingService := services.NewOnboardingService(cfg, tokenService, mailer)
	documentService := services.NewDocumentService(tokenService)
	credentialService := services.NewCredentialService(cfg, documentService, authService, mailer)
	attendanceService := services.NewAttendanceService()

	authHandler := handlers.NewAuthHandler(store)
	onboardingHandler := handlers.NewOnboardingHandler(cfg, onboardingService, documentService)
	hrHandler := handlers.NewHRHandler(documentService, credentialService, attendanceService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)

	// Root route: authenticated users land on their role's surface.
	app.Get("/", func(c *fiber.Ctx) error {
		sess, _ := store.Get(c)
		if role, ok := sess.Get("user_role").(string); ok {
			return c.Redirect(models.RedirectForRole(role))
		}
		return c.Redirect("/login")
	})

	// ========================================
	// Public Routes (No Authentication)
	// ========================================

	app.Post("/login",
		middleware.RateLimit(loginRateLimiter, "login"),
		authHandler.Login,
	)
	app.Get("/logout", authHandler.Logout)

	// Token-gated candidate flows. The link token is the credential.
	app.Get("/onboard/:token", onboardingHandler.ShowProfileForm)
	app.Post("/onboard/:token", onboardingHandler.CompleteProfile)
	app.Get("/documents/upload/:token", onboardingHandler.ShowUploadPage)
	app.Post("/documents/upload/:token", onboardingHandler.UploadDocument)

	// ========================================
	// HR Routes (Protected & Role-Based)
	// ========================================

	hr := app.Group("/hr",
		middleware.AuthRequired(store),
		middleware.HROnly(),
	)

	hr.Get("/dashboard", hrHandler.Dashboard)
	hr.Post("/candidates/invite",
		middleware.RateLimit(inviteRateLimiter, "invite"),
		onboardingHandler.InviteCandidate,
	)
	hr.Post("/documents/:id/review", hrHandler.ReviewDocument)
	hr.Post("/candidates/:id/credentials", hrHandler.IssueCredentials)
	hr.Get("/requests", hrHandler.PendingRequests)
	hr.Post("/permissions/:id/review", hrHandler.ReviewPermission)
	hr.Post("/regularizations/:id/approve", hrHandler.ApproveRegularization)

	// ========================================
	// Employee Routes (Protected)
	// ========================================

	employee := app.Group("/", middleware.AuthRequired(store))

	employee.Get("/employee/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name": c.Locals("user_name"),
			"role": c.Locals("user_role"),
		})
	})
	employee.Post("/attendance/check-in", attendanceHandler.CheckIn)
	employee.Post("/attendance/check-out", attendanceHandler.CheckOut)
	employee.Get("/attendance/me", attendanceHandler.MyAttendance)
	employee.Post("/attendance/permissions", attendanceHandler.ApplyPermission)
	employee.Post("/attendance/:id/regularizations", attendanceHandler.ApplyRegularization)

	logrus.Infof("Server starting on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

package handler

import (
	"database/sql"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagelift/internal/auth"
	"pagelift/internal/http/middleware"
	"pagelift/internal/service"
)

// Deps bundles everything the routes need. Handlers stay thin; business rules
// live in the services.
type Deps struct {
	DB        *sql.DB
	Sessions  *auth.Sessions
	Auth      *AuthHandler
	Brands    service.BrandService
	Content   service.ContentService
	Pages     service.PageService
	Analytics service.AnalyticsService
	Generator service.GeneratorService
	Metrics   prometheus.Gatherer
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Ops surface
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", swaggerUI)

	// Login flow
	app.Get("/login", loginPage)
	app.Get("/auth/login", d.Auth.Login)
	app.Get("/auth/callback", d.Auth.Callback)
	app.Get("/auth/logout", d.Auth.Logout)

	// Public pages
	app.Get("/p/:slug", ServePublishedPage(d.Pages))
	app.Post("/api/pages/:id/view", RecordPageView(d.Analytics))

	// Browser dashboard shells, session required
	pageAuth := middleware.PageAuth(d.Sessions)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(auth.DefaultRedirectPath, fiber.StatusFound)
	})
	for _, path := range []string{"/pages", "/generate", "/themes", "/content", "/settings"} {
		app.Get(path, pageAuth, dashboardShell)
	}

	// JSON API, session required
	api := app.Group("/api", middleware.APIAuth(d.Sessions))

	api.Get("/brands", ListBrands(d.Brands))
	api.Post("/brands", CreateBrand(d.Brands))
	api.Delete("/brands/:id", DeleteBrand(d.Brands))

	api.Get("/content", ListContent(d.Content))
	api.Post("/content", UploadContent(d.Content))
	api.Delete("/content/:id", DeleteContent(d.Content))

	api.Get("/pages", ListPages(d.Pages))
	api.Post("/pages", CreatePage(d.Pages))
	api.Get("/pages/:id", GetPage(d.Pages))
	api.Put("/pages/:id", UpdatePage(d.Pages))
	api.Delete("/pages/:id", DeletePage(d.Pages))
	api.Post("/pages/:id/publish", PublishPage(d.Pages))
	api.Get("/pages/:id/stats", PageStatsHandler(d.Pages))

	api.Post("/generate", GeneratePage(d.Generator))
}

func swaggerUI(c *fiber.Ctx) error {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
	return c.Type("html").SendString(html)
}

// loginPage is the minimal login shell; the SPA frontend replaces it in
// deployments that serve their own assets.
func loginPage(c *fiber.Ctx) error {
	html := `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><title>Sign in</title></head>
<body>
  <h1>Sign in</h1>
  <a href="/auth/login">Continue with Google</a>
</body>
</html>`
	return c.Type("html").SendString(html)
}

// dashboardShell is the placeholder document behind the authenticated
// dashboard routes.
func dashboardShell(c *fiber.Ctx) error {
	html := `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><title>Pagelift</title></head>
<body>
  <div id="app" data-path="` + c.Path() + `"></div>
</body>
</html>`
	return c.Type("html").SendString(html)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/service"
)

// NewApp returns the fiber app the handlers are mounted on. Path params are
// unescaped so display names such as "Supply%20Chain" resolve.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "hydrogen-ops-dashboard",
		UnescapePath:          true,
		DisableStartupMessage: true,
	})
}

func Register(app *fiber.App, svcs *service.Services, gatherer prometheus.Gatherer) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	g := app.Group("/")
	g.Get("views", func(c *fiber.Ctx) error {
		return c.JSON(domain.Views)
	})
	g.Get("views/:view", func(c *fiber.Ctx) error {
		view, err := domain.ParseView(c.Params("view"))
		if err != nil {
			return fail(c, err)
		}
		d, err := svcs.Dashboards.Render(view)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(d)
	})
	g.Post("views/:view/export", func(c *fiber.Ctx) error {
		view, err := domain.ParseView(c.Params("view"))
		if err != nil {
			return fail(c, err)
		}
		res, err := svcs.Exports.ExportDashboard(c.UserContext(), view)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})
	g.Get("views/:view/exports", func(c *fiber.Ctx) error {
		view, err := domain.ParseView(c.Params("view"))
		if err != nil {
			return fail(c, err)
		}
		keys, err := svcs.Exports.ListExports(c.UserContext(), view)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"view": view, "keys": keys})
	})

	g.Get("insights", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Dashboards.Insights())
	})
	g.Post("insights", func(c *fiber.Ctx) error {
		rep := svcs.Dashboards.Insights()
		if err := svcs.Archive.Save(c.UserContext(), rep); err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	})
	g.Get("insights/history", func(c *fiber.Ctx) error {
		items, err := svcs.Archive.Recent(c.UserContext(), c.QueryInt("limit", service.DefaultHistoryLimit))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(items)
	})
	g.Post("insights/publish", func(c *fiber.Ctx) error {
		rep := svcs.Dashboards.Insights()
		if err := svcs.Exports.PublishRecommendations(c.UserContext(), rep); err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(rep)
	})
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownView):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrArchiveDisabled), errors.Is(err, service.ErrExportDisabled):
		status = fiber.StatusServiceUnavailable
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/qurriahSam/elewa/internal/api/analytics/handler"
	learnhdl "github.com/qurriahSam/elewa/internal/api/learn/handler"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// SetupRoutes đăng ký toàn bộ route của ứng dụng
func (r *Router) SetupRoutes() error {
	prefix := NewRoutePrefix()
	v1 := r.app.Group(prefix.V1)

	// Health check
	r.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Analytics Module
	progressHandler, err := analyticshdl.NewGroupProgressHandler()
	if err != nil {
		return err
	}
	analytics := v1.Group("/analytics")
	analytics.Post("/measure-group-progress", progressHandler.MeasureGroupProgress)
	analytics.Get("/group-progress/:orgId", progressHandler.GetGroupProgress)
	analytics.Get("/config", progressHandler.GetAnalyticsConfig)
	analytics.Put("/config", progressHandler.SetAnalyticsConfig)

	// Learn Module
	enrolledUserHandler, err := learnhdl.NewEnrolledUserHandler()
	if err != nil {
		return err
	}
	learn := v1.Group("/learn")
	learn.Post("/enrolled-users/get-or-create", enrolledUserHandler.GetOrCreateEnrolledUser)

	return nil
}

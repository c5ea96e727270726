package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "param_center/internal/api/base/handler"
)

// RegisterSystem đăng ký các route hệ thống (health check, không yêu cầu auth)
func RegisterSystem(v1 fiber.Router, r *Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("create system handler: %w", err)
	}
	v1.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

// Package router đăng ký các route thuộc domain Parameter: panel CRUD và client config.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"param_center/internal/api/middleware"
	parameterhdl "param_center/internal/api/parameter/handler"
	apirouter "param_center/internal/api/router"
)

// Register đăng ký tất cả route parameter lên v1.
// Panel CRUD nằm dưới /parameters (Firebase auth), client config nằm dưới
// /config (static API token) để 2 middleware không chồng prefix lên nhau.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	parameterHandler, err := parameterhdl.NewParameterHandler()
	if err != nil {
		return fmt.Errorf("create parameter handler: %w", err)
	}

	// Client config routes: chỉ cần X-API-Token
	clientTokenMiddleware := middleware.ClientTokenMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/config", "GET", "/", []fiber.Handler{clientTokenMiddleware}, parameterHandler.GetConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/config", "GET", "/:key", []fiber.Handler{clientTokenMiddleware}, parameterHandler.GetConfigByKey)

	// Panel routes: yêu cầu Firebase ID token
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "POST", "/", []fiber.Handler{authMiddleware}, parameterHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "GET", "/", []fiber.Handler{authMiddleware}, parameterHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "GET", "/key/:key", []fiber.Handler{authMiddleware}, parameterHandler.FindByKey)
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "GET", "/:id", []fiber.Handler{authMiddleware}, parameterHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "PUT", "/:id", []fiber.Handler{authMiddleware}, parameterHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/parameters", "DELETE", "/:id", []fiber.Handler{authMiddleware}, parameterHandler.DeleteById)

	return nil
}

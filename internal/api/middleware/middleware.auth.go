package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"param_center/internal/common"
	"param_center/internal/global"
	"param_center/internal/logger"
	"param_center/internal/utility"
)

// AuthMiddleware middleware xác thực cho Fiber
// Verify Firebase ID token từ Authorization header và lưu thông tin user vào context
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		idToken := parts[1]

		// Verify token với Firebase
		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			// Chỉ log khi token không hợp lệ (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid Firebase ID token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Locals("user_email", email)
		}

		return c.Next()
	}
}

// ClientTokenMiddleware middleware xác thực cho các endpoint client (đọc config)
// So sánh header X-API-Token với token tĩnh trong cấu hình server
func ClientTokenMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		apiToken := c.Get("X-API-Token")
		if apiToken == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing X-API-Token header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// So sánh constant-time để tránh timing attack
		expected := global.MongoDB_ServerConfig.ClientAPIToken
		if subtle.ConstantTimeCompare([]byte(apiToken), []byte(expected)) != 1 {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("❌ [AUTH] Invalid X-API-Token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		return c.Next()
	}
}

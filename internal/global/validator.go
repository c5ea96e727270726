package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("param_key", validateParamKey)
	// Tag riêng, không dùng "country_code" vì validator/v10 có sẵn tag tên đó
	// (ISO 3166, case-sensitive) và bản đăng ký custom sẽ không có hiệu lực
	_ = Validate.RegisterValidation("country_selector", validateCountrySelector)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateParamKey kiểm tra định dạng key của tham số.
// Key không được rỗng sau khi trim và không chứa khoảng trắng bên trong.
func validateParamKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// validateCountrySelector kiểm tra country selector hợp lệ.
// Chấp nhận "default" (không phân biệt hoa thường) hoặc mã quốc gia 2 ký tự chữ cái.
// Chuỗi rỗng được coi là hợp lệ (mặc định về "default" ở tầng service).
func validateCountrySelector(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if strings.EqualFold(value, "default") {
		return true
	}
	if len(value) != 2 {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

package parametersvc

import (
	"encoding/json"
	"fmt"
	"strings"

	"param_center/internal/common"
)

// DefaultKey là key bắt buộc trong value map của mọi parameter
const DefaultKey = "default"

// NormalizeCountry chuẩn hóa country code về dạng canonical:
// chuỗi rỗng hoặc "default" (không phân biệt hoa thường) → "default",
// các country code còn lại → chữ hoa ("tr" → "TR")
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if country == "" || strings.EqualFold(country, DefaultKey) {
		return DefaultKey
	}
	return strings.ToUpper(country)
}

// IsScalar kiểm tra giá trị có phải scalar hợp lệ (string, number, bool) không.
// Map và slice không được phép làm giá trị của một country entry.
func IsScalar(v interface{}) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		json.Number:
		return true
	default:
		return false
	}
}

// isEmptyString kiểm tra scalar có phải chuỗi rỗng (sau khi trim) không.
// Chuỗi rỗng không mang thông tin cấu hình nên bị từ chối ở mọi write path.
func isEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func errEmptyStringValue(key string) error {
	return common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("Giá trị của country %q không được là chuỗi rỗng", key),
		common.StatusBadRequest,
		nil,
	)
}

// NormalizeValueMap chuẩn hóa input value về dạng map theo country:
//   - scalar → {"default": scalar}
//   - map → chuẩn hóa từng key theo NormalizeCountry, bắt buộc có entry "default" scalar
//   - các dạng khác (array, nil, nested map value) → lỗi validation
func NormalizeValueMap(raw interface{}) (map[string]interface{}, error) {
	if raw == nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Giá trị parameter không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	// Scalar → bọc thành map với key "default"
	if IsScalar(raw) {
		if isEmptyString(raw) {
			return nil, errEmptyStringValue(DefaultKey)
		}
		return map[string]interface{}{DefaultKey: raw}, nil
	}

	rawMap, ok := raw.(map[string]interface{})
	if !ok {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Giá trị parameter phải là scalar hoặc map theo country",
			common.StatusBadRequest,
			nil,
		)
	}

	normalized := make(map[string]interface{}, len(rawMap))
	for country, v := range rawMap {
		key := NormalizeCountry(country)
		if !IsScalar(v) {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Giá trị của country %q phải là scalar", key),
				common.StatusBadRequest,
				nil,
			)
		}
		if isEmptyString(v) {
			return nil, errEmptyStringValue(key)
		}
		if _, exists := normalized[key]; exists {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Country %q bị trùng sau khi chuẩn hóa", key),
				common.StatusBadRequest,
				nil,
			)
		}
		normalized[key] = v
	}

	if _, hasDefault := normalized[DefaultKey]; !hasDefault {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Value map phải chứa entry \"default\"",
			common.StatusBadRequest,
			nil,
		)
	}

	return normalized, nil
}

// MergeCountryValue merge giá trị của một country vào value map hiện tại (copy-on-write,
// không sửa map gốc). newValue == nil nghĩa là xóa override của country đó:
//   - xóa "default" không được phép (mọi parameter phải resolve được)
//   - xóa country chưa tồn tại là no-op (idempotent)
func MergeCountryValue(existing map[string]interface{}, country string, newValue interface{}) (map[string]interface{}, error) {
	key := NormalizeCountry(country)

	merged := make(map[string]interface{}, len(existing)+1)
	for k, v := range existing {
		merged[k] = v
	}

	// nil → xóa override
	if newValue == nil {
		if key == DefaultKey {
			return nil, common.ErrInvalidOperation
		}
		delete(merged, key)
		return merged, nil
	}

	if !IsScalar(newValue) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Giá trị của country %q phải là scalar", key),
			common.StatusBadRequest,
			nil,
		)
	}

	if isEmptyString(newValue) {
		return nil, errEmptyStringValue(key)
	}

	merged[key] = newValue
	return merged, nil
}

// ResolveEffectiveValue trả về giá trị hiệu lực cho một country:
// ưu tiên entry của country, fallback về "default". Trả về (nil, false)
// khi map không resolve được (thiếu "default" — write path đã chặn trường hợp này).
func ResolveEffectiveValue(value map[string]interface{}, country string) (interface{}, bool) {
	if len(value) == 0 {
		return nil, false
	}
	key := NormalizeCountry(country)
	if v, ok := value[key]; ok {
		return v, true
	}
	if v, ok := value[DefaultKey]; ok {
		return v, true
	}
	return nil, false
}

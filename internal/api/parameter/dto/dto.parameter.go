package parameterdto

import "encoding/json"

// ParameterCreateInput dữ liệu đầu vào khi tạo parameter
// Value chấp nhận 2 dạng: scalar (tự động bọc thành {"default": scalar})
// hoặc map đầy đủ theo country (bắt buộc có entry "default")
type ParameterCreateInput struct {
	ParameterKey string      `json:"parameterKey" validate:"required,param_key,no_xss"`
	Value        interface{} `json:"value"` // required; kiểm tra ở NormalizeValueMap (tag required từ chối cả 0/false hợp lệ)
	Description  string      `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
}

// ParameterUpdateInput dữ liệu đầu vào khi cập nhật parameter
// Value dùng json.RawMessage để phân biệt 3 trường hợp:
//   - field vắng mặt (len == 0): chỉ cập nhật metadata
//   - JSON null: xóa override của country được chọn
//   - scalar: upsert giá trị cho country được chọn
type ParameterUpdateInput struct {
	ParameterKey *string         `json:"parameterKey,omitempty" validate:"omitempty,param_key,no_xss"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,no_xss"`
	Value        json.RawMessage `json:"value,omitempty"`
}

// ParameterCountryQuery query param chọn country cho update/resolve
type ParameterCountryQuery struct {
	Country string `query:"country" validate:"omitempty,country_selector"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parameter đại diện cho một tham số cấu hình của hệ thống.
// Value là map các giá trị theo country code, luôn chứa entry "default";
// các key còn lại là country code dạng chữ hoa (vd: "TR", "US").
type Parameter struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của parameter

	ParameterKey string                 `json:"parameterKey" bson:"parameterKey" index:"unique"` // Tên tham số, duy nhất trong hệ thống
	Value        map[string]interface{} `json:"value" bson:"value"`                              // Giá trị theo country: {"default": ..., "TR": ...}
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"` // Mô tả tham số (tùy chọn)

	// ===== AUDIT METADATA =====
	CreatedBy string `json:"createdBy,omitempty" bson:"createdBy,omitempty"` // UID người tạo
	UpdatedBy string `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"` // UID người cập nhật gần nhất
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`                     // Thời gian tạo
	UpdatedAt int64  `json:"updatedAt" bson:"updatedAt"`                     // Thời gian cập nhật
}

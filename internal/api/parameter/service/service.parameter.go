package parametersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "param_center/internal/api/base/service"
	parameterdto "param_center/internal/api/parameter/dto"
	parametermodels "param_center/internal/api/parameter/models"
	"param_center/internal/common"
	"param_center/internal/global"
)

// ParameterService là service quản lý parameters
type ParameterService struct {
	*basesvc.BaseServiceMongoImpl[parametermodels.Parameter]
}

// NewParameterService tạo mới ParameterService
func NewParameterService() (*ParameterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Parameters)
	if !exist {
		return nil, fmt.Errorf("failed to get parameters collection: %v", common.ErrNotFound)
	}
	return &ParameterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[parametermodels.Parameter](collection),
	}, nil
}

// Create tạo mới một parameter từ input đã validate.
// parameterKey phải duy nhất (case-sensitive); unique index trên parameterKey
// là chốt chặn cuối cho race condition khi 2 request tạo cùng key đồng thời.
func (s *ParameterService) Create(ctx context.Context, input *parameterdto.ParameterCreateInput, actor string) (parametermodels.Parameter, error) {
	var zero parametermodels.Parameter

	// Chuẩn hóa value về dạng map theo country (scalar → {"default": scalar})
	valueMap, err := NormalizeValueMap(input.Value)
	if err != nil {
		return zero, err
	}

	// Kiểm tra trùng key trước để trả về message rõ ràng
	exists, err := s.DocumentExists(ctx, bson.M{"parameterKey": input.ParameterKey})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Parameter với key %q đã tồn tại", input.ParameterKey),
			common.StatusConflict,
			nil,
		)
	}

	parameter := parametermodels.Parameter{
		ParameterKey: input.ParameterKey,
		Value:        valueMap,
		Description:  input.Description,
		CreatedBy:    actor,
		UpdatedBy:    actor,
	}

	// Insert trùng key do race sẽ bị unique index chặn → ErrMongoDuplicate (409)
	return s.InsertOne(ctx, parameter)
}

// Update cập nhật một parameter theo id.
// Metadata (parameterKey, description) được merge theo field có mặt trong input.
// Value (nếu có mặt) chỉ tác động lên country được chọn qua query param:
// scalar → upsert override, JSON null → xóa override (xóa "default" bị từ chối).
func (s *ParameterService) Update(ctx context.Context, id primitive.ObjectID, input *parameterdto.ParameterUpdateInput, country string, actor string) (parametermodels.Parameter, error) {
	var zero parametermodels.Parameter

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{
		"updatedBy": actor,
	}

	if input.ParameterKey != nil && *input.ParameterKey != existing.ParameterKey {
		// Đổi key: kiểm tra key mới chưa bị dùng bởi document khác
		taken, err := s.DocumentExists(ctx, bson.M{
			"parameterKey": *input.ParameterKey,
			"_id":          bson.M{"$ne": id},
		})
		if err != nil {
			return zero, err
		}
		if taken {
			return zero, common.NewError(
				common.ErrCodeDatabaseQuery,
				fmt.Sprintf("Parameter với key %q đã tồn tại", *input.ParameterKey),
				common.StatusConflict,
				nil,
			)
		}
		set["parameterKey"] = *input.ParameterKey
	}

	if input.Description != nil {
		set["description"] = *input.Description
	}

	// Value có mặt trong body → merge vào country được chọn
	if len(input.Value) > 0 {
		newValue, err := decodeScalarOrNull(input.Value)
		if err != nil {
			return zero, err
		}

		merged, err := MergeCountryValue(existing.Value, country, newValue)
		if err != nil {
			return zero, err
		}
		set["value"] = merged
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// FindByKey tìm parameter theo parameterKey
func (s *ParameterService) FindByKey(ctx context.Context, key string) (parametermodels.Parameter, error) {
	return s.FindOne(ctx, bson.M{"parameterKey": key}, nil)
}

// decodeScalarOrNull decode raw JSON value của update input:
// "null" → nil (xóa override), scalar → giá trị scalar (số giữ dạng json.Number)
func decodeScalarOrNull(raw json.RawMessage) (interface{}, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return nil, common.ErrInvalidFormat
	}

	if !IsScalar(v) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Giá trị cập nhật phải là scalar hoặc null",
			common.StatusBadRequest,
			nil,
		)
	}

	// Chuỗi rỗng không phải là giá trị cấu hình hợp lệ
	if isEmptyString(v) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Giá trị cập nhật không được là chuỗi rỗng",
			common.StatusBadRequest,
			nil,
		)
	}

	return v, nil
}

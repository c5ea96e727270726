package parameterhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "param_center/internal/api/base/handler"
	parameterdto "param_center/internal/api/parameter/dto"
	parametermodels "param_center/internal/api/parameter/models"
	parametersvc "param_center/internal/api/parameter/service"
	"param_center/internal/common"
	"param_center/internal/logger"
	"param_center/internal/utility"
)

// ParameterHandler xử lý các request quản lý parameter (panel)
type ParameterHandler struct {
	*basehdl.BaseHandler[parametermodels.Parameter, parameterdto.ParameterCreateInput, parameterdto.ParameterUpdateInput]
	ParameterService *parametersvc.ParameterService
}

// NewParameterHandler tạo mới ParameterHandler
func NewParameterHandler() (*ParameterHandler, error) {
	parameterService, err := parametersvc.NewParameterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create parameter service: %v", err)
	}
	hdl := &ParameterHandler{
		ParameterService: parameterService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[parametermodels.Parameter, parameterdto.ParameterCreateInput, parameterdto.ParameterUpdateInput](parameterService.BaseServiceMongoImpl)
	return hdl, nil
}

// countryFromQuery lấy và validate query param country (rỗng → "default")
func (h *ParameterHandler) countryFromQuery(c fiber.Ctx) (string, error) {
	query := parameterdto.ParameterCountryQuery{Country: c.Query("country")}
	if err := h.ValidateInput(&query); err != nil {
		return "", err
	}
	return query.Country, nil
}

// actorFromContext lấy UID của operator đã xác thực từ context
func actorFromContext(c fiber.Ctx) string {
	if uid, ok := c.Locals("user_id").(string); ok {
		return uid
	}
	return ""
}

// InsertOne tạo mới một parameter
func (h *ParameterHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(parameterdto.ParameterCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.ParameterService.Create(c.Context(), input, actorFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("insert", "parameters", utility.ObjectID2String(created.ID), c, map[string]interface{}{
			"parameterKey": created.ParameterKey,
		})
		h.HandleResponse(c, created, nil)
		return nil
	})
}

// UpdateById cập nhật một parameter theo id.
// Query param country chọn country entry mà value trong body tác động tới.
func (h *ParameterHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		country, err := h.countryFromQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(parameterdto.ParameterUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ParameterService.Update(c.Context(), id, input, country, actorFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("update", "parameters", utility.ObjectID2String(updated.ID), c, map[string]interface{}{
			"parameterKey": updated.ParameterKey,
			"country":      parametersvc.NormalizeCountry(country),
		})
		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// FindByKey tìm parameter theo parameterKey
func (h *ParameterHandler) FindByKey(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		key := c.Params("key")
		if key == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		parameter, err := h.ParameterService.FindByKey(c.Context(), key)
		h.HandleResponse(c, parameter, err)
		return nil
	})
}

// DeleteById xóa một parameter theo id (ghi audit log trước khi trả về)
func (h *ParameterHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ParameterService.DeleteById(c.Context(), id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("delete", "parameters", utility.ObjectID2String(id), c, nil)
		h.HandleResponse(c, fiber.Map{"deleted": true}, nil)
		return nil
	})
}

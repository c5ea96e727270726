package parameterhdl

import (
	"github.com/gofiber/fiber/v3"

	"param_center/internal/common"
)

// GetConfig trả về toàn bộ config đã resolve cho client theo country.
// Kết quả là map phẳng parameterKey → giá trị hiệu lực.
func (h *ParameterHandler) GetConfig(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		country, err := h.countryFromQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		config, err := h.ParameterService.BuildConfig(c.Context(), country)
		h.HandleResponse(c, config, err)
		return nil
	})
}

// GetConfigByKey resolve giá trị hiệu lực của một parameter theo key và country
func (h *ParameterHandler) GetConfigByKey(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		key := c.Params("key")
		if key == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		country, err := h.countryFromQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		resolved, err := h.ParameterService.ResolveOne(c.Context(), key, country)
		h.HandleResponse(c, resolved, err)
		return nil
	})
}

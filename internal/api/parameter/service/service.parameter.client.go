package parametersvc

import (
	"context"

	parametermodels "param_center/internal/api/parameter/models"
	"param_center/internal/common"
)

// ResolvedParameter là kết quả resolve một parameter cho client
type ResolvedParameter struct {
	ParameterKey string      `json:"parameterKey"`
	Value        interface{} `json:"value"`
}

// BuildConfigFromParameters build config map phẳng cho một country từ danh sách parameters.
// Bản ghi thiếu key hoặc không resolve được giá trị sẽ bị bỏ qua (không làm hỏng cả config).
func BuildConfigFromParameters(parameters []parametermodels.Parameter, country string) map[string]interface{} {
	config := make(map[string]interface{}, len(parameters))
	for _, p := range parameters {
		if p.ParameterKey == "" {
			continue
		}
		value, ok := ResolveEffectiveValue(p.Value, country)
		if !ok {
			continue
		}
		config[p.ParameterKey] = value
	}
	return config
}

// BuildConfig build toàn bộ config đã resolve cho một country
func (s *ParameterService) BuildConfig(ctx context.Context, country string) (map[string]interface{}, error) {
	parameters, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return BuildConfigFromParameters(parameters, country), nil
}

// ResolveOne resolve giá trị hiệu lực của một parameter theo key và country
func (s *ParameterService) ResolveOne(ctx context.Context, key string, country string) (*ResolvedParameter, error) {
	parameter, err := s.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	value, ok := ResolveEffectiveValue(parameter.Value, country)
	if !ok {
		return nil, common.ErrNotFound
	}

	return &ResolvedParameter{
		ParameterKey: parameter.ParameterKey,
		Value:        value,
	}, nil
}

// Package parametersvc - Test build config đã resolve cho client.
package parametersvc

import (
	"testing"

	parametermodels "param_center/internal/api/parameter/models"
)

func TestBuildConfigFromParameters_CountryOverride(t *testing.T) {
	parameters := []parametermodels.Parameter{
		{ParameterKey: "a", Value: map[string]interface{}{"default": 1}},
		{ParameterKey: "b", Value: map[string]interface{}{"default": 2, "TR": 20}},
	}

	config := BuildConfigFromParameters(parameters, "tr")
	if config["a"] != 1 {
		t.Errorf("key a phải resolve về default, got: %v", config["a"])
	}
	if config["b"] != 20 {
		t.Errorf("key b phải resolve về override TR, got: %v", config["b"])
	}

	config = BuildConfigFromParameters(parameters, "us")
	if config["b"] != 2 {
		t.Errorf("key b với country us phải fallback về default, got: %v", config["b"])
	}
}

func TestBuildConfigFromParameters_SkipsUnresolvable(t *testing.T) {
	parameters := []parametermodels.Parameter{
		{ParameterKey: "good", Value: map[string]interface{}{"default": 1}},
		{ParameterKey: "", Value: map[string]interface{}{"default": 2}},
		{ParameterKey: "broken", Value: map[string]interface{}{"TR": 3}},
	}

	config := BuildConfigFromParameters(parameters, "us")
	if len(config) != 1 {
		t.Errorf("config chỉ được chứa bản ghi resolve được, got: %v", config)
	}
	if config["good"] != 1 {
		t.Errorf("key good phải có mặt, got: %v", config)
	}
	if _, ok := config["broken"]; ok {
		t.Error("bản ghi thiếu default không được xuất hiện trong config")
	}
}

func TestBuildConfigFromParameters_Empty(t *testing.T) {
	config := BuildConfigFromParameters(nil, "TR")
	if config == nil {
		t.Fatal("config phải là map rỗng, không phải nil")
	}
	if len(config) != 0 {
		t.Errorf("config từ danh sách rỗng phải rỗng, got: %v", config)
	}
}

// Package parametersvc - Test decode giá trị update từ raw JSON.
package parametersvc

import (
	"encoding/json"
	"testing"
)

func TestDecodeScalarOrNull(t *testing.T) {
	v, err := decodeScalarOrNull(json.RawMessage(`"hello"`))
	if err != nil {
		t.Fatalf("decode string trả về lỗi: %v", err)
	}
	if v != "hello" {
		t.Errorf("decode string phải trả về %q, got: %v", "hello", v)
	}

	v, err = decodeScalarOrNull(json.RawMessage(`42`))
	if err != nil {
		t.Fatalf("decode số trả về lỗi: %v", err)
	}
	if n, ok := v.(json.Number); !ok || n.String() != "42" {
		t.Errorf("decode số phải trả về json.Number 42, got: %T %v", v, v)
	}

	v, err = decodeScalarOrNull(json.RawMessage(`true`))
	if err != nil {
		t.Fatalf("decode bool trả về lỗi: %v", err)
	}
	if v != true {
		t.Errorf("decode bool phải trả về true, got: %v", v)
	}

	v, err = decodeScalarOrNull(json.RawMessage(`null`))
	if err != nil {
		t.Fatalf("decode null trả về lỗi: %v", err)
	}
	if v != nil {
		t.Errorf("decode null phải trả về nil, got: %v", v)
	}

	if _, err := decodeScalarOrNull(json.RawMessage(`""`)); err == nil {
		t.Error("decode chuỗi rỗng phải bị từ chối")
	}
	if _, err := decodeScalarOrNull(json.RawMessage(`"  "`)); err == nil {
		t.Error("decode chuỗi toàn whitespace phải bị từ chối")
	}
	if _, err := decodeScalarOrNull(json.RawMessage(`{"a":1}`)); err == nil {
		t.Error("decode object phải bị từ chối")
	}
	if _, err := decodeScalarOrNull(json.RawMessage(`[1,2]`)); err == nil {
		t.Error("decode array phải bị từ chối")
	}
	if _, err := decodeScalarOrNull(json.RawMessage(`not-json`)); err == nil {
		t.Error("decode JSON hỏng phải bị từ chối")
	}
}

func TestMergeAppliesJSONNumber(t *testing.T) {
	// Giá trị số từ request body đi qua decoder UseNumber, merge phải giữ nguyên dạng
	existing := map[string]interface{}{"default": json.Number("1")}
	merged, err := MergeCountryValue(existing, "tr", json.Number("2.5"))
	if err != nil {
		t.Fatalf("merge json.Number trả về lỗi: %v", err)
	}
	if merged["TR"] != json.Number("2.5") {
		t.Errorf("override TR phải là json.Number 2.5, got: %v", merged["TR"])
	}
}

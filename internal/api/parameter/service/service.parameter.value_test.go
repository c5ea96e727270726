// Package parametersvc - Test merge engine: chuẩn hóa country, merge override, resolve giá trị.
package parametersvc

import (
	"errors"
	"testing"

	"param_center/internal/common"
)

func TestNormalizeCountry(t *testing.T) {
	cases := map[string]string{
		"":        "default",
		"default": "default",
		"DEFAULT": "default",
		"Default": "default",
		"tr":      "TR",
		"TR":      "TR",
		" us ":    "US",
	}
	for input, want := range cases {
		if got := NormalizeCountry(input); got != want {
			t.Errorf("NormalizeCountry(%q) = %q, muốn %q", input, got, want)
		}
	}
}

func TestNormalizeValueMap_ScalarWrapsDefault(t *testing.T) {
	m, err := NormalizeValueMap("hello")
	if err != nil {
		t.Fatalf("NormalizeValueMap scalar trả về lỗi: %v", err)
	}
	if m[DefaultKey] != "hello" {
		t.Errorf("scalar phải được bọc vào entry default, got: %v", m)
	}
	if len(m) != 1 {
		t.Errorf("map kết quả phải có đúng 1 entry, got: %v", m)
	}
}

func TestNormalizeValueMap_MapNormalizesKeys(t *testing.T) {
	m, err := NormalizeValueMap(map[string]interface{}{
		"Default": 10,
		"tr":      20,
	})
	if err != nil {
		t.Fatalf("NormalizeValueMap map trả về lỗi: %v", err)
	}
	if m[DefaultKey] != 10 {
		t.Errorf("entry Default phải được chuẩn hóa về default, got: %v", m)
	}
	if m["TR"] != 20 {
		t.Errorf("entry tr phải được chuẩn hóa về TR, got: %v", m)
	}
}

func TestNormalizeValueMap_MissingDefaultRejected(t *testing.T) {
	_, err := NormalizeValueMap(map[string]interface{}{"TR": 1})
	if err == nil {
		t.Fatal("map thiếu entry default phải bị từ chối")
	}
}

func TestNormalizeValueMap_NonScalarEntryRejected(t *testing.T) {
	_, err := NormalizeValueMap(map[string]interface{}{
		"default": map[string]interface{}{"nested": 1},
	})
	if err == nil {
		t.Fatal("giá trị nested map phải bị từ chối")
	}
}

func TestNormalizeValueMap_EmptyStringRejected(t *testing.T) {
	if _, err := NormalizeValueMap(""); err == nil {
		t.Fatal("scalar chuỗi rỗng phải bị từ chối")
	}
	if _, err := NormalizeValueMap("   "); err == nil {
		t.Fatal("scalar toàn whitespace phải bị từ chối")
	}
	_, err := NormalizeValueMap(map[string]interface{}{
		"default": "dark",
		"TR":      "",
	})
	if err == nil {
		t.Fatal("entry chuỗi rỗng trong value map phải bị từ chối")
	}
}

func TestNormalizeValueMap_ArrayRejected(t *testing.T) {
	_, err := NormalizeValueMap([]interface{}{1, 2})
	if err == nil {
		t.Fatal("giá trị array phải bị từ chối")
	}
}

func TestMergeCountryValue_UpsertOverride(t *testing.T) {
	existing := map[string]interface{}{"default": 1}
	merged, err := MergeCountryValue(existing, "tr", 2)
	if err != nil {
		t.Fatalf("MergeCountryValue trả về lỗi: %v", err)
	}
	if merged["TR"] != 2 {
		t.Errorf("override TR phải được thêm, got: %v", merged)
	}
	if merged["default"] != 1 {
		t.Errorf("entry default không được thay đổi, got: %v", merged)
	}
	// Copy-on-write: map gốc không bị sửa
	if _, ok := existing["TR"]; ok {
		t.Error("map gốc không được bị sửa bởi merge")
	}
}

func TestMergeCountryValue_DeleteOverride(t *testing.T) {
	existing := map[string]interface{}{"default": 1, "TR": 2}
	merged, err := MergeCountryValue(existing, "TR", nil)
	if err != nil {
		t.Fatalf("xóa override trả về lỗi: %v", err)
	}
	if _, ok := merged["TR"]; ok {
		t.Errorf("override TR phải bị xóa, got: %v", merged)
	}
	if merged["default"] != 1 {
		t.Errorf("entry default phải được giữ, got: %v", merged)
	}
}

func TestMergeCountryValue_DeleteIsIdempotent(t *testing.T) {
	existing := map[string]interface{}{"default": 1}
	merged, err := MergeCountryValue(existing, "TR", nil)
	if err != nil {
		t.Fatalf("xóa override không tồn tại phải là no-op, lỗi: %v", err)
	}
	if len(merged) != 1 {
		t.Errorf("map kết quả phải không đổi, got: %v", merged)
	}
}

func TestMergeCountryValue_DeleteDefaultRejected(t *testing.T) {
	existing := map[string]interface{}{"default": 1, "TR": 2}
	_, err := MergeCountryValue(existing, "default", nil)
	if err == nil {
		t.Fatal("xóa entry default phải bị từ chối")
	}
	if !errors.Is(err, common.ErrInvalidOperation) {
		t.Errorf("lỗi phải là ErrInvalidOperation, got: %v", err)
	}
	// Cả khi country viết hoa
	if _, err := MergeCountryValue(existing, "DEFAULT", nil); err == nil {
		t.Fatal("xóa default (viết hoa) phải bị từ chối")
	}
}

func TestMergeCountryValue_AddThenDeleteRoundTrip(t *testing.T) {
	base := map[string]interface{}{"default": "a"}
	added, err := MergeCountryValue(base, "us", "b")
	if err != nil {
		t.Fatalf("thêm override trả về lỗi: %v", err)
	}
	removed, err := MergeCountryValue(added, "US", nil)
	if err != nil {
		t.Fatalf("xóa override trả về lỗi: %v", err)
	}
	if len(removed) != len(base) || removed["default"] != "a" {
		t.Errorf("thêm rồi xóa phải trả về map tương đương ban đầu, got: %v", removed)
	}
}

func TestMergeCountryValue_NonScalarRejected(t *testing.T) {
	existing := map[string]interface{}{"default": 1}
	_, err := MergeCountryValue(existing, "TR", map[string]interface{}{"x": 1})
	if err == nil {
		t.Fatal("giá trị non-scalar phải bị từ chối")
	}
}

func TestMergeCountryValue_EmptyStringRejected(t *testing.T) {
	existing := map[string]interface{}{"default": "dark"}
	if _, err := MergeCountryValue(existing, "TR", ""); err == nil {
		t.Fatal("upsert chuỗi rỗng phải bị từ chối")
	}
	if _, err := MergeCountryValue(existing, "default", ""); err == nil {
		t.Fatal("upsert chuỗi rỗng vào default phải bị từ chối")
	}
	// Map gốc không bị ảnh hưởng
	if existing["default"] != "dark" {
		t.Errorf("map gốc không được bị sửa, got: %v", existing)
	}
}

func TestResolveEffectiveValue_CountryHit(t *testing.T) {
	value := map[string]interface{}{"default": 10, "TR": 20}
	got, ok := ResolveEffectiveValue(value, "tr")
	if !ok {
		t.Fatal("resolve country có override phải thành công")
	}
	if got != 20 {
		t.Errorf("resolve tr phải trả về override TR, got: %v", got)
	}
}

func TestResolveEffectiveValue_FallbackToDefault(t *testing.T) {
	value := map[string]interface{}{"default": 10, "TR": 20}
	got, ok := ResolveEffectiveValue(value, "us")
	if !ok {
		t.Fatal("resolve country không có override phải fallback về default")
	}
	if got != 10 {
		t.Errorf("resolve us phải trả về default, got: %v", got)
	}
}

func TestResolveEffectiveValue_Idempotent(t *testing.T) {
	value := map[string]interface{}{"default": 10, "TR": 20}
	first, ok1 := ResolveEffectiveValue(value, "TR")
	second, ok2 := ResolveEffectiveValue(value, "TR")
	if ok1 != ok2 || first != second {
		t.Errorf("resolve lặp lại phải cho cùng kết quả: (%v,%v) vs (%v,%v)", first, ok1, second, ok2)
	}
}

func TestResolveEffectiveValue_MissingDefault(t *testing.T) {
	value := map[string]interface{}{"TR": 20}
	if _, ok := ResolveEffectiveValue(value, "us"); ok {
		t.Error("map thiếu default không được resolve cho country khác")
	}
	if _, ok := ResolveEffectiveValue(nil, "TR"); ok {
		t.Error("map rỗng không được resolve")
	}
}

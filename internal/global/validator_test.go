// Package global - Test các custom validator: param_key, country_selector, no_xss.
package global

import "testing"

func init() {
	InitValidator()
}

func TestValidateParamKey(t *testing.T) {
	valid := []string{"free_gift", "min_version", "a", "max-retry.count"}
	for _, v := range valid {
		if err := Validate.Var(v, "param_key"); err != nil {
			t.Errorf("param_key %q phải hợp lệ, lỗi: %v", v, err)
		}
	}

	invalid := []string{"", "   ", "free gift", "a\tb"}
	for _, v := range invalid {
		if err := Validate.Var(v, "param_key"); err == nil {
			t.Errorf("param_key %q phải bị từ chối", v)
		}
	}
}

func TestValidateCountrySelector(t *testing.T) {
	// Case-insensitive: "tr" và "default" phải được chấp nhận như "TR"/"DEFAULT"
	valid := []string{"", "default", "DEFAULT", "tr", "TR", "us"}
	for _, v := range valid {
		if err := Validate.Var(v, "country_selector"); err != nil {
			t.Errorf("country_selector %q phải hợp lệ, lỗi: %v", v, err)
		}
	}

	invalid := []string{"t", "tur", "t1", "12"}
	for _, v := range invalid {
		if err := Validate.Var(v, "country_selector"); err == nil {
			t.Errorf("country_selector %q phải bị từ chối", v)
		}
	}
}

func TestValidateNoXSS(t *testing.T) {
	if err := Validate.Var("giá trị bình thường", "no_xss"); err != nil {
		t.Errorf("chuỗi bình thường phải hợp lệ, lỗi: %v", err)
	}
	if err := Validate.Var("<script>alert(1)</script>", "no_xss"); err == nil {
		t.Error("chuỗi chứa script tag phải bị từ chối")
	}
}

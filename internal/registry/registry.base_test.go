// Package registry - Test registry pattern: register, get, get-or-create, clear.
package registry

import (
	"fmt"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả về isNew=true")
	}

	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ phải trả về isNew=false")
	}

	v, exists := r.Get("a")
	if !exists || v != 2 {
		t.Errorf("Get phải trả về giá trị mới nhất, got: %v (exists=%v)", v, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get key không tồn tại phải trả về exists=false")
	}

	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải bị từ chối")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0

	creator := func() (string, error) {
		created++
		return "value", nil
	}

	v, err := r.GetOrCreate("x", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả về lỗi: %v", err)
	}
	if v != "value" || created != 1 {
		t.Errorf("GetOrCreate lần đầu phải gọi creator đúng 1 lần, got: %v (created=%d)", v, created)
	}

	_, err = r.GetOrCreate("x", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lần 2 trả về lỗi: %v", err)
	}
	if created != 1 {
		t.Errorf("GetOrCreate key đã tồn tại không được gọi lại creator, created=%d", created)
	}

	_, err = r.GetOrCreate("bad", func() (string, error) {
		return "", fmt.Errorf("creator lỗi")
	})
	if err == nil {
		t.Error("GetOrCreate với creator lỗi phải trả về lỗi")
	}
	if _, exists := r.Get("bad"); exists {
		t.Error("item không được đăng ký khi creator lỗi")
	}
}

func TestClearAndClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	deleted, err := r.Clear("a", nil)
	if err != nil || !deleted {
		t.Errorf("Clear item tồn tại phải trả về deleted=true, got: %v, lỗi: %v", deleted, err)
	}

	deleted, err = r.Clear("a", nil)
	if err != nil || deleted {
		t.Errorf("Clear item đã xóa phải trả về deleted=false, got: %v, lỗi: %v", deleted, err)
	}

	cleaned := 0
	count, err := r.ClearAll(func(v int) error {
		cleaned++
		return nil
	})
	if err != nil {
		t.Fatalf("ClearAll trả về lỗi: %v", err)
	}
	if count != 1 || cleaned != 1 {
		t.Errorf("ClearAll phải xóa 1 item còn lại và gọi cleanup, count=%d cleaned=%d", count, cleaned)
	}
}

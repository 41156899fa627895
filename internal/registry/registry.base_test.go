package registry

import "testing"

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lại lỗi: %v", err)
	}
	if isNew {
		t.Error("Register key đã tồn tại phải trả về isNew = false")
	}

	v, ok := r.Get("a")
	if !ok || v != 2 {
		t.Errorf("Get(a) = (%d, %v), muốn (2, true)", v, ok)
	}
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	if _, ok := r.Get("missing"); ok {
		t.Error("Get key không tồn tại phải trả về ok = false")
	}
}

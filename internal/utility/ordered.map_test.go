package utility

import (
	"testing"
)

func TestOrderedMap_GiuThuTuChenVao(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("c", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	keys := m.Keys()
	want := []string{"c", "a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() trả về %d keys, muốn %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, muốn %q", i, keys[i], k)
		}
	}
}

func TestOrderedMap_SetKeyDaTonTaiKhongDoiViTri(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10) // update, không được đẩy "a" về cuối

	keys := m.Keys()
	if keys[0] != "a" || keys[1] != "b" {
		t.Errorf("thứ tự keys sau update = %v, muốn [a b]", keys)
	}

	v, ok := m.Get("a")
	if !ok || v != 10 {
		t.Errorf("Get(a) = (%d, %v), muốn (10, true)", v, ok)
	}
}

func TestOrderedMap_GetOrCreate(t *testing.T) {
	m := NewOrderedMap[[]string]()

	created := 0
	bucket := m.GetOrCreate("x", func() []string {
		created++
		return []string{}
	})
	if bucket == nil {
		t.Fatal("GetOrCreate trả về nil cho bucket mới")
	}

	m.GetOrCreate("x", func() []string {
		created++
		return []string{}
	})
	if created != 1 {
		t.Errorf("creator được gọi %d lần cho cùng một key, muốn 1", created)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, muốn 1", m.Len())
	}
}

func TestOrderedMap_GetKeyKhongTonTai(t *testing.T) {
	m := NewOrderedMap[int]()
	v, ok := m.Get("missing")
	if ok || v != 0 {
		t.Errorf("Get(missing) = (%d, %v), muốn (0, false)", v, ok)
	}
}

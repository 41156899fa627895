package utility

import (
	"reflect"
	"testing"
)

func TestUnique_KhuTrungLapGiuThuTu(t *testing.T) {
	got := Unique([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique = %v, muốn %v", got, want)
	}
}

func TestUnique_SliceRong(t *testing.T) {
	got := Unique([]string{})
	if len(got) != 0 {
		t.Errorf("Unique slice rỗng trả về %v, muốn rỗng", got)
	}
}

func TestContains(t *testing.T) {
	s := []string{"a", "b"}
	if !Contains(s, "a") {
		t.Error("Contains(s, a) = false, muốn true")
	}
	if Contains(s, "z") {
		t.Error("Contains(s, z) = true, muốn false")
	}
}

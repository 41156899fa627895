package models

import "testing"

func TestPlatformFromEndUserID(t *testing.T) {
	cases := []struct {
		endUserID string
		want      PlatformType
	}{
		{"whatsapp_254700000001", PlatformTypeWhatsApp},
		{"messenger_9912345", PlatformTypeMessenger},
		{"telegram_123", PlatformTypeUnknown},
		{"khongcoprefix", PlatformTypeUnknown},
		{"", PlatformTypeUnknown},
	}

	for _, c := range cases {
		if got := PlatformFromEndUserID(c.endUserID); got != c.want {
			t.Errorf("PlatformFromEndUserID(%q) = %q, muốn %q", c.endUserID, got, c.want)
		}
	}
}

func TestLinkedEndUserID_TheoPlatform(t *testing.T) {
	u := EnrolledEndUser{
		Platform:        PlatformTypeMessenger,
		WhatsappUserID:  "whatsapp_1",
		MessengerUserID: "messenger_2",
	}
	if got := u.LinkedEndUserID(); got != "messenger_2" {
		t.Errorf("LinkedEndUserID = %q, muốn messenger_2", got)
	}

	u.Platform = PlatformTypeWhatsApp
	if got := u.LinkedEndUserID(); got != "whatsapp_1" {
		t.Errorf("LinkedEndUserID = %q, muốn whatsapp_1", got)
	}
}

func TestLinkedEndUserID_ThieuPlatformUuTienWhatsApp(t *testing.T) {
	u := EnrolledEndUser{
		WhatsappUserID:  "whatsapp_1",
		MessengerUserID: "messenger_2",
	}
	if got := u.LinkedEndUserID(); got != "whatsapp_1" {
		t.Errorf("LinkedEndUserID = %q, muốn whatsapp_1", got)
	}

	u.WhatsappUserID = ""
	if got := u.LinkedEndUserID(); got != "messenger_2" {
		t.Errorf("LinkedEndUserID = %q, muốn messenger_2", got)
	}
}

func TestLinkedEndUserID_ChuaLienKetKenhNao(t *testing.T) {
	u := EnrolledEndUser{}
	if got := u.LinkedEndUserID(); got != "" {
		t.Errorf("LinkedEndUserID = %q, muốn chuỗi rỗng", got)
	}
}

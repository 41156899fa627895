// Package models - các model thuộc domain Learn (học viên, lớp học, end user hội thoại).
package models

import "strings"

// PlatformType là kênh nhắn tin mà end user dùng để trò chuyện với bot.
// Platform được resolve một lần lúc ingestion từ prefix của end user id
// (vd: "whatsapp_254700000001") và lưu kèm document, không parse lại mỗi lần lookup.
type PlatformType string

const (
	PlatformTypeWhatsApp  PlatformType = "whatsapp"
	PlatformTypeMessenger PlatformType = "messenger"
	PlatformTypeUnknown   PlatformType = ""
)

// PrefixToPlatformType chuyển prefix của end user id sang PlatformType
func PrefixToPlatformType(prefix string) PlatformType {
	switch prefix {
	case "whatsapp":
		return PlatformTypeWhatsApp
	case "messenger":
		return PlatformTypeMessenger
	default:
		return PlatformTypeUnknown
	}
}

// PlatformFromEndUserID resolve PlatformType từ một end user id đầy đủ
func PlatformFromEndUserID(endUserID string) PlatformType {
	prefix, _, found := strings.Cut(endUserID, "_")
	if !found {
		return PlatformTypeUnknown
	}
	return PrefixToPlatformType(prefix)
}

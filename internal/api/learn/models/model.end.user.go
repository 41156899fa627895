package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EndUser là danh tính hội thoại của một người dùng trên kênh nhắn tin.
// Được tạo bởi webhook ingestion của bot engine khi tin nhắn đầu tiên đến;
// EndUserID mang prefix kênh (vd: "whatsapp_254700000001").
type EndUser struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                              // MongoDB _id
	EndUserID    string             `json:"endUserId" bson:"endUserId" index:"compound:enduser_org_unique,unique"`          // ID end user kèm prefix kênh
	Platform     PlatformType       `json:"platform" bson:"platform"`                                                       // Kênh nhắn tin, resolve một lần lúc ingestion
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`                                           // Tên hiển thị
	PhoneNumber  string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`                             // Số điện thoại (WhatsApp)
	CurrentStory string             `json:"currentStory,omitempty" bson:"currentStory,omitempty"`                           // Story/khóa học đang trò chuyện

	// ===== ORGANIZATION =====
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1;compound:enduser_org_unique,unique"` // Tổ chức sở hữu dữ liệu

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

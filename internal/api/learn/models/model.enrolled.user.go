package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrolledEndUserStatus trạng thái ghi danh của học viên
const (
	EnrolledEndUserStatusActive   = "active"
	EnrolledEndUserStatusInactive = "inactive"
	EnrolledEndUserStatusPaused   = "paused"
)

// StartedCourse một khóa học mà học viên đã bắt đầu
type StartedCourse struct {
	CourseID string `json:"courseId" bson:"courseId"` // ID khóa học
}

// EnrolledEndUser là học viên đã ghi danh vào một tổ chức.
// Bản ghi thuộc sở hữu của tổ chức; được tạo/cập nhật bởi flow enrollment và
// bot engine, pipeline analytics chỉ đọc.
type EnrolledEndUser struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                          // MongoDB _id
	Name             string             `json:"name" bson:"name"`                                           // Tên học viên
	PhoneNumber      string             `json:"phoneNumber" bson:"phoneNumber"`                             // Số điện thoại liên hệ
	ClassID          string             `json:"classId" bson:"classId" index:"single:1"`                    // ID lớp học (tham chiếu Classroom.ClassID)
	CurrentCourse    string             `json:"currentCourse" bson:"currentCourse"`                         // Khóa học hiện tại
	WhatsappUserID   string             `json:"whatsappUserId,omitempty" bson:"whatsappUserId,omitempty" index:"single:1"`   // ID end user trên WhatsApp (rỗng nếu không dùng kênh này)
	MessengerUserID  string             `json:"messengerUserId,omitempty" bson:"messengerUserId,omitempty" index:"single:1"` // ID end user trên Messenger
	Platform         PlatformType       `json:"platform" bson:"platform"`                                   // Kênh nhắn tin, resolve một lần lúc enrollment
	CompletedCourses []string           `json:"completedCourses" bson:"completedCourses"`                   // Danh sách ID khóa học đã hoàn thành
	Courses          []StartedCourse    `json:"courses" bson:"courses"`                                     // Danh sách khóa học đã bắt đầu
	Status           string             `json:"status" bson:"status" index:"single:1"`                      // Trạng thái: active | inactive | paused

	// ===== ORGANIZATION =====
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1"` // Tổ chức sở hữu dữ liệu

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo (unix millis)
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật (unix millis)
}

// LinkedEndUserID trả về id end user theo platform của học viên.
// Trả về chuỗi rỗng khi học viên chưa được liên kết với kênh nhắn tin nào
// (các học viên này không join được với lịch sử hội thoại).
func (u *EnrolledEndUser) LinkedEndUserID() string {
	switch u.Platform {
	case PlatformTypeMessenger:
		return u.MessengerUserID
	case PlatformTypeWhatsApp:
		return u.WhatsappUserID
	default:
		// Dữ liệu enrollment cũ có thể thiếu platform: ưu tiên WhatsApp như mặc định
		if u.WhatsappUserID != "" {
			return u.WhatsappUserID
		}
		return u.MessengerUserID
	}
}

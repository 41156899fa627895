package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseProgressEvent một sự kiện tiến độ khóa học của end user, do bot engine
// append mỗi khi người học hoàn thành một module/milestone trong story.
// Append-only; pipeline analytics chỉ đọc (sự kiện mới nhất tại một thời điểm
// cho biết vị trí hiện tại của người học).
type CourseProgressEvent struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                     // MongoDB _id
	EndUserID   string             `json:"endUserId" bson:"endUserId" index:"single:1;compound:enduser_time"`     // ID end user kèm prefix kênh
	CourseID    string             `json:"courseId" bson:"courseId" index:"single:1"`                             // Khóa học
	ClassID     string             `json:"classId,omitempty" bson:"classId,omitempty"`                            // Lớp học tại thời điểm sự kiện
	MilestoneID string             `json:"milestoneId" bson:"milestoneId"`                                        // Module/milestone hiện tại trong khóa học
	Completed   bool               `json:"completed" bson:"completed"`                                            // true khi milestone này kết thúc khóa học
	EventTime   int64              `json:"eventTime" bson:"eventTime" index:"single:-1;compound:enduser_time"`    // Thời điểm sự kiện (unix millis)

	// ===== ORGANIZATION =====
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1"` // Tổ chức sở hữu dữ liệu

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classroom lớp học của một tổ chức. Dữ liệu tham chiếu, chỉ đọc đối với pipeline analytics.
type Classroom struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                            // MongoDB _id
	ClassID     string             `json:"classId" bson:"classId" index:"compound:class_org_unique,unique"`              // ID lớp học dùng để join với EnrolledEndUser.ClassID
	ClassName   string             `json:"className" bson:"className"`                                                   // Tên lớp học
	Description string             `json:"description,omitempty" bson:"description,omitempty"`                           // Mô tả
	CourseID    string             `json:"courseId,omitempty" bson:"courseId,omitempty"`                                 // Khóa học gán cho lớp (nếu có)

	// ===== ORGANIZATION =====
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1;compound:class_org_unique,unique"` // Tổ chức sở hữu dữ liệu

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

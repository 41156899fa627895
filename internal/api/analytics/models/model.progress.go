// Package models - các model thuộc domain Analytics (group progress).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeasureGroupProgressCommand lệnh kích hoạt một lần đo group progress.
// Interval là unix millis của thời điểm đo; 0 nghĩa là "bây giờ".
type MeasureGroupProgressCommand struct {
	Interval int64 `json:"interval,omitempty"`
}

// ProgressParticipant danh tính học viên trong một bản ghi tiến độ
type ProgressParticipant struct {
	ID          string `json:"id" bson:"id"`                                         // ID học viên (hex của EnrolledEndUser._id)
	Name        string `json:"name" bson:"name"`                                     // Tên học viên
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`   // Số điện thoại liên hệ
}

// ProgressClassroom tham chiếu lớp học trong một bản ghi tiến độ
type ProgressClassroom struct {
	ID        string `json:"id" bson:"id"`               // Classroom.ClassID
	ClassName string `json:"className" bson:"className"` // Tên lớp học
}

// ParticipantProgressMilestone tiến độ của một học viên tại một thời điểm:
// khóa học, lớp học, milestone (module hiện tại) và trạng thái hoàn thành.
// Có thể vắng mặt (nil) khi người học chưa có lịch sử tiến độ - không phải lỗi.
type ParticipantProgressMilestone struct {
	CourseID    string              `json:"courseId" bson:"courseId"`       // Khóa học
	Classroom   ProgressClassroom   `json:"classroom" bson:"classroom"`     // Lớp học của học viên
	MilestoneID string              `json:"milestoneId" bson:"milestoneId"` // Module/milestone hiện tại
	Completed   bool                `json:"completed" bson:"completed"`     // true khi học viên đã qua milestone kết thúc khóa
	Participant ProgressParticipant `json:"participant" bson:"participant"` // Danh tính học viên
}

// UsersProgressMilestone một nhóm học viên theo khóa học (grouping phẳng).
// Derived, chỉ tồn tại trong một lần chạy; không bao giờ persist độc lập.
type UsersProgressMilestone struct {
	ID           string                         `json:"id" bson:"id"`                     // Course ID
	Participants []ParticipantProgressMilestone `json:"participants" bson:"participants"` // Bản ghi tiến độ theo thứ tự input
}

// MilestoneMeasurement bucket milestone ở lá của grouping lồng nhau
type MilestoneMeasurement struct {
	ID           string                `json:"id" bson:"id"`                     // Milestone ID
	Participants []ProgressParticipant `json:"participants" bson:"participants"` // Danh tính học viên tại milestone này
}

// ClassroomProgressMilestone nhóm milestone theo lớp học
type ClassroomProgressMilestone struct {
	ID           string                 `json:"id" bson:"id"`                     // Classroom ID
	Measurements []MilestoneMeasurement `json:"measurements" bson:"measurements"` // Các bucket milestone trong lớp
}

// GroupedProgressMilestone grouping 3 cấp: khóa học → lớp học → milestone.
// Derived, chỉ tồn tại trong một lần chạy.
type GroupedProgressMilestone struct {
	ID         string                       `json:"id" bson:"id"`                 // Course ID
	Classrooms []ClassroomProgressMilestone `json:"classrooms" bson:"classrooms"` // Các lớp học trong khóa
}

// ProgressCompletionRate dữ liệu tỷ lệ hoàn thành của cohort, tính lại mỗi lần chạy
type ProgressCompletionRate struct {
	TotalParticipants int     `json:"totalParticipants" bson:"totalParticipants"` // Số học viên có bản ghi tiến độ
	CompletedCount    int     `json:"completedCount" bson:"completedCount"`       // Số học viên đã qua milestone hoàn thành
	Percentage        float64 `json:"percentage" bson:"percentage"`               // completedCount / totalParticipants * 100
}

// GroupProgressModel là snapshot bất biến của tiến độ nhóm cho một tổ chức
// tại một bucket thời gian (một ngày). MilestoneID được suy ra tất định từ
// ngày lịch của Time nên ghi lại cùng ngày sẽ đè snapshot cũ thay vì nhân bản.
type GroupProgressModel struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                        // MongoDB _id
	MilestoneID string             `json:"milestoneId" bson:"milestoneId" index:"compound:milestone_org_unique,unique"` // Bucket id dạng m_<ngày>-<tháng>-<năm>
	Time        int64              `json:"time" bson:"time" index:"single:-1"`                                       // Thời điểm đo (unix millis)

	Measurements        []UsersProgressMilestone   `json:"measurements" bson:"measurements"`               // Grouping phẳng theo khóa học
	GroupedMeasurements []GroupedProgressMilestone `json:"groupedMeasurements" bson:"groupedMeasurements"` // Grouping lồng khóa → lớp → milestone

	TodaysEnrolledUsersCount int64                  `json:"todaysEnrolledUsersCount" bson:"todaysEnrolledUsersCount"` // Số học viên ghi danh mới trong ngày
	TodaysEngagedUsersCount  int64                  `json:"todaysEngagedUsersCount" bson:"todaysEngagedUsersCount"`   // Số end user có tương tác trong ngày
	ProgressCompletion       ProgressCompletionRate `json:"progressCompletion" bson:"progressCompletion"`             // Dữ liệu tỷ lệ hoàn thành

	CoursesCompleted []string `json:"coursesCompleted" bson:"coursesCompleted"` // Tập ID khóa học đã có người hoàn thành (không trùng lặp)
	CoursesStarted   []string `json:"coursesStarted" bson:"coursesStarted"`     // Tập ID khóa học đã có người bắt đầu (không trùng lặp)

	// ===== ORGANIZATION =====
	OwnerOrganizationID primitive.ObjectID `json:"ownerOrganizationId" bson:"ownerOrganizationId" index:"single:1;compound:milestone_org_unique,unique"` // Tổ chức sở hữu snapshot

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// RestResult kết quả lỗi của một đơn vị công việc (một tổ chức)
type RestResult struct {
	Error  string `json:"error"`  // Thông báo lỗi
	Status int    `json:"status"` // HTTP status tương đương (500 cho lỗi trong pipeline)
}

// OrgProgressResult kết quả đo cho một tổ chức: hoặc snapshot đã persist,
// hoặc một RestResult - lỗi của tổ chức này không ảnh hưởng các tổ chức khác.
type OrgProgressResult struct {
	OrgID     string              `json:"orgId"`
	Milestone *GroupProgressModel `json:"milestone,omitempty"`
	Failure   *RestResult         `json:"failure,omitempty"`
}

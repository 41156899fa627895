package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
)

// EndUserWithClassroom kết quả join một học viên ghi danh với danh tính hội thoại
// và lớp học của họ. EndUser nil nghĩa là học viên chưa từng nhắn tin;
// Classroom nil nghĩa là ClassID không khớp lớp nào của tổ chức.
type EndUserWithClassroom struct {
	EnrolledUser learnmodels.EnrolledEndUser
	EndUser      *learnmodels.EndUser
	Classroom    *learnmodels.Classroom
}

// ParticipantProgressCommand lệnh tính tiến độ cho một học viên tại thời điểm Interval
type ParticipantProgressCommand struct {
	OrgID       primitive.ObjectID
	Participant EndUserWithClassroom
	Interval    int64 // unix millis
}

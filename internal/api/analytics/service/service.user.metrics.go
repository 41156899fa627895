package analyticssvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	learnsvc "github.com/qurriahSam/elewa/internal/api/learn/service"
)

// UserMetricsService tính các chỉ số người dùng theo tổ chức + cửa sổ ngày:
// số học viên ghi danh mới và số end user có tương tác.
type UserMetricsService struct {
	enrolledUsers  *learnsvc.EnrolledUserService
	courseProgress *learnsvc.CourseProgressService
}

// NewUserMetricsService tạo mới UserMetricsService.
func NewUserMetricsService() (*UserMetricsService, error) {
	enrolledUsers, err := learnsvc.NewEnrolledUserService()
	if err != nil {
		return nil, err
	}
	courseProgress, err := learnsvc.NewCourseProgressService()
	if err != nil {
		return nil, err
	}
	return &UserMetricsService{
		enrolledUsers:  enrolledUsers,
		courseProgress: courseProgress,
	}, nil
}

// CountEnrolledUsersCreatedOn đếm số học viên ghi danh được tạo trong cửa sổ ngày [from, to] (unix millis)
func (s *UserMetricsService) CountEnrolledUsersCreatedOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	return s.enrolledUsers.CountCreatedInWindow(ctx, orgID, fromMillis, toMillis)
}

// CountEngagedUsersOn đếm số end user có sự kiện tiến độ trong cửa sổ ngày [from, to] (unix millis)
func (s *UserMetricsService) CountEngagedUsersOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	return s.courseProgress.CountEngagedUsers(ctx, orgID, fromMillis, toMillis)
}

package analyticssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/logger"
)

// MilestoneBucketID suy ra bucket id tất định từ ngày lịch của timeMillis.
// Hai timestamp bất kỳ trong cùng một ngày cho ra cùng một id, nhờ đó
// việc ghi snapshot là idempotent theo (ngày, tổ chức).
func MilestoneBucketID(timeMillis int64, loc *time.Location) string {
	t := time.UnixMilli(timeMillis).In(loc)
	return fmt.Sprintf("m_%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}

// dayWindow trả về [đầu ngày, cuối ngày] (unix millis) của ngày lịch chứa timeMillis
func dayWindow(timeMillis int64, loc *time.Location) (int64, int64) {
	t := time.UnixMilli(timeMillis).In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli() - 1
}

// assembleMilestone ghép dữ liệu đã group + các chỉ số + bucket id thành một
// snapshot và persist đúng một lần cho bucket đó.
func (s *GroupProgressService) assembleMilestone(
	ctx context.Context,
	orgID primitive.ObjectID,
	allUsersProgress []*analyticsmodels.ParticipantProgressMilestone,
	enrolledUsers []learnmodels.EnrolledEndUser,
	timeMillis int64,
) (*analyticsmodels.GroupProgressModel, error) {
	log := logger.GetAppLogger()
	log.Debugf("[MeasureGroupProgress] Bắt đầu group tiến độ cho org %s", orgID.Hex())

	// 1. Group học viên theo khóa học
	measurements := parseAllUserProgressData(allUsersProgress)

	// 2. Group học viên theo khóa học, lớp học và milestone
	groupedMeasurements := parseGroupedProgressData(allUsersProgress)

	// 3. Tính tỷ lệ hoàn thành của cohort
	progressCompletion := progressCompletionRateData(allUsersProgress)

	dayStart, dayEnd := dayWindow(timeMillis, s.loc)

	// 4. Các chỉ số theo cửa sổ ngày
	enrolledCount, err := s.metrics.CountEnrolledUsersCreatedOn(ctx, orgID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("đếm học viên ghi danh mới: %w", err)
	}
	engagedCount, err := s.metrics.CountEngagedUsersOn(ctx, orgID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("đếm end user tương tác: %w", err)
	}

	// 5. Tập khóa học đã hoàn thành / đã bắt đầu (khử trùng lặp)
	coursesCompleted, coursesStarted := courseStats(enrolledUsers)

	milestone := &analyticsmodels.GroupProgressModel{
		MilestoneID:              MilestoneBucketID(timeMillis, s.loc),
		Time:                     timeMillis,
		Measurements:             measurements,
		GroupedMeasurements:      groupedMeasurements,
		TodaysEnrolledUsersCount: enrolledCount,
		TodaysEngagedUsersCount:  engagedCount,
		ProgressCompletion:       progressCompletion,
		CoursesCompleted:         coursesCompleted,
		CoursesStarted:           coursesStarted,
		OwnerOrganizationID:      orgID,
	}

	return s.milestones.CreateMilestone(ctx, milestone)
}

package analyticssvc

import (
	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/utility"
)

// progressCompletionRateData tính dữ liệu tỷ lệ hoàn thành từ danh sách tiến độ.
// Cohort là các học viên có bản ghi tiến độ (entry nil bị bỏ qua);
// tỷ lệ tính lại từ đầu mỗi lần chạy, không có trạng thái tích lũy.
func progressCompletionRateData(allUsersProgress []*analyticsmodels.ParticipantProgressMilestone) analyticsmodels.ProgressCompletionRate {
	total := 0
	completed := 0
	for _, participant := range allUsersProgress {
		if participant == nil {
			continue
		}
		total++
		if participant.Completed {
			completed++
		}
	}

	rate := analyticsmodels.ProgressCompletionRate{
		TotalParticipants: total,
		CompletedCount:    completed,
	}
	if total > 0 {
		rate.Percentage = float64(completed) / float64(total) * 100
	}
	return rate
}

// courseStats quét danh sách học viên ghi danh và gom tập ID các khóa học
// đã hoàn thành và đã bắt đầu. Kết quả khử trùng lặp: mỗi khóa học xuất hiện
// một lần bất kể bao nhiêu học viên chung khóa đó.
func courseStats(enrolledUsers []learnmodels.EnrolledEndUser) (coursesCompleted, coursesStarted []string) {
	completed := []string{}
	started := []string{}

	for _, user := range enrolledUsers {
		completed = append(completed, user.CompletedCourses...)
		for _, course := range user.Courses {
			started = append(started, course.CourseID)
		}
	}

	return utility.Unique(completed), utility.Unique(started)
}

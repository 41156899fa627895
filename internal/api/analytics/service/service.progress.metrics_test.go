package analyticssvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
)

func TestProgressCompletionRateData(t *testing.T) {
	input := []*analyticsmodels.ParticipantProgressMilestone{
		progressEntry("course-a", "class-1", "m1", "u1", true),
		progressEntry("course-a", "class-1", "m1", "u2", false),
		nil, // học viên không có lịch sử không thuộc cohort
		progressEntry("course-a", "class-1", "m2", "u3", true),
		progressEntry("course-a", "class-1", "m2", "u4", false),
	}

	rate := progressCompletionRateData(input)

	if rate.TotalParticipants != 4 {
		t.Errorf("TotalParticipants = %d, muốn 4", rate.TotalParticipants)
	}
	if rate.CompletedCount != 2 {
		t.Errorf("CompletedCount = %d, muốn 2", rate.CompletedCount)
	}
	if rate.Percentage != 50 {
		t.Errorf("Percentage = %v, muốn 50", rate.Percentage)
	}
}

func TestProgressCompletionRateData_CohortRong(t *testing.T) {
	rate := progressCompletionRateData([]*analyticsmodels.ParticipantProgressMilestone{nil})

	if rate.TotalParticipants != 0 || rate.CompletedCount != 0 {
		t.Errorf("cohort rỗng: %+v, muốn toàn 0", rate)
	}
	// Không chia cho 0
	if rate.Percentage != 0 {
		t.Errorf("Percentage = %v, muốn 0", rate.Percentage)
	}
}

func TestCourseStats_KhuTrungLap(t *testing.T) {
	enrolledUsers := []learnmodels.EnrolledEndUser{
		{
			ID:               primitive.NewObjectID(),
			CompletedCourses: []string{"course-a", "course-b"},
			Courses: []learnmodels.StartedCourse{
				{CourseID: "course-c"},
			},
		},
		{
			ID:               primitive.NewObjectID(),
			CompletedCourses: []string{"course-a"},
			Courses: []learnmodels.StartedCourse{
				{CourseID: "course-c"},
				{CourseID: "course-d"},
			},
		},
	}

	completed, started := courseStats(enrolledUsers)

	if !reflect.DeepEqual(completed, []string{"course-a", "course-b"}) {
		t.Errorf("coursesCompleted = %v, muốn [course-a course-b]", completed)
	}
	if !reflect.DeepEqual(started, []string{"course-c", "course-d"}) {
		t.Errorf("coursesStarted = %v, muốn [course-c course-d]", started)
	}
}

func TestCourseStats_KhongCoHocVien(t *testing.T) {
	completed, started := courseStats(nil)
	if len(completed) != 0 || len(started) != 0 {
		t.Errorf("không có học viên: completed=%v started=%v, muốn rỗng", completed, started)
	}
}

package analyticssvc

import (
	"context"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnsvc "github.com/qurriahSam/elewa/internal/api/learn/service"
)

// ParticipantProgressService tính tiến độ hiện tại của một học viên dựa trên
// sự kiện tiến độ khóa học gần nhất tại thời điểm đo.
type ParticipantProgressService struct {
	courseProgress *learnsvc.CourseProgressService
}

// NewParticipantProgressService tạo mới ParticipantProgressService.
func NewParticipantProgressService() (*ParticipantProgressService, error) {
	courseProgress, err := learnsvc.NewCourseProgressService()
	if err != nil {
		return nil, err
	}
	return &ParticipantProgressService{courseProgress: courseProgress}, nil
}

// Execute trả về milestone tiến độ của học viên tại thời điểm cmd.Interval.
// Trả về (nil, nil) khi học viên chưa có lịch sử tiến độ - downstream filter,
// không coi là lỗi.
func (s *ParticipantProgressService) Execute(ctx context.Context, cmd analyticsmodels.ParticipantProgressCommand) (*analyticsmodels.ParticipantProgressMilestone, error) {
	endUser := cmd.Participant.EndUser
	if endUser == nil {
		return nil, nil
	}

	event, err := s.courseProgress.LatestEventForEndUser(ctx, cmd.OrgID, endUser.EndUserID, cmd.Interval)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	enrolled := cmd.Participant.EnrolledUser

	classroom := analyticsmodels.ProgressClassroom{}
	if cmd.Participant.Classroom != nil {
		classroom.ID = cmd.Participant.Classroom.ClassID
		classroom.ClassName = cmd.Participant.Classroom.ClassName
	}

	return &analyticsmodels.ParticipantProgressMilestone{
		CourseID:    event.CourseID,
		Classroom:   classroom,
		MilestoneID: event.MilestoneID,
		Completed:   event.Completed,
		Participant: analyticsmodels.ProgressParticipant{
			ID:          enrolled.ID.Hex(),
			Name:        enrolled.Name,
			PhoneNumber: enrolled.PhoneNumber,
		},
	}, nil
}

package analyticssvc

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/logger"
)

// computeOrgProgress chạy pipeline đo tiến độ cho một tổ chức: join học viên
// với danh tính hội thoại và lớp học, tính tiến độ từng học viên concurrent,
// rồi ghép thành snapshot. Mọi lỗi (kể cả panic) được gói vào RestResult để
// tổ chức khác không bị ảnh hưởng.
func (s *GroupProgressService) computeOrgProgress(ctx context.Context, orgIDHex string, timeMillis int64) (result analyticsmodels.OrgProgressResult) {
	log := logger.GetAppLogger()
	result.OrgID = orgIDHex

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[MeasureGroupProgress] Panic khi tính progress cho org %s: %v", orgIDHex, r)
			result.Milestone = nil
			result.Failure = &analyticsmodels.RestResult{
				Error:  fmt.Sprintf("panic: %v", r),
				Status: 500,
			}
		}
	}()

	orgID, err := primitive.ObjectIDFromHex(orgIDHex)
	if err != nil {
		log.Errorf("[MeasureGroupProgress] OrgID không hợp lệ %s: %v", orgIDHex, err)
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, s.orgTimeout)
	defer cancel()

	// 1. Lấy lớp học và học viên ghi danh của tổ chức
	classrooms, err := s.classrooms.GetClassrooms(ctx, orgID)
	if err != nil {
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	enrolledUsers, err := s.enrolledUsers.GetEnrolledUsers(ctx, orgID)
	if err != nil {
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	// 2. Join từng học viên với danh tính hội thoại và lớp học của họ
	participants, err := s.joinParticipants(ctx, orgID, enrolledUsers, classrooms)
	if err != nil {
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	// 3. Tính tiến độ từng học viên concurrent, giữ nguyên thứ tự đầu vào
	allUsersProgress, err := s.computeAllUsersProgress(ctx, orgID, participants, timeMillis)
	if err != nil {
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	// 4. Group + tính chỉ số + persist snapshot của ngày
	milestone, err := s.assembleMilestone(ctx, orgID, allUsersProgress, enrolledUsers, timeMillis)
	if err != nil {
		log.Errorf("[MeasureGroupProgress] Lỗi khi tạo milestone cho org %s: %v", orgIDHex, err)
		result.Failure = &analyticsmodels.RestResult{Error: err.Error(), Status: 500}
		return result
	}

	result.Milestone = milestone
	return result
}

// joinConcurrency giới hạn số lookup end user chạy đồng thời khi join
const joinConcurrency = 10

// joinParticipants join mỗi học viên ghi danh với EndUser (qua id hội thoại
// đã liên kết) và Classroom (qua classId). Học viên chưa liên kết kênh nhắn
// tin nào thì bị bỏ qua vì không thể có lịch sử tiến độ. Các lookup end user
// chạy concurrent có giới hạn; kết quả giữ nguyên thứ tự học viên đầu vào.
func (s *GroupProgressService) joinParticipants(
	ctx context.Context,
	orgID primitive.ObjectID,
	enrolledUsers []learnmodels.EnrolledEndUser,
	classrooms []learnmodels.Classroom,
) ([]analyticsmodels.EndUserWithClassroom, error) {
	classroomByID := make(map[string]*learnmodels.Classroom, len(classrooms))
	for i := range classrooms {
		classroomByID[classrooms[i].ClassID] = &classrooms[i]
	}

	type linkedParticipant struct {
		enrolled  learnmodels.EnrolledEndUser
		endUserID string
	}
	linked := make([]linkedParticipant, 0, len(enrolledUsers))
	for _, enrolled := range enrolledUsers {
		endUserID := enrolled.LinkedEndUserID()
		if endUserID == "" {
			continue
		}
		linked = append(linked, linkedParticipant{enrolled: enrolled, endUserID: endUserID})
	}

	participants := make([]analyticsmodels.EndUserWithClassroom, len(linked))
	errs := make([]error, len(linked))
	sem := make(chan struct{}, joinConcurrency)

	var wg sync.WaitGroup
	for i, p := range linked {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p linkedParticipant) {
			defer wg.Done()
			defer func() { <-sem }()

			endUser, err := s.endUsers.GetEndUser(ctx, orgID, p.endUserID)
			if err != nil {
				errs[i] = err
				return
			}
			participants[i] = analyticsmodels.EndUserWithClassroom{
				EnrolledUser: p.enrolled,
				EndUser:      endUser,
				Classroom:    classroomByID[p.enrolled.ClassID],
			}
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return participants, nil
}

// computeAllUsersProgress tính tiến độ của mọi học viên concurrent. Kết quả
// giữ nguyên thứ tự participants; phần tử nil là học viên chưa có lịch sử.
func (s *GroupProgressService) computeAllUsersProgress(
	ctx context.Context,
	orgID primitive.ObjectID,
	participants []analyticsmodels.EndUserWithClassroom,
	timeMillis int64,
) ([]*analyticsmodels.ParticipantProgressMilestone, error) {
	allUsersProgress := make([]*analyticsmodels.ParticipantProgressMilestone, len(participants))
	errs := make([]error, len(participants))

	var wg sync.WaitGroup
	for i, participant := range participants {
		wg.Add(1)
		go func(i int, participant analyticsmodels.EndUserWithClassroom) {
			defer wg.Done()
			allUsersProgress[i], errs[i] = s.progress.Execute(ctx, analyticsmodels.ParticipantProgressCommand{
				OrgID:       orgID,
				Participant: participant,
				Interval:    timeMillis,
			})
		}(i, participant)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return allUsersProgress, nil
}

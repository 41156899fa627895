package analyticssvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
)

// ---- Fakes cho các collaborator của GroupProgressService ----

type fakeConfigReader struct {
	cfg *analyticsmodels.AnalyticsConfig
	err error
}

func (f *fakeConfigReader) GetConfig(ctx context.Context) (*analyticsmodels.AnalyticsConfig, error) {
	return f.cfg, f.err
}

type fakeClassroomReader struct {
	classrooms map[string][]learnmodels.Classroom // orgID hex -> lớp học
	err        error
}

func (f *fakeClassroomReader) GetClassrooms(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.Classroom, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.classrooms[orgID.Hex()], nil
}

type fakeEnrolledUserReader struct {
	users map[string][]learnmodels.EnrolledEndUser
	err   error
}

func (f *fakeEnrolledUserReader) GetEnrolledUsers(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.EnrolledEndUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[orgID.Hex()], nil
}

type fakeEndUserReader struct {
	users map[string]*learnmodels.EndUser // endUserID -> end user
	err   error

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
}

func (f *fakeEndUserReader) GetEndUser(ctx context.Context, orgID primitive.ObjectID, endUserID string) (*learnmodels.EndUser, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.err != nil {
		return nil, f.err
	}
	return f.users[endUserID], nil
}

type fakeProgressComputer struct {
	milestones map[string]*analyticsmodels.ParticipantProgressMilestone // endUserID -> tiến độ
	err        error
}

func (f *fakeProgressComputer) Execute(ctx context.Context, cmd analyticsmodels.ParticipantProgressCommand) (*analyticsmodels.ParticipantProgressMilestone, error) {
	if f.err != nil {
		return nil, f.err
	}
	if cmd.Participant.EndUser == nil {
		return nil, nil
	}
	return f.milestones[cmd.Participant.EndUser.EndUserID], nil
}

type fakeUserMetricsReader struct {
	enrolledCount int64
	engagedCount  int64
}

func (f *fakeUserMetricsReader) CountEnrolledUsersCreatedOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	return f.enrolledCount, nil
}

func (f *fakeUserMetricsReader) CountEngagedUsersOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	return f.engagedCount, nil
}

type fakeMilestoneWriter struct {
	mu      sync.Mutex
	created []*analyticsmodels.GroupProgressModel
	err     error
}

func (f *fakeMilestoneWriter) CreateMilestone(ctx context.Context, milestone *analyticsmodels.GroupProgressModel) (*analyticsmodels.GroupProgressModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, milestone)
	return milestone, nil
}

// newTestGroupProgressService dựng service với toàn bộ fake, mặc định không có dữ liệu
func newTestGroupProgressService(cfg *analyticsmodels.AnalyticsConfig) (*GroupProgressService, *fakeMilestoneWriter) {
	writer := &fakeMilestoneWriter{}
	return &GroupProgressService{
		config:        &fakeConfigReader{cfg: cfg},
		classrooms:    &fakeClassroomReader{classrooms: map[string][]learnmodels.Classroom{}},
		enrolledUsers: &fakeEnrolledUserReader{users: map[string][]learnmodels.EnrolledEndUser{}},
		endUsers:      &fakeEndUserReader{users: map[string]*learnmodels.EndUser{}},
		progress:      &fakeProgressComputer{milestones: map[string]*analyticsmodels.ParticipantProgressMilestone{}},
		metrics:       &fakeUserMetricsReader{},
		milestones:    writer,
		orgTimeout:    5 * time.Second,
		loc:           time.UTC,
	}, writer
}

func TestMeasureGroupProgress_ThieuCauHinhKhongPhaiLoi(t *testing.T) {
	svc, writer := newTestGroupProgressService(nil)

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, writer.created, "không được tạo snapshot khi thiếu cấu hình")
}

func TestMeasureGroupProgress_DanhSachToChucRong(t *testing.T) {
	svc, writer := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{},
	})

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{})

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, writer.created)
}

func TestMeasureGroupProgress_MotToChucDayDu(t *testing.T) {
	orgID := primitive.NewObjectID()
	enrolledID := primitive.NewObjectID()

	svc, writer := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{orgID.Hex()},
	})

	svc.classrooms = &fakeClassroomReader{classrooms: map[string][]learnmodels.Classroom{
		orgID.Hex(): {
			{ClassID: "class-1", ClassName: "Lớp 1", OwnerOrganizationID: orgID},
		},
	}}
	svc.enrolledUsers = &fakeEnrolledUserReader{users: map[string][]learnmodels.EnrolledEndUser{
		orgID.Hex(): {
			{
				ID:               enrolledID,
				Name:             "Asha",
				ClassID:          "class-1",
				Platform:         learnmodels.PlatformTypeWhatsApp,
				WhatsappUserID:   "whatsapp_254700000001",
				CompletedCourses: []string{"course-a"},
				Courses:          []learnmodels.StartedCourse{{CourseID: "course-b"}},
			},
		},
	}}
	svc.endUsers = &fakeEndUserReader{users: map[string]*learnmodels.EndUser{
		"whatsapp_254700000001": {EndUserID: "whatsapp_254700000001", OwnerOrganizationID: orgID},
	}}
	svc.progress = &fakeProgressComputer{milestones: map[string]*analyticsmodels.ParticipantProgressMilestone{
		"whatsapp_254700000001": progressEntry("course-b", "class-1", "m1", enrolledID.Hex(), false),
	}}
	svc.metrics = &fakeUserMetricsReader{enrolledCount: 3, engagedCount: 2}

	interval := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC).UnixMilli()
	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{Interval: interval})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Nil(t, results[0].Failure)
	require.NotNil(t, results[0].Milestone)

	milestone := results[0].Milestone
	assert.Equal(t, "m_5-3-2024", milestone.MilestoneID)
	assert.Equal(t, interval, milestone.Time)
	assert.Equal(t, orgID, milestone.OwnerOrganizationID)
	assert.Equal(t, int64(3), milestone.TodaysEnrolledUsersCount)
	assert.Equal(t, int64(2), milestone.TodaysEngagedUsersCount)
	assert.Equal(t, []string{"course-a"}, milestone.CoursesCompleted)
	assert.Equal(t, []string{"course-b"}, milestone.CoursesStarted)
	assert.Equal(t, 1, milestone.ProgressCompletion.TotalParticipants)
	assert.Equal(t, 0, milestone.ProgressCompletion.CompletedCount)

	require.Len(t, milestone.Measurements, 1)
	assert.Equal(t, "course-b", milestone.Measurements[0].ID)
	require.Len(t, milestone.GroupedMeasurements, 1)
	assert.Equal(t, "class-1", milestone.GroupedMeasurements[0].Classrooms[0].ID)

	assert.Len(t, writer.created, 1, "mỗi tổ chức persist đúng một snapshot cho một lượt đo")
}

func TestMeasureGroupProgress_LoiMotToChucKhongAnhHuongToChucKhac(t *testing.T) {
	okOrg := primitive.NewObjectID()

	svc, writer := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{"khong-phai-object-id", okOrg.Hex()},
	})

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{Interval: 1})

	require.NoError(t, err)
	require.Len(t, results, 2, "kết quả giữ nguyên thứ tự và số lượng tổ chức trong cấu hình")

	// Tổ chức lỗi: có Failure, không có snapshot
	assert.Equal(t, "khong-phai-object-id", results[0].OrgID)
	require.NotNil(t, results[0].Failure)
	assert.Equal(t, 500, results[0].Failure.Status)
	assert.Nil(t, results[0].Milestone)

	// Tổ chức còn lại vẫn được đo bình thường (không học viên -> snapshot rỗng)
	assert.Equal(t, okOrg.Hex(), results[1].OrgID)
	assert.Nil(t, results[1].Failure)
	require.NotNil(t, results[1].Milestone)
	assert.Len(t, writer.created, 1)
}

func TestMeasureGroupProgress_LoiDocDuLieuThanhRestResult(t *testing.T) {
	orgID := primitive.NewObjectID()
	svc, writer := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{orgID.Hex()},
	})
	svc.enrolledUsers = &fakeEnrolledUserReader{err: errors.New("mongo: connection refused")}

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{Interval: 1})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Failure)
	assert.Contains(t, results[0].Failure.Error, "connection refused")
	assert.Empty(t, writer.created)
}

func TestMeasureGroupProgress_HocVienChuaLienKetKenhBiBoQua(t *testing.T) {
	orgID := primitive.NewObjectID()
	linkedID := primitive.NewObjectID()

	svc, _ := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{orgID.Hex()},
	})
	svc.enrolledUsers = &fakeEnrolledUserReader{users: map[string][]learnmodels.EnrolledEndUser{
		orgID.Hex(): {
			{ID: primitive.NewObjectID(), Name: "Chưa liên kết"},
			{ID: linkedID, Name: "Đã liên kết", Platform: learnmodels.PlatformTypeWhatsApp, WhatsappUserID: "whatsapp_1"},
		},
	}}
	svc.endUsers = &fakeEndUserReader{users: map[string]*learnmodels.EndUser{
		"whatsapp_1": {EndUserID: "whatsapp_1", OwnerOrganizationID: orgID},
	}}
	svc.progress = &fakeProgressComputer{milestones: map[string]*analyticsmodels.ParticipantProgressMilestone{
		"whatsapp_1": progressEntry("course-a", "", "m1", linkedID.Hex(), true),
	}}

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{Interval: 1})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Nil(t, results[0].Failure)

	// Chỉ học viên đã liên kết thuộc cohort
	assert.Equal(t, 1, results[0].Milestone.ProgressCompletion.TotalParticipants)
	assert.Equal(t, 1, results[0].Milestone.ProgressCompletion.CompletedCount)
}

func TestJoinParticipants_ConcurrentGiuThuTuVaGioiHan(t *testing.T) {
	orgID := primitive.NewObjectID()
	svc, _ := newTestGroupProgressService(nil)

	// 25 học viên đã liên kết xen kẽ vài học viên chưa liên kết
	enrolledUsers := []learnmodels.EnrolledEndUser{}
	endUsers := map[string]*learnmodels.EndUser{}
	var wantIDs []string
	for i := 0; i < 25; i++ {
		endUserID := "whatsapp_" + primitive.NewObjectID().Hex()
		enrolledUsers = append(enrolledUsers, learnmodels.EnrolledEndUser{
			ID:             primitive.NewObjectID(),
			Platform:       learnmodels.PlatformTypeWhatsApp,
			WhatsappUserID: endUserID,
		})
		endUsers[endUserID] = &learnmodels.EndUser{EndUserID: endUserID, OwnerOrganizationID: orgID}
		wantIDs = append(wantIDs, endUserID)
		if i%5 == 0 {
			enrolledUsers = append(enrolledUsers, learnmodels.EnrolledEndUser{ID: primitive.NewObjectID()})
		}
	}
	reader := &fakeEndUserReader{users: endUsers}
	svc.endUsers = reader

	participants, err := svc.joinParticipants(context.Background(), orgID, enrolledUsers, nil)

	require.NoError(t, err)
	require.Len(t, participants, 25, "học viên chưa liên kết phải bị bỏ qua")
	for i, p := range participants {
		require.NotNil(t, p.EndUser)
		assert.Equal(t, wantIDs[i], p.EndUser.EndUserID, "kết quả join phải giữ nguyên thứ tự đầu vào")
	}
	assert.LessOrEqual(t, reader.maxInFlight, joinConcurrency, "số lookup đồng thời không được vượt giới hạn")
}

func TestJoinParticipants_LoiLookupThanhRestResult(t *testing.T) {
	orgID := primitive.NewObjectID()
	svc, writer := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{orgID.Hex()},
	})
	svc.enrolledUsers = &fakeEnrolledUserReader{users: map[string][]learnmodels.EnrolledEndUser{
		orgID.Hex(): {
			{ID: primitive.NewObjectID(), Platform: learnmodels.PlatformTypeWhatsApp, WhatsappUserID: "whatsapp_1"},
		},
	}}
	svc.endUsers = &fakeEndUserReader{err: errors.New("mongo: socket timeout")}

	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{Interval: 1})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Failure)
	assert.Contains(t, results[0].Failure.Error, "socket timeout")
	assert.Empty(t, writer.created)
}

func TestMeasureGroupProgress_IntervalRongDungThoiDiemHienTai(t *testing.T) {
	orgID := primitive.NewObjectID()
	svc, _ := newTestGroupProgressService(&analyticsmodels.AnalyticsConfig{
		ConfigKey: analyticsmodels.AnalyticsConfigKey,
		OrgIDs:    []string{orgID.Hex()},
	})

	before := time.Now().UnixMilli()
	results, err := svc.MeasureGroupProgress(context.Background(), analyticsmodels.MeasureGroupProgressCommand{})
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Milestone)
	assert.GreaterOrEqual(t, results[0].Milestone.Time, before)
	assert.LessOrEqual(t, results[0].Milestone.Time, after)
}

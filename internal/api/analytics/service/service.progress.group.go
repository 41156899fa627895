package analyticssvc

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	learnsvc "github.com/qurriahSam/elewa/internal/api/learn/service"
	"github.com/qurriahSam/elewa/internal/global"
	"github.com/qurriahSam/elewa/internal/logger"
)

// Các collaborator của pipeline, khai báo dưới dạng interface hẹp để test
// có thể inject fake mà không cần MongoDB.
type (
	configReader interface {
		GetConfig(ctx context.Context) (*analyticsmodels.AnalyticsConfig, error)
	}

	classroomReader interface {
		GetClassrooms(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.Classroom, error)
	}

	enrolledUserReader interface {
		GetEnrolledUsers(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.EnrolledEndUser, error)
	}

	endUserReader interface {
		GetEndUser(ctx context.Context, orgID primitive.ObjectID, endUserID string) (*learnmodels.EndUser, error)
	}

	// participantProgressComputer là capability tính tiến độ từng học viên.
	// Trả về (nil, nil) khi học viên không có lịch sử.
	participantProgressComputer interface {
		Execute(ctx context.Context, cmd analyticsmodels.ParticipantProgressCommand) (*analyticsmodels.ParticipantProgressMilestone, error)
	}

	userMetricsReader interface {
		CountEnrolledUsersCreatedOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error)
		CountEngagedUsersOn(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error)
	}

	milestoneWriter interface {
		CreateMilestone(ctx context.Context, milestone *analyticsmodels.GroupProgressModel) (*analyticsmodels.GroupProgressModel, error)
	}
)

// GroupProgressService đo tiến độ nhóm của các tổ chức: đọc cấu hình, fan-out
// theo tổ chức, group kết quả từng học viên và persist một snapshot mỗi ngày
// cho mỗi tổ chức. Dùng để dựng stacked bar chart theo dõi tiến độ nhóm học
// viên theo thời gian.
type GroupProgressService struct {
	config        configReader
	classrooms    classroomReader
	enrolledUsers enrolledUserReader
	endUsers      endUserReader
	progress      participantProgressComputer
	metrics       userMetricsReader
	milestones    milestoneWriter

	orgTimeout time.Duration  // Timeout cho pipeline của một tổ chức
	loc        *time.Location // Timezone để cắt bucket theo ngày
}

// NewGroupProgressService tạo mới GroupProgressService với các service thật.
func NewGroupProgressService() (*GroupProgressService, error) {
	configService, err := NewAnalyticsConfigService()
	if err != nil {
		return nil, err
	}
	classroomService, err := learnsvc.NewClassroomService()
	if err != nil {
		return nil, err
	}
	enrolledUserService, err := learnsvc.NewEnrolledUserService()
	if err != nil {
		return nil, err
	}
	endUserService, err := learnsvc.NewEndUserService()
	if err != nil {
		return nil, err
	}
	progressService, err := NewParticipantProgressService()
	if err != nil {
		return nil, err
	}
	metricsService, err := NewUserMetricsService()
	if err != nil {
		return nil, err
	}
	monitoringService, err := NewMonitoringService()
	if err != nil {
		return nil, err
	}

	orgTimeout := 2 * time.Minute
	timezone := "Africa/Nairobi"
	if global.ServerConfig != nil {
		if global.ServerConfig.Progress_OrgTimeoutSec > 0 {
			orgTimeout = time.Duration(global.ServerConfig.Progress_OrgTimeoutSec) * time.Second
		}
		if global.ServerConfig.Progress_Timezone != "" {
			timezone = global.ServerConfig.Progress_Timezone
		}
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	return &GroupProgressService{
		config:        configService,
		classrooms:    classroomService,
		enrolledUsers: enrolledUserService,
		endUsers:      endUserService,
		progress:      progressService,
		metrics:       metricsService,
		milestones:    monitoringService,
		orgTimeout:    orgTimeout,
		loc:           loc,
	}, nil
}

// MeasureGroupProgress đo tiến độ nhóm cho tất cả tổ chức trong cấu hình analytics.
// Mỗi tổ chức được xử lý concurrent và độc lập: kết quả trả về chứa lẫn lộn
// snapshot thành công và RestResult lỗi, một tổ chức lỗi không ảnh hưởng các
// tổ chức còn lại. Thiếu cấu hình (hoặc danh sách tổ chức rỗng) không phải lỗi:
// log và kết thúc mà không tạo snapshot nào.
func (s *GroupProgressService) MeasureGroupProgress(ctx context.Context, cmd analyticsmodels.MeasureGroupProgressCommand) ([]analyticsmodels.OrgProgressResult, error) {
	log := logger.GetAppLogger()

	// 1. Lấy danh sách tổ chức từ cấu hình analytics
	cfg, err := s.config.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg == nil || len(cfg.OrgIDs) == 0 {
		log.Error("[MeasureGroupProgress] Thiếu cấu hình analytics, không có tổ chức nào để tính progress")
		return []analyticsmodels.OrgProgressResult{}, nil
	}

	// Thời điểm đo: interval từ lệnh hoặc "bây giờ"
	timeInUnix := cmd.Interval
	if timeInUnix == 0 {
		timeInUnix = time.Now().UnixMilli()
	}

	// 2. Fan-out: tính cho từng tổ chức concurrent, chờ tất cả hoàn thành
	results := make([]analyticsmodels.OrgProgressResult, len(cfg.OrgIDs))
	var wg sync.WaitGroup
	for i, orgID := range cfg.OrgIDs {
		wg.Add(1)
		go func(i int, orgID string) {
			defer wg.Done()
			results[i] = s.computeOrgProgress(ctx, orgID, timeInUnix)
		}(i, orgID)
	}
	wg.Wait()

	return results, nil
}

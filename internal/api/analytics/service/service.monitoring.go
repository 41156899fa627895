// Package analyticssvc - pipeline đo group progress: fan-out theo tổ chức,
// tính tiến độ từng học viên, group kết quả và persist snapshot theo ngày.
package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	basemodels "github.com/qurriahSam/elewa/internal/api/base/models"
	basesvc "github.com/qurriahSam/elewa/internal/api/base/service"
	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// MonitoringService service CRUD cho bảng group_progress_milestones.
type MonitoringService struct {
	*basesvc.BaseServiceMongoImpl[analyticsmodels.GroupProgressModel]
}

// NewMonitoringService tạo mới MonitoringService.
func NewMonitoringService() (*MonitoringService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.GroupProgressMilestones)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.GroupProgressMilestones, common.ErrNotFound)
	}
	return &MonitoringService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[analyticsmodels.GroupProgressModel](coll),
	}, nil
}

// CreateMilestone persist snapshot theo (milestoneId, ownerOrganizationId).
// Ghi idempotent: chạy lại cùng ngày cho cùng tổ chức sẽ đè snapshot cũ,
// không bao giờ tạo bản ghi trùng lặp (unique compound index bảo vệ thêm).
func (s *MonitoringService) CreateMilestone(ctx context.Context, milestone *analyticsmodels.GroupProgressModel) (*analyticsmodels.GroupProgressModel, error) {
	if milestone.MilestoneID == "" {
		return nil, common.ErrRequiredField
	}

	filter := bson.M{
		"milestoneId":         milestone.MilestoneID,
		"ownerOrganizationId": milestone.OwnerOrganizationID,
	}
	saved, err := s.Upsert(ctx, filter, *milestone)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetMilestones trả về các snapshot của một tổ chức, mới nhất trước, có phân trang
func (s *MonitoringService) GetMilestones(ctx context.Context, orgID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[analyticsmodels.GroupProgressModel], error) {
	filter := bson.M{"ownerOrganizationId": orgID}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

package analyticssvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	basesvc "github.com/qurriahSam/elewa/internal/api/base/service"
	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// AnalyticsConfigService service đọc/ghi cấu hình analytics (analytics_configs).
type AnalyticsConfigService struct {
	*basesvc.BaseServiceMongoImpl[analyticsmodels.AnalyticsConfig]
}

// NewAnalyticsConfigService tạo mới AnalyticsConfigService.
func NewAnalyticsConfigService() (*AnalyticsConfigService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalyticsConfigs)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AnalyticsConfigs, common.ErrNotFound)
	}
	return &AnalyticsConfigService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[analyticsmodels.AnalyticsConfig](coll),
	}, nil
}

// GetConfig trả về document cấu hình analytics duy nhất.
// Trả về (nil, nil) khi chưa có cấu hình - caller quyết định cách xử lý
// (pipeline đo progress sẽ log và dừng, không ném lỗi).
func (s *AnalyticsConfigService) GetConfig(ctx context.Context) (*analyticsmodels.AnalyticsConfig, error) {
	cfg, err := s.FindOne(ctx, bson.M{"configKey": analyticsmodels.AnalyticsConfigKey}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// SetConfig ghi document cấu hình analytics (upsert theo configKey)
func (s *AnalyticsConfigService) SetConfig(ctx context.Context, cfg *analyticsmodels.AnalyticsConfig) (*analyticsmodels.AnalyticsConfig, error) {
	cfg.ConfigKey = analyticsmodels.AnalyticsConfigKey
	saved, err := s.Upsert(ctx, bson.M{"configKey": analyticsmodels.AnalyticsConfigKey}, *cfg)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

package learnsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/qurriahSam/elewa/internal/api/base/service"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// CourseProgressService service đọc bảng course_progress (append-only, do bot engine ghi).
type CourseProgressService struct {
	*basesvc.BaseServiceMongoImpl[learnmodels.CourseProgressEvent]
}

// NewCourseProgressService tạo mới CourseProgressService.
func NewCourseProgressService() (*CourseProgressService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.CourseProgress)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CourseProgress, common.ErrNotFound)
	}
	return &CourseProgressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[learnmodels.CourseProgressEvent](coll),
	}, nil
}

// LatestEventForEndUser trả về sự kiện tiến độ gần nhất của end user tại hoặc trước
// thời điểm atMillis. Trả về (nil, nil) khi người học chưa có lịch sử tiến độ nào.
func (s *CourseProgressService) LatestEventForEndUser(ctx context.Context, orgID primitive.ObjectID, endUserID string, atMillis int64) (*learnmodels.CourseProgressEvent, error) {
	filter := bson.M{
		"ownerOrganizationId": orgID,
		"endUserId":           endUserID,
		"eventTime":           bson.M{"$lte": atMillis},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "eventTime", Value: -1}})

	event, err := s.FindOne(ctx, filter, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// CountEngagedUsers đếm số end user khác nhau có sự kiện tiến độ trong khoảng
// thời gian [from, to] (unix millis) - thước đo mức độ tương tác trong ngày.
func (s *CourseProgressService) CountEngagedUsers(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	filter := bson.M{
		"ownerOrganizationId": orgID,
		"eventTime":           bson.M{"$gte": fromMillis, "$lte": toMillis},
	}
	values, err := s.Distinct(ctx, "endUserId", filter)
	if err != nil {
		return 0, err
	}
	return int64(len(values)), nil
}

package learnsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/qurriahSam/elewa/internal/api/base/service"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// EndUserService service CRUD cho bảng end_users.
type EndUserService struct {
	*basesvc.BaseServiceMongoImpl[learnmodels.EndUser]
}

// NewEndUserService tạo mới EndUserService.
func NewEndUserService() (*EndUserService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.EndUsers)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EndUsers, common.ErrNotFound)
	}
	return &EndUserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[learnmodels.EndUser](coll),
	}, nil
}

// GetEndUser tìm end user hội thoại theo id (kèm prefix kênh) trong một tổ chức.
// Trả về (nil, nil) khi end user chưa từng nhắn tin - đây không phải lỗi,
// học viên đó đơn giản là chưa có lịch sử hội thoại.
func (s *EndUserService) GetEndUser(ctx context.Context, orgID primitive.ObjectID, endUserID string) (*learnmodels.EndUser, error) {
	user, err := s.FindOne(ctx, bson.M{"endUserId": endUserID, "ownerOrganizationId": orgID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

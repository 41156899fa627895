// Package learnsvc - các service cho domain Learn: lớp học, học viên ghi danh,
// end user hội thoại và sự kiện tiến độ khóa học.
package learnsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/qurriahSam/elewa/internal/api/base/service"
	learnmodels "github.com/qurriahSam/elewa/internal/api/learn/models"
	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// ClassroomService service CRUD cho bảng classrooms.
type ClassroomService struct {
	*basesvc.BaseServiceMongoImpl[learnmodels.Classroom]
}

// NewClassroomService tạo mới ClassroomService.
func NewClassroomService() (*ClassroomService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Classrooms)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Classrooms, common.ErrNotFound)
	}
	return &ClassroomService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[learnmodels.Classroom](coll),
	}, nil
}

// GetClassrooms trả về tất cả lớp học của một tổ chức
func (s *ClassroomService) GetClassrooms(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.Classroom, error) {
	return s.Find(ctx, bson.M{"ownerOrganizationId": orgID}, nil)
}

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

// EnrolledUserService service CRUD cho bảng enrolled_end_users.
type EnrolledUserService struct {
	*basesvc.BaseServiceMongoImpl[learnmodels.EnrolledEndUser]
}

// NewEnrolledUserService tạo mới EnrolledUserService.
func NewEnrolledUserService() (*EnrolledUserService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.EnrolledEndUsers)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EnrolledEndUsers, common.ErrNotFound)
	}
	return &EnrolledUserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[learnmodels.EnrolledEndUser](coll),
	}, nil
}

// GetEnrolledUsers trả về tất cả học viên đã ghi danh của một tổ chức
func (s *EnrolledUserService) GetEnrolledUsers(ctx context.Context, orgID primitive.ObjectID) ([]learnmodels.EnrolledEndUser, error) {
	return s.Find(ctx, bson.M{"ownerOrganizationId": orgID}, nil)
}

// GetEnrolledUserByEndUser tìm học viên theo id end user hội thoại.
// Field lookup chọn theo platform đã resolve từ prefix id, không parse lại ở mỗi nơi khác.
func (s *EnrolledUserService) GetEnrolledUserByEndUser(ctx context.Context, orgID primitive.ObjectID, endUserID string) (*learnmodels.EnrolledEndUser, error) {
	var field string
	switch learnmodels.PlatformFromEndUserID(endUserID) {
	case learnmodels.PlatformTypeMessenger:
		field = "messengerUserId"
	default:
		field = "whatsappUserId"
	}

	user, err := s.FindOne(ctx, bson.M{field: endUserID, "ownerOrganizationId": orgID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetOrCreateEnrolledUser tìm học viên theo end user, tạo mới bản ghi ghi danh nếu chưa có.
// Dùng bởi flow enrollment khi end user nhắn tin lần đầu.
func (s *EnrolledUserService) GetOrCreateEnrolledUser(ctx context.Context, endUser *learnmodels.EndUser) (*learnmodels.EnrolledEndUser, error) {
	existing, err := s.GetEnrolledUserByEndUser(ctx, endUser.OwnerOrganizationID, endUser.EndUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	enrolled := learnmodels.EnrolledEndUser{
		Name:                endUser.Name,
		PhoneNumber:         endUser.PhoneNumber,
		Platform:            endUser.Platform,
		Status:              learnmodels.EnrolledEndUserStatusActive,
		CompletedCourses:    []string{},
		Courses:             []learnmodels.StartedCourse{},
		OwnerOrganizationID: endUser.OwnerOrganizationID,
	}
	switch endUser.Platform {
	case learnmodels.PlatformTypeMessenger:
		enrolled.MessengerUserID = endUser.EndUserID
	default:
		enrolled.WhatsappUserID = endUser.EndUserID
	}

	created, err := s.InsertOne(ctx, enrolled)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CountCreatedInWindow đếm số học viên ghi danh của tổ chức được tạo trong khoảng thời gian [from, to] (unix millis)
func (s *EnrolledUserService) CountCreatedInWindow(ctx context.Context, orgID primitive.ObjectID, fromMillis, toMillis int64) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"ownerOrganizationId": orgID,
		"createdAt":           bson.M{"$gte": fromMillis, "$lte": toMillis},
	})
}

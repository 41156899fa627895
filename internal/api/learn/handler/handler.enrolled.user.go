// Package learnhdl chứa các handler HTTP của module learn.
package learnhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/qurriahSam/elewa/internal/api/base/handler"
	learndto "github.com/qurriahSam/elewa/internal/api/learn/dto"
	learnsvc "github.com/qurriahSam/elewa/internal/api/learn/service"
	"github.com/qurriahSam/elewa/internal/common"
)

// EnrolledUserHandler xử lý các request về học viên ghi danh
type EnrolledUserHandler struct {
	enrolledUsers *learnsvc.EnrolledUserService
	endUsers      *learnsvc.EndUserService
}

// NewEnrolledUserHandler tạo mới EnrolledUserHandler
func NewEnrolledUserHandler() (*EnrolledUserHandler, error) {
	enrolledUsers, err := learnsvc.NewEnrolledUserService()
	if err != nil {
		return nil, err
	}
	endUsers, err := learnsvc.NewEndUserService()
	if err != nil {
		return nil, err
	}
	return &EnrolledUserHandler{
		enrolledUsers: enrolledUsers,
		endUsers:      endUsers,
	}, nil
}

// GetOrCreateEnrolledUser tìm học viên ghi danh theo danh tính hội thoại,
// tạo bản ghi mới nếu chưa có. Bot engine gọi endpoint này khi một end user
// bắt đầu nhắn tin.
// Endpoint: POST /api/v1/learn/enrolled-users/get-or-create
// Body: { "orgId": "65f1...", "endUserId": "whatsapp_2547..." }
func (h *EnrolledUserHandler) GetOrCreateEnrolledUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input learndto.GetOrCreateEnrolledUserInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		orgID, err := primitive.ObjectIDFromHex(input.OrgID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"orgId không phải ObjectID hợp lệ",
				common.StatusBadRequest,
				err,
			))
		}

		endUser, err := h.endUsers.GetEndUser(c.Context(), orgID, input.EndUserID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if endUser == nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeDatabaseQuery,
				"Không tìm thấy end user với danh tính hội thoại này",
				common.StatusNotFound,
				nil,
			))
		}

		enrolled, err := h.enrolledUsers.GetOrCreateEnrolledUser(c.Context(), endUser)
		return basehdl.HandleResponse(c, enrolled, err)
	})
}

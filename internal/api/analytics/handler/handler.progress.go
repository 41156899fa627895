// Package analyticshdl chứa các handler HTTP của module analytics: chạy đo
// tiến độ nhóm, đọc snapshot đã đo và quản lý cấu hình analytics.
package analyticshdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	analyticsdto "github.com/qurriahSam/elewa/internal/api/analytics/dto"
	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	analyticssvc "github.com/qurriahSam/elewa/internal/api/analytics/service"
	basehdl "github.com/qurriahSam/elewa/internal/api/base/handler"
	"github.com/qurriahSam/elewa/internal/common"
)

// GroupProgressHandler xử lý các request đo và đọc tiến độ nhóm
type GroupProgressHandler struct {
	groupProgress *analyticssvc.GroupProgressService
	monitoring    *analyticssvc.MonitoringService
	config        *analyticssvc.AnalyticsConfigService
}

// NewGroupProgressHandler tạo mới GroupProgressHandler
func NewGroupProgressHandler() (*GroupProgressHandler, error) {
	groupProgress, err := analyticssvc.NewGroupProgressService()
	if err != nil {
		return nil, err
	}
	monitoring, err := analyticssvc.NewMonitoringService()
	if err != nil {
		return nil, err
	}
	config, err := analyticssvc.NewAnalyticsConfigService()
	if err != nil {
		return nil, err
	}
	return &GroupProgressHandler{
		groupProgress: groupProgress,
		monitoring:    monitoring,
		config:        config,
	}, nil
}

// MeasureGroupProgress chạy đo tiến độ nhóm cho mọi tổ chức trong cấu hình.
// Endpoint: POST /api/v1/analytics/measure-group-progress
// Body: { "interval": 1735689600000 } (tùy chọn, mặc định = bây giờ)
func (h *GroupProgressHandler) MeasureGroupProgress(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input analyticsdto.MeasureGroupProgressInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
		}

		results, err := h.groupProgress.MeasureGroupProgress(c.Context(), analyticsmodels.MeasureGroupProgressCommand{
			Interval: input.Interval,
		})
		return basehdl.HandleResponse(c, results, err)
	})
}

// GetGroupProgress trả về các snapshot tiến độ của một tổ chức, mới nhất trước.
// Endpoint: GET /api/v1/analytics/group-progress/:orgId?page=1&limit=30
func (h *GroupProgressHandler) GetGroupProgress(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		orgID, err := primitive.ObjectIDFromHex(c.Params("orgId"))
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"orgId không phải ObjectID hợp lệ",
				common.StatusBadRequest,
				err,
			))
		}

		page := parseQueryInt(c, "page", 1)
		limit := parseQueryInt(c, "limit", 30)

		result, err := h.monitoring.GetMilestones(c.Context(), orgID, page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// GetAnalyticsConfig trả về cấu hình analytics hiện tại (danh sách tổ chức được đo)
// Endpoint: GET /api/v1/analytics/config
func (h *GroupProgressHandler) GetAnalyticsConfig(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		cfg, err := h.config.GetConfig(c.Context())
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if cfg == nil {
			return basehdl.HandleResponse(c, nil, common.ErrAnalyticsConfigMissing)
		}
		return basehdl.HandleResponse(c, cfg, nil)
	})
}

// SetAnalyticsConfig cập nhật danh sách tổ chức được đo tiến độ
// Endpoint: PUT /api/v1/analytics/config
// Body: { "orgIds": ["65f1...", "65f2..."] }
func (h *GroupProgressHandler) SetAnalyticsConfig(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input analyticsdto.AnalyticsConfigInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		cfg, err := h.config.SetConfig(c.Context(), &analyticsmodels.AnalyticsConfig{
			ConfigKey: analyticsmodels.AnalyticsConfigKey,
			OrgIDs:    input.OrgIDs,
		})
		return basehdl.HandleResponse(c, cfg, err)
	})
}

// parseQueryInt đọc một query param dạng số, trả về defaultValue nếu thiếu hoặc sai định dạng
func parseQueryInt(c fiber.Ctx, key string, defaultValue int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

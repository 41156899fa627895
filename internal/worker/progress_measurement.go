package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	analyticsmodels "github.com/qurriahSam/elewa/internal/api/analytics/models"
	analyticssvc "github.com/qurriahSam/elewa/internal/api/analytics/service"
	"github.com/qurriahSam/elewa/internal/logger"
)

// ProgressMeasurementWorker worker chạy đo tiến độ nhóm theo lịch cron.
// Mỗi lần chạy tạo (hoặc cập nhật) snapshot tiến độ của ngày cho mọi tổ chức
// trong cấu hình analytics.
type ProgressMeasurementWorker struct {
	groupProgress *analyticssvc.GroupProgressService
	cronSpec      string // Biểu thức cron, mặc định "0 0 * * *" (nửa đêm mỗi ngày)
	timezone      *time.Location
	cron          *cron.Cron
}

// NewProgressMeasurementWorker tạo mới ProgressMeasurementWorker
// Tham số:
//   - cronSpec: Biểu thức cron quyết định thời điểm chạy
//   - timezone: Timezone để diễn giải biểu thức cron (trùng timezone cắt bucket theo ngày)
func NewProgressMeasurementWorker(cronSpec string, timezone *time.Location) (*ProgressMeasurementWorker, error) {
	groupProgress, err := analyticssvc.NewGroupProgressService()
	if err != nil {
		return nil, err
	}

	if cronSpec == "" {
		cronSpec = "0 0 * * *"
	}
	if timezone == nil {
		timezone = time.UTC
	}

	return &ProgressMeasurementWorker{
		groupProgress: groupProgress,
		cronSpec:      cronSpec,
		timezone:      timezone,
	}, nil
}

// Start đăng ký job với cron scheduler và bắt đầu chạy nền.
// Job đang chạy dở sẽ không bị chạy chồng (SkipIfStillRunning).
func (w *ProgressMeasurementWorker) Start(ctx context.Context) error {
	log := logger.GetAppLogger()

	w.cron = cron.New(
		cron.WithLocation(w.timezone),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := w.cron.AddFunc(w.cronSpec, func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("[PROGRESS_MEASUREMENT] Panic khi đo tiến độ nhóm, sẽ chạy lại ở lần kế tiếp")
			}
		}()

		results, err := w.groupProgress.MeasureGroupProgress(ctx, analyticsmodels.MeasureGroupProgressCommand{})
		if err != nil {
			log.WithError(err).Error("[PROGRESS_MEASUREMENT] Lỗi khi đo tiến độ nhóm")
			return
		}

		succeeded, failed := 0, 0
		for _, result := range results {
			if result.Failure != nil {
				failed++
				log.WithFields(map[string]interface{}{
					"orgId": result.OrgID,
					"error": result.Failure.Error,
				}).Error("[PROGRESS_MEASUREMENT] Đo tiến độ thất bại cho tổ chức")
				continue
			}
			succeeded++
		}
		log.WithFields(map[string]interface{}{
			"succeeded": succeeded,
			"failed":    failed,
		}).Info("[PROGRESS_MEASUREMENT] Hoàn thành một lượt đo tiến độ nhóm")
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	log.WithFields(map[string]interface{}{
		"cronSpec": w.cronSpec,
		"timezone": w.timezone.String(),
	}).Info("[PROGRESS_MEASUREMENT] Starting Progress Measurement Worker...")

	// Dừng scheduler khi context bị hủy
	go func() {
		<-ctx.Done()
		stopCtx := w.cron.Stop()
		<-stopCtx.Done()
		log.Info("[PROGRESS_MEASUREMENT] Progress Measurement Worker stopped")
	}()

	return nil
}

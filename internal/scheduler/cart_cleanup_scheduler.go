package scheduler

import (
	"time"

	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CartCleanupScheduler sweeps cart rows that have not been touched within
// the retention window. It only runs when cleanup is enabled in config;
// the site works fine without it.
type CartCleanupScheduler struct {
	cron      *cron.Cron
	cartRepo  repository.CartRepository
	retention time.Duration
}

func NewCartCleanupScheduler(cartRepo repository.CartRepository, retention time.Duration) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:      cron.New(),
		cartRepo:  cartRepo,
		retention: retention,
	}
}

func (s *CartCleanupScheduler) Start() error {
	// Daily at 04:00, a quiet hour for a food-ordering site.
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Starting scheduled cart cleanup", map[string]interface{}{
			"retention": s.retention.String(),
		})

		deleted, err := s.cartRepo.DeleteStale(time.Now().Add(-s.retention))
		if err != nil {
			logger.Error("Scheduled cart cleanup failed", err)
			return
		}

		logger.Info("Scheduled cart cleanup finished", map[string]interface{}{
			"deleted": deleted,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started (daily at 4:00 AM)", nil)
	return nil
}

func (s *CartCleanupScheduler) Stop() {
	logger.Info("Stopping cart cleanup scheduler...", nil)
	s.cron.Stop()
	logger.Info("Cart cleanup scheduler stopped", nil)
}

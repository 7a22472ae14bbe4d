package logging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"gorm.io/gorm"
)

// Retention deletes system_logs older than a fixed number of days, once at
// start and then once a day.
type Retention struct {
	db        *gorm.DB
	days      int
	scheduler gocron.Scheduler
}

func NewRetention(db *gorm.DB, days int) (*Retention, error) {
	if days <= 0 {
		return nil, fmt.Errorf("log retention must be positive, got %d days", days)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	r := &Retention{db: db, days: days, scheduler: scheduler}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(r.run),
		gocron.WithName("system-log-retention"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return nil, fmt.Errorf("register retention job: %w", err)
	}
	return r, nil
}

func (r *Retention) Start() {
	r.scheduler.Start()
	slog.Info("log retention scheduled", "days", r.days)
}

func (r *Retention) Stop() error {
	return r.scheduler.Shutdown()
}

func (r *Retention) run() {
	deleted, err := r.Purge(context.Background(), time.Now())
	if err != nil {
		slog.Error("log cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("log cleanup completed", "deleted", deleted)
	}
}

// Purge removes entries older than the retention window measured from now.
func (r *Retention) Purge(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.AddDate(0, 0, -r.days)
	result := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

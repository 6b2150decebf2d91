package visits

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Zachkp/portfolio/internal/logger"
)

// ScheduleCleanup runs Cleanup on schedule, a six-field cron expression with
// seconds. The returned scheduler is already started; Stop it on shutdown.
func ScheduleCleanup(schedule string, months int, rec *Recorder, log *logger.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := rec.Cleanup(ctx, months)
		if err != nil {
			log.Error(err, "visit cleanup failed")
			return
		}
		if n > 0 {
			log.WithFields(map[string]any{"removed": n, "retention_months": months}).Info("removed old visits")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule visit cleanup: %w", err)
	}
	c.Start()
	return c, nil
}

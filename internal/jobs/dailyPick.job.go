package jobs

import (
	"context"
	"time"

	"stillpoint/internal/controllers/catalog"
	"stillpoint/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// DailyPickJob warms the daily session cache just after midnight so the
// first home request of the day does not pay the database round trip.
type DailyPickJob struct {
	catalogController catalog.CatalogControllerInterface
	log               logger.Logger
	schedule          services.Schedule
}

func NewDailyPickJob(
	catalogController catalog.CatalogControllerInterface,
	schedule services.Schedule,
) *DailyPickJob {
	return &DailyPickJob{
		catalogController: catalogController,
		log:               logger.New("dailyPickJob"),
		schedule:          schedule,
	}
}

func (j *DailyPickJob) Name() string {
	return "DailyPickWarmup"
}

func (j *DailyPickJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	session, err := j.catalogController.GetDailySession(ctx, time.Now())
	if err != nil {
		return log.Err("failed to warm daily pick", err)
	}

	log.Info("Daily pick warmed", "sessionID", session.ID, "title", session.Title)
	return nil
}

func (j *DailyPickJob) Schedule() services.Schedule {
	return j.schedule
}

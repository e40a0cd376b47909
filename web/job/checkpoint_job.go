// Package job contains the scheduled maintenance jobs.
package job

import (
	"github.com/fengshuifortune/shop/database"
	"github.com/fengshuifortune/shop/logger"

	"gorm.io/gorm"
)

// CheckpointJob flushes the sqlite WAL into the main database file so it
// does not grow unbounded between restarts.
type CheckpointJob struct {
	db *gorm.DB
}

func NewCheckpointJob(db *gorm.DB) *CheckpointJob {
	return &CheckpointJob{db: db}
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(j.db); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}

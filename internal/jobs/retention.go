package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/models"
)

// logs de auditoria ficam 90 dias
const auditRetention = 90 * 24 * time.Hour

type RetentionJob struct {
	db *gorm.DB
}

func NewRetentionJob(db *gorm.DB) *RetentionJob {
	return &RetentionJob{db: db}
}

// Start agenda a limpeza diária de logs antigos.
func (j *RetentionJob) Start() {
	c := cron.New()

	if _, err := c.AddFunc("0 4 * * *", j.PurgeOldAuditLogs); err != nil {
		log.Printf("failed to schedule retention job: %v", err)
		return
	}

	c.Start()
	log.Println("Retention scheduler started")
}

func (j *RetentionJob) PurgeOldAuditLogs() {
	cutoff := time.Now().Add(-auditRetention)

	res := j.db.
		Where("created_at < ?", cutoff).
		Delete(&models.AuditLog{})

	if res.Error != nil {
		log.Printf("audit retention purge failed: %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		log.Printf("audit retention: purged %d logs", res.RowsAffected)
	}
}

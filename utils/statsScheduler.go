package utils

import (
	"log"

	"stage/config"
	"stage/database"
	"stage/models"

	"github.com/robfig/cron/v3"
)

// InitializeStatsScheduler starts the nightly enrollment stats job.
func InitializeStatsScheduler() {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.StatsSchedule, LogEnrollmentStats)
	if err != nil {
		log.Printf("[STATS-SCHEDULER] invalid schedule %q: %v", config.AppConfig.StatsSchedule, err)
		return
	}

	c.Start()
	log.Printf("[STATS-SCHEDULER] enrollment stats scheduler started (%s)", config.AppConfig.StatsSchedule)
}

// LogEnrollmentStats logs the enrollment count per status.
func LogEnrollmentStats() {
	db := database.Database.Db

	type statusCount struct {
		Status models.Status
		Count  int64
	}

	var counts []statusCount
	err := db.Model(&models.Enrollment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		log.Printf("[STATS-SCHEDULER] stats query failed: %v", err)
		return
	}

	var total int64
	for _, sc := range counts {
		total += sc.Count
	}

	log.Printf("[STATS-SCHEDULER] %d enrollments total", total)
	for _, sc := range counts {
		log.Printf("[STATS-SCHEDULER]   %s: %d", sc.Status, sc.Count)
	}
}

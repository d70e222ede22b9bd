package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler starts the background task scheduler. The nightly sweep
// regenerates fee obligations so students enrolled after a template was
// created pick it up without an admin action. Generation is idempotent, so
// running the sweep more than once is harmless.
func StartScheduler(feeService *FeeService) *cron.Cron {
	c := cron.New()

	// 8:05 PM every day, after the school office has closed.
	_, err := c.AddFunc("5 20 * * *", func() {
		log.Println("Running nightly fee obligation sweep...")
		created, err := feeService.GenerateObligations("")
		if err != nil {
			log.Printf("Nightly fee sweep failed: %v", err)
			return
		}
		log.Printf("Nightly fee sweep created %d obligations", created)
	})
	if err != nil {
		log.Printf("Failed to schedule fee sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}

package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/catchers-sc/teamapp/internal/notification"
)

// StartReminderWorker runs the reminder sweep hourly with apply=true, the
// same sweep the scheduled endpoint exposes. The notificationsSent map keeps
// repeated runs from double-sending.
func StartReminderWorker(sweeper *notification.Sweeper) {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			result, err := sweeper.Run(context.Background(), time.Now(), true)
			if err != nil {
				fmt.Printf("Reminder Worker Error: %v\n", err)
				continue
			}
			if len(result.Mails) > 0 {
				fmt.Printf("Reminder Worker: sent %d reminder(s)\n", len(result.Mails))
			}
		}
	}()
}

package service

import (
	"log"
	"time"

	"smartparking/internal/ledger"
)

// JobService runs the periodic expiry sweep. The cron schedule in main
// invokes ReleaseExpiredSlots once a second.
type JobService struct {
	Ledger *ledger.Ledger
	notify *NotifyService
}

func NewJobService(l *ledger.Ledger, notify *NotifyService) *JobService {
	return &JobService{Ledger: l, notify: notify}
}

// ReleaseExpiredSlots releases every occupied slot whose reservation window
// has elapsed and posts the same notification an explicit release would.
func (s *JobService) ReleaseExpiredSlots() {
	expired, _ := s.Ledger.Tick(time.Now())
	if len(expired) == 0 {
		return
	}
	log.Printf("Expiry job: released %d expired slot(s): %v", len(expired), expired)
	for _, label := range expired {
		s.notify.Success("Slot %s released successfully!", label)
	}
}

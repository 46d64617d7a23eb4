package scheduler

import (
	"log"
	"time"

	authStore "markazy_backend/internals/features/users/auth/store"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose token has
// expired. Runs daily; the blacklist only needs to outlive the 7-day
// token lifetime.
func StartBlacklistCleanupScheduler(s *authStore.GormTokenStore) {
	go func() {
		for {
			removed, err := s.Prune(time.Now())
			if err != nil {
				log.Printf("[CLEANUP ERROR] token_blacklist prune: %v", err)
			} else if removed > 0 {
				log.Printf("[CLEANUP] removed %d expired blacklist tokens", removed)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}

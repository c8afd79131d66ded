package dependency

import (
	"context"
	"log/slog"
	"time"
)

const maintenanceInterval = 24 * time.Hour

// RunMaintenance purges delivered emails and expired auth tokens once at
// startup and then daily, until ctx is cancelled.
func (i *Injector) RunMaintenance(ctx context.Context) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		i.sweep(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (i *Injector) sweep(ctx context.Context) {
	i.EmailWorker.PurgeSent(ctx)

	removed, err := i.tokens.PurgeExpired(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to purge expired tokens", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Purged expired tokens", "count", removed)
	}
}

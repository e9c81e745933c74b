package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is satisfied by the session stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the session backend.
type HealthStatus struct {
	SessionStore string    `json:"sessionStore"`
	Healthy      bool      `json:"healthy"`
	Error        string    `json:"error,omitempty"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the backend once and stores the snapshot.
func CheckHealth(ctx context.Context, name string, backend Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{SessionStore: name, Healthy: true, CheckedAt: time.Now()}
	if err := backend.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, name string, backend Pinger, interval time.Duration) {
	CheckHealth(ctx, name, backend)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, name, backend)
			}
		}
	}()
}

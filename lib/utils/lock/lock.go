package lock

import (
	"context"
	"sync"
	"time"
)

var lockMap sync.Map

const pollInterval = 50 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой по ключу.
// Если ключ занят, ожидает освобождения не дольше wait;
// по таймауту или отмене контекста возвращает success=false
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	deadline := time.After(wait)
	for {
		if _, busy := lockMap.LoadOrStore(key, struct{}{}); !busy {
			defer lockMap.Delete(key)
			return true, safeCode()
		}
		select {
		case <-deadline:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(pollInterval):
		}
	}
}

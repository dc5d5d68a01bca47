package repository

import (
	"sync"
	"time"
)

// Each call is one second later than the previous one.
func tickingClock() func() time.Time {
	var mutex sync.Mutex
	now := time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mutex.Lock()
		defer mutex.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func str(s string) *string {
	return &s
}

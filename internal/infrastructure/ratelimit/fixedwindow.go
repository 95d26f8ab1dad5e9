package ratelimit

import (
	"context"
	"fmt"
	"time"
)

const (
	hourWindowTTL = time.Hour
	dayWindowTTL  = 24 * time.Hour
)

// FixedWindowLimiter counts requests in calendar-aligned hour and day
// windows. Counters live under rate_limit:{key}:hour:{YYYYMMDDHH} and
// rate_limit:{key}:day:{YYYYMMDD}; the TTL is set only when a window is
// first created so the window boundary never slides.
type FixedWindowLimiter struct {
	store   Store
	perHour int64
	perDay  int64
	now     func() time.Time
}

func NewFixedWindowLimiter(store Store, perHour, perDay int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		store:   store,
		perHour: int64(perHour),
		perDay:  int64(perDay),
		now:     time.Now,
	}
}

// WithClock overrides the time source. Used in tests.
func (l *FixedWindowLimiter) WithClock(now func() time.Time) *FixedWindowLimiter {
	l.now = now
	return l
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()

	hourKey := fmt.Sprintf("rate_limit:%s:hour:%s", key, now.Format("2006010215"))
	dayKey := fmt.Sprintf("rate_limit:%s:day:%s", key, now.Format("20060102"))

	hourCount, err := l.incrWindow(ctx, hourKey, hourWindowTTL)
	if err != nil {
		return Result{}, err
	}

	dayCount, err := l.incrWindow(ctx, dayKey, dayWindowTTL)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Allowed:   hourCount <= l.perHour && dayCount <= l.perDay,
		HourCount: hourCount,
		DayCount:  dayCount,
	}
	return result, nil
}

func (l *FixedWindowLimiter) incrWindow(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := l.store.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}

	if count == 1 {
		if err := l.store.Expire(ctx, key, ttl); err != nil {
			return 0, fmt.Errorf("failed to set ttl on %s: %w", key, err)
		}
	}

	return count, nil
}

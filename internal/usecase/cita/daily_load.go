package cita

import (
	"context"
	"time"

	"github.com/agendapy/cita-scheduler/internal/cache"
	domain "github.com/agendapy/cita-scheduler/internal/domain/cita"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/timezone"
)

// DailyLoad feeds the dashboard: active (non-cancelled) cita counts per day
// for one month, cached briefly in redis.
type DailyLoad struct {
	repo  domain.Repository
	cache *cache.DailyLoadCache
	tz    string
}

func NewDailyLoad(
	repo domain.Repository,
	loadCache *cache.DailyLoadCache,
	tz string,
) *DailyLoad {
	return &DailyLoad{
		repo:  repo,
		cache: loadCache,
		tz:    tz,
	}
}

func (uc *DailyLoad) Execute(
	ctx context.Context,
	year int,
	month int,
) (map[string]int64, error) {

	if counts, ok := uc.cache.Get(ctx, year, month); ok {
		return counts, nil
	}

	loc := timezone.Location(uc.tz)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	counts, err := uc.repo.CountByDate(ctx, start, end)
	if err != nil {
		return nil, httperr.ErrExternal("database_error", err)
	}

	uc.cache.Set(ctx, year, month, counts)
	return counts, nil
}

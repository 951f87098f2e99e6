// README: Weather service; composes realtime observations with the cached weekly outlook.
package weather

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("weather data unavailable")

// Forecaster is the upstream surface the service needs; satisfied by *Client.
type Forecaster interface {
	Realtime(ctx context.Context, now time.Time) (temp, precipitation string, err error)
	ShortTerm(ctx context.Context, now time.Time) ([]DailyForecast, error)
	MidTerm(ctx context.Context, now time.Time) ([]DailyForecast, error)
}

type Service struct {
	client Forecaster
	store  *Store
	loc    *time.Location
	log    *zap.SugaredLogger
}

func NewService(client Forecaster, store *Store, log *zap.SugaredLogger) (*Service, error) {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return nil, err
	}
	return &Service{client: client, store: store, loc: loc, log: log}, nil
}

// GetReport returns the current observations plus the weekly forecast. The
// weekly part comes from the Redis cache when a same-day entry exists;
// realtime observations are always fetched fresh.
func (s *Service) GetReport(ctx context.Context) (*Report, error) {
	now := time.Now().In(s.loc)
	today := now.Format("20060102")

	weekly, hit, err := s.store.GetWeekly(ctx, today)
	if err != nil {
		s.log.Warnw("weather cache read failed", "err", err)
	}
	if !hit {
		weekly, err = s.refreshWeekly(ctx, now)
		if err != nil {
			return nil, ErrUnavailable
		}
	}

	temp, precipitation, err := s.client.Realtime(ctx, now)
	if err != nil {
		s.log.Warnw("realtime fetch failed", "err", err)
		// Weekly data alone is still renderable.
		temp, precipitation = "", ""
	}

	report := &Report{
		CurrentTemperature: temp,
		Precipitation:      precipitation,
	}
	for _, f := range weekly {
		if f.Date == today {
			report.Sky = f.SkyPm
			report.TempMax = f.TempMax
			report.TempMin = f.TempMin
			continue
		}
		if f.Date > today && len(report.WeeklyForecast) < 7 {
			report.WeeklyForecast = append(report.WeeklyForecast, f)
		}
	}
	return report, nil
}

func (s *Service) refreshWeekly(ctx context.Context, now time.Time) ([]DailyForecast, error) {
	short, err := s.client.ShortTerm(ctx, now)
	if err != nil {
		s.log.Errorw("short-term fetch failed", "err", err)
		return nil, err
	}
	mid, err := s.client.MidTerm(ctx, now)
	if err != nil {
		// A partial week beats no data at all.
		s.log.Warnw("mid-term fetch failed", "err", err)
		mid = nil
	}
	weekly := mergeForecasts(short, mid)

	today := now.Format("20060102")
	if err := s.store.PutWeekly(ctx, today, weekly, untilMidnight(now)); err != nil {
		s.log.Warnw("weather cache write failed", "err", err)
	}
	return weekly, nil
}

// RunCacheRefresher re-primes the weekly cache shortly after midnight so the
// first morning request is served warm. Call as a goroutine from main.
func (s *Service) RunCacheRefresher(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now().In(s.loc)
			if _, hit, _ := s.store.GetWeekly(ctx, now.Format("20060102")); hit {
				continue
			}
			if _, err := s.refreshWeekly(ctx, now); err != nil {
				s.log.Warnw("scheduled weather refresh failed", "err", err)
			}
		}
	}
}

// mergeForecasts combines the short and mid-term ranges; short-term wins when
// both cover a date.
func mergeForecasts(short, mid []DailyForecast) []DailyForecast {
	covered := make(map[string]bool, len(short))
	out := append([]DailyForecast(nil), short...)
	for _, f := range short {
		covered[f.Date] = true
	}
	for _, f := range mid {
		if !covered[f.Date] {
			out = append(out, f)
		}
	}
	return out
}

func untilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/lumina-reserve/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

// Stats is the admin dashboard summary
type Stats struct {
	TotalReservations int    `json:"totalReservations"`
	TotalEvents       int    `json:"totalEvents"`
	TodayReservations int    `json:"todayReservations"`
	Date              string `json:"date"`
}

type StatsService struct {
	data *DataService
	now  func() time.Time
}

func NewStatsService(data *DataService) *StatsService {
	return &StatsService{data: data, now: time.Now}
}

// Stats reads reservations and events concurrently and waits for both
// before counting.
func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	var (
		reservations []models.Reservation
		events       []models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reservations = s.data.GetReservations(gctx)
		return nil
	})
	g.Go(func() error {
		events = s.data.ListEvents(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	today := s.now().UTC().Format(time.DateOnly)
	stats := Stats{
		TotalReservations: len(reservations),
		TotalEvents:       len(events),
		Date:              today,
	}
	for _, r := range reservations {
		// sheets may hand dates back as full ISO timestamps
		if strings.HasPrefix(r.Date, today) {
			stats.TodayReservations++
		}
	}
	return stats, nil
}

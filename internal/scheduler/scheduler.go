package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/yosefdabbas22/weather-app/internal/geo"
	"github.com/yosefdabbas22/weather-app/internal/weather"
)

// LocationSource lists the locations whose cached weather should be kept
// warm; in practice this is the recent-search store.
type LocationSource interface {
	Locations() ([]geo.Resolved, error)
}

// Scheduler periodically refreshes cached weather for recently searched
// locations so repeat lookups stay fast.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	source    LocationSource
	interval  time.Duration
}

// New creates a new Scheduler.
func New(source LocationSource, interval time.Duration, service *weather.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		source:    source,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		locs, err := s.source.Locations()
		if err != nil {
			log.Printf("scheduler: failed to list locations: %v", err)
			return
		}
		if len(locs) == 0 {
			return
		}

		log.Printf("scheduler: refreshing weather for %d locations", len(locs))

		var wg sync.WaitGroup
		for _, loc := range locs {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.service.Refresh(ctx, loc); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", loc.Key(), err)
				}
			}()
		}
		wg.Wait()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

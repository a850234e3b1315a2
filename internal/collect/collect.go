package collect

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ryanditko/Prova-RPA/internal/openweather"
	"github.com/Ryanditko/Prova-RPA/internal/reading"
	"github.com/Ryanditko/Prova-RPA/internal/report"
	"github.com/Ryanditko/Prova-RPA/internal/store"
)

// Fetcher retrieves the raw provider payload for one city.
type Fetcher interface {
	Current(ctx context.Context, city string) (*openweather.Payload, error)
}

// Storage is the slice of the store the pipeline needs.
type Storage interface {
	Append(r reading.Reading) error
	Recent(limit int) ([]store.RecentReading, error)
}

// Summary counts the outcome of one run.
type Summary struct {
	Collected int
	Failed    int
}

// Runner drives the fetch, normalize, print, persist loop, strictly one city
// at a time in list order.
type Runner struct {
	Fetcher Fetcher
	Store   Storage
	Log     *logrus.Logger
	Out     io.Writer

	// Now is the clock used to stamp readings; nil means time.Now.
	Now func() time.Time
}

// Run processes every city in order, then lists the most recent stored rows.
// A failed fetch skips the city (no row is written) and the loop continues;
// a storage failure aborts the run.
func (r *Runner) Run(ctx context.Context, cities []string, limit int) (Summary, error) {
	var sum Summary

	for _, city := range cities {
		r.Log.Infof("requesting weather for %s", city)

		payload, err := r.Fetcher.Current(ctx, city)
		if err != nil {
			r.Log.Warnf("skipping %s: %v", city, err)
			sum.Failed++
			continue
		}
		r.Log.Infof("weather for %s received", payload.Name)

		rec := reading.Normalize(payload, r.now())
		report.WriteReading(r.Out, rec)

		if err := r.Store.Append(rec); err != nil {
			return sum, err
		}
		r.Log.Infof("reading for %s stored", rec.City)
		sum.Collected++
	}

	rows, err := r.Store.Recent(limit)
	if err != nil {
		return sum, err
	}
	report.WriteRecent(r.Out, rows)

	return sum, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

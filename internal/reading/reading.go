package reading

import (
	"time"

	"github.com/Ryanditko/Prova-RPA/internal/openweather"
)

// TimeLayout is the wall-clock stamp stored with every reading.
const TimeLayout = "2006-01-02 15:04:05"

// Reading is one flat weather observation for one city. City is always
// present; every other field is independently nullable because the provider
// may omit any sub-object of the payload.
type Reading struct {
	ID                int64    `db:"id"`
	City              string   `db:"city"`
	Country           *string  `db:"country"`
	TemperatureC      *float64 `db:"temperature_c"`
	FeelsLikeC        *float64 `db:"feels_like_c"`
	TempMinC          *float64 `db:"temp_min_c"`
	TempMaxC          *float64 `db:"temp_max_c"`
	PressureHPa       *int64   `db:"pressure_hpa"`
	HumidityPct       *int64   `db:"humidity_pct"`
	Description       *string  `db:"description"`
	WindSpeedMS       *float64 `db:"wind_speed_ms"`
	CloudCoverPct     *int64   `db:"cloud_cover_pct"`
	ObservedAt        string   `db:"observed_at_local"`
	ProviderTimestamp *int64   `db:"provider_timestamp"`
}

// Normalize projects a provider payload into a flat Reading. It is total: a
// sparse or empty payload yields nil fields, never a panic. ObservedAt is
// stamped with the given processing time, independent of the provider's dt
// (kept separately in ProviderTimestamp).
func Normalize(p *openweather.Payload, now time.Time) Reading {
	r := Reading{ObservedAt: now.Format(TimeLayout)}
	if p == nil {
		return r
	}

	r.City = p.Name
	r.ProviderTimestamp = p.Dt

	if p.Sys != nil {
		r.Country = p.Sys.Country
	}
	if p.Main != nil {
		r.TemperatureC = p.Main.Temp
		r.FeelsLikeC = p.Main.FeelsLike
		r.TempMinC = p.Main.TempMin
		r.TempMaxC = p.Main.TempMax
		r.PressureHPa = p.Main.Pressure
		r.HumidityPct = p.Main.Humidity
	}
	if len(p.Weather) > 0 {
		r.Description = p.Weather[0].Description
	}
	if p.Wind != nil {
		r.WindSpeedMS = p.Wind.Speed
	}
	if p.Clouds != nil {
		r.CloudCoverPct = p.Clouds.All
	}
	return r
}

package manager

import (
	"context"
)

// Provider is a source of weather data. An empty at asks for current
// conditions, otherwise the conditions at that instant.
type Provider interface {
	Weather(ctx context.Context, location, at string) (Report, error)
	Kind() Kind
}

type Geocoding interface {
	Get(ctx context.Context, name string) (Location, error)
}

type Location struct {
	Name string  `json:"name"`
	Lat  float32 `json:"lat"`
	Lon  float32 `json:"lon"`
}

// Report is a provider-agnostic observation. Fields a provider does not
// supply are nil.
type Report struct {
	Location     *Location
	Sunrise      *uint64
	Sunset       *uint64
	TemperatureC *float32
	FeelsLikeC   *float32
	PressureMb   *uint16
	HumidityPct  *uint8
}

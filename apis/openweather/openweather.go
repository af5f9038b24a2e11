package openweather

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"weather/apis/geocoding"
	"weather/apis/rest"
	"weather/manager"
)

type Endpoints struct {
	Geocoding string `yaml:"geocoding"`
	Current   string `yaml:"current"`
	History   string `yaml:"history"`
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Geocoding: geocoding.DefaultURL,
		Current:   "https://api.openweathermap.org/data/2.5/weather",
		History:   "https://history.openweathermap.org/data/3.0/history/timemachine",
	}
}

func New(client *resty.Client, endpoints Endpoints, apiKey string) *openWeather {
	defaults := DefaultEndpoints()
	if endpoints.Current == "" {
		endpoints.Current = defaults.Current
	}
	if endpoints.History == "" {
		endpoints.History = defaults.History
	}

	return &openWeather{
		client:    client,
		endpoints: endpoints,
		apiKey:    apiKey,
		geocoding: geocoding.New(client, endpoints.Geocoding, apiKey),
	}
}

type openWeather struct {
	client    *resty.Client
	endpoints Endpoints
	apiKey    string
	geocoding manager.Geocoding
}

func (o openWeather) Kind() manager.Kind {
	return manager.OpenWeather
}

func (o openWeather) Weather(ctx context.Context, location, at string) (manager.Report, error) {
	loc, err := o.geocoding.Get(ctx, location)
	if err != nil {
		return manager.Report{}, err
	}

	if at == "" {
		return o.current(ctx, loc)
	}

	return o.history(ctx, loc, at)
}

func (o openWeather) current(ctx context.Context, loc manager.Location) (manager.Report, error) {
	body, err := rest.Get(ctx, o.client, o.endpoints.Current, o.params(loc), "appid")
	if err != nil {
		return manager.Report{}, err
	}

	var result struct {
		Sys  measurements `json:"sys"`
		Main measurements `json:"main"`
	}
	if err = rest.Unmarshal(body, &result); err != nil {
		return manager.Report{}, err
	}

	return normalize(loc, result.Sys, "sys", result.Main, "main")
}

// history needs a paid subscription upstream; free keys get a 401.
func (o openWeather) history(ctx context.Context, loc manager.Location, at string) (manager.Report, error) {
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return manager.Report{}, fmt.Errorf("%w: %w", manager.ErrInvalidTime, err)
	}

	params := o.params(loc)
	params["dt"] = strconv.FormatInt(t.Unix(), 10)

	body, err := rest.Get(ctx, o.client, o.endpoints.History, params, "appid")
	if err != nil {
		return manager.Report{}, err
	}

	var result struct {
		Data measurements `json:"data"`
	}
	if err = rest.Unmarshal(body, &result); err != nil {
		return manager.Report{}, err
	}

	return normalize(loc, result.Data, "data", result.Data, "data")
}

func (o openWeather) params(loc manager.Location) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(float64(loc.Lat), 'f', -1, 32),
		"lon":   strconv.FormatFloat(float64(loc.Lon), 'f', -1, 32),
		"appid": o.apiKey,
		"units": "metric",
	}
}

// measurements covers both the sys/main pair of the current endpoint and
// the data object of the timemachine endpoint. Nil means absent.
type measurements struct {
	Sunrise   *uint64  `json:"sunrise"`
	Sunset    *uint64  `json:"sunset"`
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Pressure  *uint64  `json:"pressure"`
	Humidity  *uint64  `json:"humidity"`
}

// normalize reads sunrise/sunset from sun and the measurements from main.
func normalize(loc manager.Location, sun measurements, sunPath string, main measurements, mainPath string) (manager.Report, error) {
	sunrise, err := rest.Required(sun.Sunrise, sunPath+".sunrise")
	if err != nil {
		return manager.Report{}, err
	}
	sunset, err := rest.Required(sun.Sunset, sunPath+".sunset")
	if err != nil {
		return manager.Report{}, err
	}
	temp, err := rest.Required(main.Temp, mainPath+".temp")
	if err != nil {
		return manager.Report{}, err
	}
	feelsLike, err := rest.Required(main.FeelsLike, mainPath+".feels_like")
	if err != nil {
		return manager.Report{}, err
	}
	pressure, err := rest.Required(main.Pressure, mainPath+".pressure")
	if err != nil {
		return manager.Report{}, err
	}
	humidity, err := rest.Required(main.Humidity, mainPath+".humidity")
	if err != nil {
		return manager.Report{}, err
	}

	var (
		tempC      = float32(temp)
		feelsLikeC = float32(feelsLike)
		pressureMb = uint16(pressure)
		humidityPc = uint8(humidity)
	)

	return manager.Report{
		Location:     &loc,
		Sunrise:      &sunrise,
		Sunset:       &sunset,
		TemperatureC: &tempC,
		FeelsLikeC:   &feelsLikeC,
		PressureMb:   &pressureMb,
		HumidityPct:  &humidityPc,
	}, nil
}

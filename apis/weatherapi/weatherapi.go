package weatherapi

import (
	"context"

	"github.com/go-resty/resty/v2"

	"weather/apis/rest"
	"weather/manager"
)

type Endpoints struct {
	Current string `yaml:"current"`
	History string `yaml:"history"`
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Current: "http://api.weatherapi.com/v1/current.json",
		History: "http://api.weatherapi.com/v1/history.json",
	}
}

func New(client *resty.Client, endpoints Endpoints, apiKey string) *weatherApi {
	defaults := DefaultEndpoints()
	if endpoints.Current == "" {
		endpoints.Current = defaults.Current
	}
	if endpoints.History == "" {
		endpoints.History = defaults.History
	}

	return &weatherApi{
		client:    client,
		endpoints: endpoints,
		apiKey:    apiKey,
	}
}

type weatherApi struct {
	client    *resty.Client
	endpoints Endpoints
	apiKey    string
}

func (w weatherApi) Kind() manager.Kind {
	return manager.WeatherApi
}

// Weather queries by place name directly. at is handed to the upstream
// untouched.
func (w weatherApi) Weather(ctx context.Context, location, at string) (manager.Report, error) {
	params := map[string]string{
		"key": w.apiKey,
		"q":   location,
	}

	path, block := w.endpoints.Current, "current"
	if at == "" {
		params["aqi"] = "no"
	} else {
		params["dt"] = at
		path, block = w.endpoints.History, "hour"
	}

	body, err := rest.Get(ctx, w.client, path, params, "key")
	if err != nil {
		return manager.Report{}, err
	}

	var result struct {
		Location struct {
			Name *string  `json:"name"`
			Lat  *float64 `json:"lat"`
			Lon  *float64 `json:"lon"`
		} `json:"location"`
		Current conditions `json:"current"`
		Hour    conditions `json:"hour"`
	}
	if err = rest.Unmarshal(body, &result); err != nil {
		return manager.Report{}, err
	}

	name, err := rest.Required(result.Location.Name, "location.name")
	if err != nil {
		return manager.Report{}, err
	}
	lat, err := rest.Required(result.Location.Lat, "location.lat")
	if err != nil {
		return manager.Report{}, err
	}
	lon, err := rest.Required(result.Location.Lon, "location.lon")
	if err != nil {
		return manager.Report{}, err
	}

	loc := manager.Location{Name: name, Lat: float32(lat), Lon: float32(lon)}
	if block == "hour" {
		return normalize(loc, result.Hour, block)
	}
	return normalize(loc, result.Current, block)
}

type conditions struct {
	TempC      *float64 `json:"temp_c"`
	FeelsLikeC *float64 `json:"feelslike_c"`
	PressureMb *float64 `json:"pressure_mb"`
	Humidity   *uint64  `json:"humidity"`
}

func normalize(loc manager.Location, c conditions, block string) (manager.Report, error) {
	temp, err := rest.Required(c.TempC, block+".temp_c")
	if err != nil {
		return manager.Report{}, err
	}
	feelsLike, err := rest.Required(c.FeelsLikeC, block+".feelslike_c")
	if err != nil {
		return manager.Report{}, err
	}
	pressure, err := rest.Required(c.PressureMb, block+".pressure_mb")
	if err != nil {
		return manager.Report{}, err
	}
	humidity, err := rest.Required(c.Humidity, block+".humidity")
	if err != nil {
		return manager.Report{}, err
	}

	var (
		tempC      = float32(temp)
		feelsLikeC = float32(feelsLike)
		pressureMb = rest.Uint16(pressure)
		humidityPc = uint8(humidity)
	)

	return manager.Report{
		Location:     &loc,
		TemperatureC: &tempC,
		FeelsLikeC:   &feelsLikeC,
		PressureMb:   &pressureMb,
		HumidityPct:  &humidityPc,
	}, nil
}

package geocoding

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"weather/apis/rest"
	"weather/manager"
)

const DefaultURL = "https://api.openweathermap.org/geo/1.0/direct"

// New returns an OpenWeather direct geocoder. An empty url selects DefaultURL.
func New(client *resty.Client, url, apiKey string) *geocoding {
	if url == "" {
		url = DefaultURL
	}
	return &geocoding{
		client: client,
		url:    url,
		apiKey: apiKey,
	}
}

type geocoding struct {
	client *resty.Client
	url    string
	apiKey string
}

// Get resolves name to the first candidate the upstream returns.
func (g geocoding) Get(ctx context.Context, name string) (manager.Location, error) {
	params := map[string]string{
		"q":     name,
		"limit": "1",
		"appid": g.apiKey,
	}

	body, err := rest.Get(ctx, g.client, g.url, params, "appid")
	if err != nil {
		return manager.Location{}, err
	}

	// null and [] must stay distinguishable
	var candidates *[]candidate
	if err = rest.Unmarshal(body, &candidates); err != nil {
		return manager.Location{}, err
	}
	if candidates == nil {
		return manager.Location{}, fmt.Errorf("%w: geocoding response is null", manager.ErrParsing)
	}

	locations := make([]manager.Location, 0, len(*candidates))
	for i, c := range *candidates {
		loc, err := c.location(i)
		if err != nil {
			return manager.Location{}, err
		}
		locations = append(locations, loc)
	}

	if len(locations) == 0 {
		return manager.Location{}, fmt.Errorf("%w: %q", manager.ErrLocationNotFound, name)
	}

	return locations[0], nil
}

type candidate struct {
	Name *string  `json:"name"`
	Lat  *float32 `json:"lat"`
	Lon  *float32 `json:"lon"`
}

func (c candidate) location(i int) (manager.Location, error) {
	prefix := fmt.Sprintf("[%d].", i)

	name, err := rest.Required(c.Name, prefix+"name")
	if err != nil {
		return manager.Location{}, err
	}
	lat, err := rest.Required(c.Lat, prefix+"lat")
	if err != nil {
		return manager.Location{}, err
	}
	lon, err := rest.Required(c.Lon, prefix+"lon")
	if err != nil {
		return manager.Location{}, err
	}

	return manager.Location{Name: name, Lat: lat, Lon: lon}, nil
}

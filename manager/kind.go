package manager

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a provider implementation. The zero value is the default.
type Kind int

const (
	OpenWeather Kind = iota
	WeatherApi
)

func (k Kind) String() string {
	switch k {
	case OpenWeather:
		return "OpenWeather"
	case WeatherApi:
		return "WeatherApi"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts user input into a Kind. Unlike UnmarshalJSON it
// rejects anything it does not recognize.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "openweather":
		return OpenWeather, nil
	case "weatherapi":
		return WeatherApi, nil
	}

	return OpenWeather, fmt.Errorf("%w %q (want openweather or weatherapi)", ErrUnknownProvider, s)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON never fails: values that are not a known kind name
// decode to the default kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*k = OpenWeather
		return nil
	}

	switch s {
	case WeatherApi.String():
		*k = WeatherApi
	default:
		*k = OpenWeather
	}

	return nil
}

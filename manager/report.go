package manager

import (
	"strconv"
	"strings"
	"time"
)

const sunTimeLayout = "2006-01-02 15:04:05"

func (r Report) String() string {
	var b strings.Builder

	if r.Location != nil {
		b.WriteString("Weather for Location: " + r.Location.Name + "\n")
	}
	if r.Sunrise != nil {
		b.WriteString("Sunrise: " + formatEpoch(*r.Sunrise) + "\n")
	}
	if r.Sunset != nil {
		b.WriteString("Sunset: " + formatEpoch(*r.Sunset) + "\n")
	}
	if r.TemperatureC != nil {
		b.WriteString("Temperature: " + formatFloat(*r.TemperatureC) + "C\n")
	}
	if r.FeelsLikeC != nil {
		b.WriteString("Feels like: " + formatFloat(*r.FeelsLikeC) + "C\n")
	}
	if r.PressureMb != nil {
		b.WriteString("Pressure: " + strconv.FormatUint(uint64(*r.PressureMb), 10) + "mb\n")
	}
	if r.HumidityPct != nil {
		b.WriteString("Humidity: " + strconv.FormatUint(uint64(*r.HumidityPct), 10) + "%\n")
	}

	return b.String()
}

func formatEpoch(sec uint64) string {
	return time.Unix(int64(sec), 0).UTC().Format(sunTimeLayout)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	kind  Kind
	calls int
}

func (f *fakeProvider) Kind() Kind {
	return f.kind
}

func (f *fakeProvider) Weather(ctx context.Context, location, at string) (Report, error) {
	f.calls++
	return Report{Location: &Location{Name: location}}, nil
}

func TestSelect(t *testing.T) {
	openWeather := &fakeProvider{kind: OpenWeather}
	weatherApi := &fakeProvider{kind: WeatherApi}

	w := New()
	w.RegisterAPI(openWeather, weatherApi)

	api, err := w.Select(WeatherApi)
	require.NoError(t, err)
	assert.Same(t, weatherApi, api)
	assert.Equal(t, WeatherApi, api.Kind())

	api, err = w.Select(OpenWeather)
	require.NoError(t, err)
	assert.Same(t, openWeather, api)
}

func TestSelectNoProvider(t *testing.T) {
	w := New()
	w.RegisterAPI(&fakeProvider{kind: OpenWeather})

	_, err := w.Select(WeatherApi)
	assert.ErrorIs(t, err, ErrNoProviderFound)

	_, err = New().Select(OpenWeather)
	assert.ErrorIs(t, err, ErrNoProviderFound)
}

func TestGetDelegates(t *testing.T) {
	openWeather := &fakeProvider{kind: OpenWeather}
	weatherApi := &fakeProvider{kind: WeatherApi}

	w := New()
	w.RegisterAPI(openWeather, weatherApi)

	report, err := w.Get(context.Background(), WeatherApi, "Paris", "")
	require.NoError(t, err)
	require.NotNil(t, report.Location)
	assert.Equal(t, "Paris", report.Location.Name)
	assert.Equal(t, 1, weatherApi.calls)
	assert.Equal(t, 0, openWeather.calls)
}

func TestGetNoProvider(t *testing.T) {
	_, err := New().Get(context.Background(), WeatherApi, "Paris", "")
	assert.ErrorIs(t, err, ErrNoProviderFound)
}

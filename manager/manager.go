package manager

import (
	"context"
	"fmt"
	"log/slog"
)

func New() *weather {
	return &weather{}
}

type weather struct {
	apis []Provider
}

// Get looks the weather up with the provider registered for kind.
func (w *weather) Get(ctx context.Context, kind Kind, location, at string) (Report, error) {
	api, err := w.Select(kind)
	if err != nil {
		return Report{}, err
	}

	slog.InfoContext(ctx, "using provider", "provider", api.Kind().String(), "location", location, "time", at)

	return api.Weather(ctx, location, at)
}

func (w *weather) Select(kind Kind) (Provider, error) {
	for _, api := range w.apis {
		if api.Kind() == kind {
			return api, nil
		}
	}

	return nil, fmt.Errorf("%w for %s", ErrNoProviderFound, kind)
}

func (w *weather) RegisterAPI(apis ...Provider) {
	w.apis = append(w.apis, apis...)
}

package geo

//go:generate mockgen -destination=mock_provider.go -package=geo . Provider

import (
	"context"
	"math/rand/v2"
	"time"

	"civicreporter/models"
)

// Provider stands in for device geolocation.
type Provider interface {
	// Coordinates places a new report near the map center.
	Coordinates() models.Coordinates
	// DetectLocation resolves a street address for the reporter. It blocks
	// until the lookup finishes or ctx is done.
	DetectLocation(ctx context.Context) (string, error)
}

// SampleLocations are the addresses the simulated detector picks from.
var SampleLocations = []string{
	"Main Street & 1st Avenue",
	"Park Avenue & Central Road",
	"Commerce Street & Broadway",
	"Industrial Road & Factory Lane",
	"Residential Area, Block A",
}

// Jitter is the maximum offset in degrees applied to each axis.
const Jitter = 0.01

// RandomProvider scatters coordinates around a center and simulates a slow
// location lookup.
type RandomProvider struct {
	Center models.Coordinates
	Delay  time.Duration
	rnd    func() float64
	pick   func(n int) int
}

func NewRandomProvider(center models.Coordinates, delay time.Duration) *RandomProvider {
	return &RandomProvider{
		Center: center,
		Delay:  delay,
		rnd:    rand.Float64,
		pick:   rand.IntN,
	}
}

func (p *RandomProvider) Coordinates() models.Coordinates {
	return models.Coordinates{
		Latitude:  p.Center.Latitude + (p.rnd()-0.5)*2*Jitter,
		Longitude: p.Center.Longitude + (p.rnd()-0.5)*2*Jitter,
	}
}

func (p *RandomProvider) DetectLocation(ctx context.Context) (string, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}
	return SampleLocations[p.pick(len(SampleLocations))], nil
}

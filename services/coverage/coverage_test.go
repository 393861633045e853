package coverage

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carebridge/models"
	"carebridge/services/settings"
)

type fakeResolver struct {
	coord *models.Coordinate
	err   error
}

func (f *fakeResolver) Resolve(ctx context.Context, postalCode, freeform string) (*models.Coordinate, error) {
	return f.coord, f.err
}

type fakeProviderRepo struct {
	providers []models.Provider
	err       error
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].ID == id {
			return &f.providers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	return f.providers, f.err
}

func (f *fakeProviderRepo) ListApproved(ctx context.Context) ([]models.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Provider
	for _, p := range f.providers {
		if p.Approved() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) Create(ctx context.Context, provider *models.Provider) error { return nil }
func (f *fakeProviderRepo) Update(ctx context.Context, provider *models.Provider) error { return nil }
func (f *fakeProviderRepo) Delete(ctx context.Context, id string) error                 { return nil }
func (f *fakeProviderRepo) SetCoordinate(ctx context.Context, id string, coord models.Coordinate) error {
	return nil
}

type fakeStore struct {
	values map[string]string
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("not set")
	}
	return v, nil
}

func (f *fakeStore) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStore) Subscribe(ctx context.Context, onChange func(key, value string)) {}

func newService(resolver *fakeResolver, providers *fakeProviderRepo, radius string) *DefaultCoverageService {
	return &DefaultCoverageService{
		Resolver:  resolver,
		Providers: providers,
		Settings: &settings.Service{Store: &fakeStore{
			values: map[string]string{"active_service_radius": radius},
		}},
		Logger: zap.NewNop(),
	}
}

var (
	toronto     = models.Coordinate{Latitude: 43.6532, Longitude: -79.3832}
	mississauga = models.Coordinate{Latitude: 43.5890, Longitude: -79.6441}
	ottawa      = models.Coordinate{Latitude: 45.4215, Longitude: -75.6972}
)

func approvedProvider(id string, coord models.Coordinate) models.Provider {
	c := coord
	return models.Provider{ID: id, Status: models.ProviderStatusApproved, Coordinate: &c}
}

func TestCheckCoverageInRange(t *testing.T) {
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", mississauga),
	}}
	svc := newService(&fakeResolver{}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	require.NoError(t, err)

	assert.True(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageInRange, result.Reason)
	require.NotNil(t, result.NearestProviderID)
	assert.Equal(t, "p1", *result.NearestProviderID)
	require.NotNil(t, result.ClosestDistanceKm)
	assert.InDelta(t, 22, *result.ClosestDistanceKm, 2)
	assert.Equal(t, 1, result.ProvidersFound)
}

func TestCheckCoverageOutOfRange(t *testing.T) {
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", ottawa),
	}}
	svc := newService(&fakeResolver{}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	require.NoError(t, err)

	assert.False(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageOutOfRange, result.Reason)
	require.NotNil(t, result.ClosestDistanceKm)
	assert.InDelta(t, 352, *result.ClosestDistanceKm, 5)
}

func TestCheckCoverageNoSupply(t *testing.T) {
	pending := models.Provider{ID: "p1", Status: models.ProviderStatusPending, Coordinate: &mississauga}
	ungeocoded := models.Provider{ID: "p2", Status: models.ProviderStatusApproved}
	providers := &fakeProviderRepo{providers: []models.Provider{pending, ungeocoded}}
	svc := newService(&fakeResolver{}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	require.NoError(t, err)

	assert.False(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageNoSupply, result.Reason)
	assert.Nil(t, result.ClosestDistanceKm)
	assert.Nil(t, result.NearestProviderID)
}

func TestCheckCoverageUnresolvedLocation(t *testing.T) {
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", mississauga),
	}}

	// Clean geocode miss.
	svc := newService(&fakeResolver{coord: nil}, providers, "75")
	result, err := svc.CheckCoverage(context.Background(), Query{PostalCode: "X0X 0X0"})
	require.NoError(t, err)
	assert.False(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageUnresolved, result.Reason)

	// Transport failure is treated the same way; the check itself succeeds.
	svc = newService(&fakeResolver{err: errors.New("timeout")}, providers, "75")
	result, err = svc.CheckCoverage(context.Background(), Query{PostalCode: "M5V 2T6"})
	require.NoError(t, err)
	assert.Equal(t, models.CoverageUnresolved, result.Reason)
}

func TestCheckCoverageResolvesWhenCoordinateMissing(t *testing.T) {
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", mississauga),
	}}
	svc := newService(&fakeResolver{coord: &toronto}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{PostalCode: "M5V 2T6"})
	require.NoError(t, err)
	assert.True(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageInRange, result.Reason)
}

func TestCheckCoverageMidRangeDistance(t *testing.T) {
	// Whitby is roughly 45 km from downtown Toronto, well inside a 75 km
	// radius but far enough to exercise a non-trivial distance.
	whitby := models.Coordinate{Latitude: 43.8975, Longitude: -78.9429}
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", whitby),
	}}
	svc := newService(&fakeResolver{}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	require.NoError(t, err)
	assert.True(t, result.WithinCoverage)
	require.NotNil(t, result.ClosestDistanceKm)
	assert.InDelta(t, 45, *result.ClosestDistanceKm, 5)
}

func TestCheckCoveragePicksNearestProvider(t *testing.T) {
	providers := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("far", ottawa),
		approvedProvider("near", mississauga),
	}}
	svc := newService(&fakeResolver{}, providers, "75")

	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	require.NoError(t, err)
	require.NotNil(t, result.NearestProviderID)
	assert.Equal(t, "near", *result.NearestProviderID)
	assert.Equal(t, 2, result.ProvidersFound)
}

func TestCheckCoverageRadiusBoundaryIsInclusive(t *testing.T) {
	client := models.Coordinate{Latitude: 43.0, Longitude: -79.0}

	// Providers placed due north of the client so the haversine distance is
	// a pure function of the latitude delta.
	atKm := func(km float64) models.Coordinate {
		deltaDeg := (km / 6371.0) * 180 / math.Pi
		return models.Coordinate{Latitude: client.Latitude + deltaDeg, Longitude: client.Longitude}
	}

	justInside := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", atKm(74.999)),
	}}
	svc := newService(&fakeResolver{}, justInside, "75")
	result, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &client})
	require.NoError(t, err)
	assert.True(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageInRange, result.Reason)

	justOutside := &fakeProviderRepo{providers: []models.Provider{
		approvedProvider("p1", atKm(75.001)),
	}}
	svc = newService(&fakeResolver{}, justOutside, "75")
	result, err = svc.CheckCoverage(context.Background(), Query{Coordinate: &client})
	require.NoError(t, err)
	assert.False(t, result.WithinCoverage)
	assert.Equal(t, models.CoverageOutOfRange, result.Reason)
}

func TestCheckCoverageRejectsInvalidCoordinate(t *testing.T) {
	providers := &fakeProviderRepo{}
	svc := newService(&fakeResolver{}, providers, "75")

	bad := models.Coordinate{Latitude: 120, Longitude: 0}
	_, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &bad})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinates)
}

func TestCheckCoverageListFailurePropagates(t *testing.T) {
	providers := &fakeProviderRepo{err: errors.New("mongo down")}
	svc := newService(&fakeResolver{}, providers, "75")

	_, err := svc.CheckCoverage(context.Background(), Query{Coordinate: &toronto})
	assert.Error(t, err)
}

package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carebridge/models"
	"carebridge/services/settings"
)

type fakeRuleRepo struct {
	rules []models.SurgeRule
	err   error
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule models.SurgeRule) (string, error) {
	return "", nil
}
func (f *fakeRuleRepo) GetByID(ctx context.Context, id string) (*models.SurgeRule, error) {
	return nil, errors.New("not found")
}
func (f *fakeRuleRepo) GetAll(ctx context.Context) ([]models.SurgeRule, error) {
	return f.rules, f.err
}
func (f *fakeRuleRepo) ListEnabled(ctx context.Context) ([]models.SurgeRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.SurgeRule
	for _, r := range f.rules {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeRuleRepo) Update(ctx context.Context, rule models.SurgeRule) error { return nil }
func (f *fakeRuleRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeSettingsStore struct {
	values map[string]string
}

func (f *fakeSettingsStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("not set")
	}
	return v, nil
}

func (f *fakeSettingsStore) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettingsStore) Subscribe(ctx context.Context, onChange func(key, value string)) {}

func quoteService(rules []models.SurgeRule, stored map[string]string) *DefaultPricingService {
	if stored == nil {
		stored = map[string]string{}
	}
	return &DefaultPricingService{
		RuleRepo: &fakeRuleRepo{rules: rules},
		Settings: &settings.Service{Store: &fakeSettingsStore{values: stored}},
		Logger:   zap.NewNop(),
	}
}

func TestQuoteRateBaseOnly(t *testing.T) {
	svc := quoteService(nil, nil)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	quote, err := svc.QuoteRate(context.Background(), 35, now.Add(2*time.Hour), now)
	require.NoError(t, err)

	assert.Equal(t, 35.0, quote.BaseRate)
	assert.Equal(t, 1.0, quote.SurgeMultiplier)
	assert.False(t, quote.ASAPApplied)
	assert.Equal(t, 1.0, quote.ASAPMultiplier)
	assert.Equal(t, 35.0, quote.FinalRate)
}

func TestQuoteRateASAPPremium(t *testing.T) {
	stored := map[string]string{
		"asap_pricing_enabled":   "true",
		"asap_multiplier":        "1.25",
		"asap_lead_time_minutes": "30",
	}
	svc := quoteService(nil, stored)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	// Requested start inside the lead-time window.
	quote, err := svc.QuoteRate(context.Background(), 35, now.Add(10*time.Minute), now)
	require.NoError(t, err)
	assert.True(t, quote.ASAPApplied)
	assert.Equal(t, 1.25, quote.ASAPMultiplier)
	assert.Equal(t, 43.75, quote.FinalRate)

	// Requested start past the window: no premium.
	quote, err = svc.QuoteRate(context.Background(), 35, now.Add(2*time.Hour), now)
	require.NoError(t, err)
	assert.False(t, quote.ASAPApplied)
	assert.Equal(t, 1.0, quote.ASAPMultiplier)
	assert.Equal(t, 35.0, quote.FinalRate)
}

func TestQuoteRateSurgeEvaluatedAtRequestedStart(t *testing.T) {
	evening := models.SurgeRule{
		Name: "evening", Enabled: true, Multiplier: 1.2, Stackable: true,
		TimeRange: &models.TimeRange{Start: "17:00", End: "21:00"},
	}
	svc := quoteService([]models.SurgeRule{evening}, nil)

	// Quoting at noon for a 18:00 start still picks up the evening surge.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	quote, err := svc.QuoteRate(context.Background(), 40, start, now)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, quote.SurgeMultiplier, 1e-9)
	assert.Equal(t, 48.0, quote.FinalRate)
}

func TestQuoteRateSurgeAndASAPCompound(t *testing.T) {
	blanket := models.SurgeRule{Name: "demand", Enabled: true, Multiplier: 1.5, Stackable: true}
	stored := map[string]string{
		"asap_pricing_enabled":   "true",
		"asap_multiplier":        "1.25",
		"asap_lead_time_minutes": "60",
	}
	svc := quoteService([]models.SurgeRule{blanket}, stored)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	quote, err := svc.QuoteRate(context.Background(), 40, now.Add(30*time.Minute), now)
	require.NoError(t, err)
	// 40 * 1.5 * 1.25 = 75, rounded once at the end.
	assert.Equal(t, 75.0, quote.FinalRate)
}

func TestQuoteRateRejectsNonPositiveBase(t *testing.T) {
	svc := quoteService(nil, nil)
	now := time.Now()

	_, err := svc.QuoteRate(context.Background(), 0, now, now)
	assert.Error(t, err)
	_, err = svc.QuoteRate(context.Background(), -10, now, now)
	assert.Error(t, err)
}

func TestQuoteRateRuleLoadFailurePropagates(t *testing.T) {
	svc := &DefaultPricingService{
		RuleRepo: &fakeRuleRepo{err: errors.New("mongo down")},
		Settings: &settings.Service{Store: &fakeSettingsStore{values: map[string]string{}}},
		Logger:   zap.NewNop(),
	}
	now := time.Now()
	_, err := svc.QuoteRate(context.Background(), 35, now, now)
	assert.Error(t, err)
}

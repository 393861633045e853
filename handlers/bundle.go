package handlers

// HandlerBundle aggregates the handler set routes are registered from.
type HandlerBundle struct {
	Pricing  *PricingHandler
	Billing  *BillingHandler
	Coverage *CoverageHandler
	Rules    *RulesHandler
	Settings *SettingsHandler
	Geocode  *GeocodeHandler
}

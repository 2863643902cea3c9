package llm

import "context"

// UnavailableProvider fails every request with ErrProviderUnavailable.
// It stands in when no provider could be configured, so the UI still
// starts and reports connection errors per request.
type UnavailableProvider struct {
	reason error
}

// NewUnavailableProvider creates a provider that always fails with reason.
func NewUnavailableProvider(reason error) *UnavailableProvider {
	return &UnavailableProvider{reason: reason}
}

func (p *UnavailableProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: p.reason}
}

// ModelID returns "unavailable".
func (p *UnavailableProvider) ModelID() string {
	return "unavailable"
}

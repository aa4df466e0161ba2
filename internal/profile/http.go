package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single profile fetch.
const DefaultTimeout = 5 * time.Second

// HTTPProvider resolves visual profiles from a session-server style HTTP
// endpoint: GET {baseURL}/profiles/{uuid}.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider against the given base URL. A nil
// client gets a default with DefaultTimeout.
func NewHTTPProvider(baseURL string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPProvider{baseURL: baseURL, client: client}
}

// Resolve fetches the profile for ref. The returned profile is Complete only
// when the endpoint supplied at least one property.
func (p *HTTPProvider) Resolve(ctx context.Context, ref OwnerRef) (Profile, error) {
	url := fmt.Sprintf("%s/profiles/%s", p.baseURL, ref.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build profile request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch profile for %s: %w", ref.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("fetch profile for %s: unexpected status %d", ref.ID, resp.StatusCode)
	}

	var prof Profile
	if err := json.NewDecoder(resp.Body).Decode(&prof); err != nil {
		return Profile{}, fmt.Errorf("decode profile for %s: %w", ref.ID, err)
	}

	if prof.ID == uuid.Nil {
		prof.ID = ref.ID
	}
	if prof.Name == "" {
		prof.Name = ref.Name
	}
	prof.Complete = len(prof.Properties) > 0

	return prof, nil
}

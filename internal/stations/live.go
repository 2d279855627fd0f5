package stations

import (
	"context"
	"net/url"
)

// ServiceAdvisories performs a live advisory query against the upstream,
// bypassing the cache. A single unwrapped advisory is returned as a
// one-element list.
func (manager *Manager) ServiceAdvisories(ctx context.Context) ([]string, error) {
	payload, err := manager.client.Fetch(ctx, "bsa.aspx", url.Values{"cmd": {"bsa"}})
	if err != nil {
		return nil, err
	}
	return manager.normalizer.Advisories(payload)
}

// TrainCount performs a live query for the number of trains currently
// active in the system.
func (manager *Manager) TrainCount(ctx context.Context) (int, error) {
	payload, err := manager.client.Fetch(ctx, "bsa.aspx", url.Values{"cmd": {"count"}})
	if err != nil {
		return 0, err
	}
	return manager.normalizer.TrainCount(payload)
}

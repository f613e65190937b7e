package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/wheelibin/huelib/response"
)

// DiscoveryURL is the public endpoint listing the bridges on the caller's
// network.
const DiscoveryURL = "https://discovery.meethue.com"

type discovered struct {
	ID                string `json:"id"`
	InternalIPAddress string `json:"internalipaddress"`
	Port              int    `json:"port,omitempty"`
}

// Discover asks the discovery endpoint at url for the local addresses of
// the bridges on this network.
func Discover(ctx context.Context, transport Transport, url string) ([]netip.Addr, error) {
	raw, err := transport.Send(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error discovering bridges: %w", err)
	}

	var found []discovered
	if err := json.Unmarshal(raw, &found); err != nil {
		return nil, &response.ParseError{Err: err}
	}

	addrs := make([]netip.Addr, 0, len(found))
	for _, d := range found {
		addr, err := netip.ParseAddr(d.InternalIPAddress)
		if err != nil {
			return nil, &response.ParseError{Err: fmt.Errorf("bridge %s: %w", d.ID, err)}
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

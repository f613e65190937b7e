package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/response"
)

// User is an application registered with a bridge.
type User struct {
	// Name is the username used in every request path.
	Name string
	// ClientKey is the entertainment streaming key; empty unless requested.
	ClientKey string
}

type registration struct {
	DeviceType        string `json:"devicetype"`
	GenerateClientKey bool   `json:"generateclientkey,omitempty"`
}

// RegisterUser registers a new application with the bridge at address.
// devicetype identifies the application, as "app#device". The link button
// must have been pressed within the last 30 seconds, otherwise the bridge's
// failure (response.ErrorTypeLinkButtonNotPressed) is returned.
func RegisterUser(ctx context.Context, transport Transport, address, devicetype string, generateClientKey bool) (User, error) {
	body := registration{DeviceType: devicetype, GenerateClientKey: generateClientKey}
	raw, err := transport.Send(ctx, http.MethodPost, baseURL(address), body)
	if err != nil {
		return User{}, fmt.Errorf("error registering user: %w", err)
	}

	responses, err := response.Decode(raw)
	if err != nil {
		return User{}, err
	}
	if err := responses.IntoResult(); err != nil {
		return User{}, err
	}

	var user User
	for _, s := range responses.Successes() {
		switch s.Path {
		case "username":
			user.Name = s.String()
		case "clientkey":
			user.ClientKey = s.String()
		}
	}
	if user.Name == "" {
		return User{}, ErrMissingUsername
	}
	return user, nil
}

// Package bridge is a client for the REST API of a Hue bridge.
//
// Every operation issues exactly one request. Read operations decode the
// resource or return the bridge's first failure; write operations return
// the bridge's per-field outcomes, and callers reduce them with
// response.Responses.IntoResult.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

// Bridge is an authenticated connection to one bridge.
type Bridge struct {
	Address  string
	Username string

	transport Transport
	logger    *log.Logger
}

// New creates a client for the bridge at address (a host, host:port or URL)
// using username as the application key.
func New(address, username string, logger *log.Logger) *Bridge {
	return NewWithTransport(address, username, logger, NewHTTPTransport(logger, 0))
}

func NewWithTransport(address, username string, logger *log.Logger, transport Transport) *Bridge {
	return &Bridge{
		Address:   address,
		Username:  username,
		transport: transport,
		logger:    orDiscard(logger),
	}
}

// Modifier is the part of a resource modifier the client needs.
type Modifier interface {
	json.Marshaler
	IsEmpty() bool
	Err() error
}

// baseURL returns the root URL of the bridge API.
func baseURL(address string) string {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return strings.TrimSuffix(address, "/") + "/api"
}

func (b *Bridge) url(path string) string {
	return fmt.Sprintf("%s/%s%s", baseURL(b.Address), b.Username, path)
}

func get[T any](ctx context.Context, b *Bridge, path string) (T, error) {
	var result T
	raw, err := b.transport.Send(ctx, http.MethodGet, b.url(path), nil)
	if err != nil {
		return result, err
	}
	return response.Parse[T](raw)
}

// getAll reads a collection keyed by id and returns it sorted by id, with
// each element's ID set to its key.
func getAll[T any, PT interface {
	*T
	SetID(string)
}](ctx context.Context, b *Bridge, path string) ([]T, error) {
	byID, err := get[map[string]T](ctx, b, path)
	if err != nil {
		return nil, err
	}

	ids := lo.Keys(byID)
	sort.Slice(ids, func(i, j int) bool { return resource.LessID(ids[i], ids[j]) })

	return lo.Map(ids, func(id string, _ int) T {
		v := byID[id]
		PT(&v).SetID(id)
		return v
	}), nil
}

func (b *Bridge) set(ctx context.Context, path string, m Modifier) (response.Responses, error) {
	if err := m.Err(); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, nil
	}

	body, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("error encoding update for %s: %w", path, err)
	}

	raw, err := b.transport.Send(ctx, http.MethodPut, b.url(path), json.RawMessage(body))
	if err != nil {
		return nil, err
	}
	return response.Decode(raw)
}

// create posts body and returns the id the bridge assigned.
func (b *Bridge) create(ctx context.Context, path string, body any) (string, error) {
	raw, err := b.transport.Send(ctx, http.MethodPost, b.url(path), body)
	if err != nil {
		return "", err
	}

	responses, err := response.Decode(raw)
	if err != nil {
		return "", err
	}
	if err := responses.IntoResult(); err != nil {
		return "", err
	}

	id, found := lo.Find(responses.Successes(), func(s response.Success) bool {
		return s.Path == "id" || strings.HasSuffix(s.Path, "/id")
	})
	if !found {
		return "", ErrMissingID
	}
	return id.String(), nil
}

func (b *Bridge) send(ctx context.Context, method, path string, body any) error {
	raw, err := b.transport.Send(ctx, method, b.url(path), body)
	if err != nil {
		return err
	}
	return response.FirstFailure(raw)
}

func (b *Bridge) GetConfig(ctx context.Context) (resource.Config, error) {
	config, err := get[resource.Config](ctx, b, "/config")
	if err != nil {
		return config, fmt.Errorf("error reading bridge config: %w", err)
	}
	return config, nil
}

func (b *Bridge) SetConfig(ctx context.Context, m *resource.ConfigModifier) (response.Responses, error) {
	return b.set(ctx, "/config", m)
}

func (b *Bridge) GetCapabilities(ctx context.Context) (resource.Capabilities, error) {
	capabilities, err := get[resource.Capabilities](ctx, b, "/capabilities")
	if err != nil {
		return capabilities, fmt.Errorf("error reading bridge capabilities: %w", err)
	}
	return capabilities, nil
}

package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) GetLight(ctx context.Context, id string) (resource.Light, error) {
	light, err := get[resource.Light](ctx, b, "/lights/"+id)
	if err != nil {
		return light, fmt.Errorf("error reading light %s: %w", id, err)
	}
	light.SetID(id)
	return light, nil
}

func (b *Bridge) GetAllLights(ctx context.Context) ([]resource.Light, error) {
	lights, err := getAll[resource.Light](ctx, b, "/lights")
	if err != nil {
		return nil, fmt.Errorf("error reading lights: %w", err)
	}
	return lights, nil
}

func (b *Bridge) SetLightAttribute(ctx context.Context, id string, m *resource.LightAttributeModifier) (response.Responses, error) {
	return b.set(ctx, "/lights/"+id, m)
}

func (b *Bridge) SetLightState(ctx context.Context, id string, m *resource.LightStateModifier) (response.Responses, error) {
	return b.set(ctx, "/lights/"+id+"/state", m)
}

// SearchNewLights starts a search for new lights. Serial numbers, when
// given, make the bridge look for those lights specifically.
func (b *Bridge) SearchNewLights(ctx context.Context, serials ...string) error {
	var body any
	if len(serials) > 0 {
		body = map[string][]string{"deviceid": serials}
	}
	if err := b.send(ctx, http.MethodPost, "/lights", body); err != nil {
		return fmt.Errorf("error searching for lights: %w", err)
	}
	return nil
}

// GetNewLights returns the lights found by the last search.
func (b *Bridge) GetNewLights(ctx context.Context) (resource.Scan, error) {
	scan, err := get[resource.Scan](ctx, b, "/lights/new")
	if err != nil {
		return scan, fmt.Errorf("error reading new lights: %w", err)
	}
	return scan, nil
}

func (b *Bridge) DeleteLight(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/lights/"+id, nil); err != nil {
		return fmt.Errorf("error deleting light %s: %w", id, err)
	}
	return nil
}

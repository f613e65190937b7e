package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) CreateGroup(ctx context.Context, creator resource.GroupCreator) (string, error) {
	id, err := b.create(ctx, "/groups", creator)
	if err != nil {
		return "", fmt.Errorf("error creating group: %w", err)
	}
	return id, nil
}

func (b *Bridge) GetGroup(ctx context.Context, id string) (resource.Group, error) {
	group, err := get[resource.Group](ctx, b, "/groups/"+id)
	if err != nil {
		return group, fmt.Errorf("error reading group %s: %w", id, err)
	}
	group.SetID(id)
	return group, nil
}

func (b *Bridge) GetAllGroups(ctx context.Context) ([]resource.Group, error) {
	groups, err := getAll[resource.Group](ctx, b, "/groups")
	if err != nil {
		return nil, fmt.Errorf("error reading groups: %w", err)
	}
	return groups, nil
}

func (b *Bridge) SetGroupAttribute(ctx context.Context, id string, m *resource.GroupAttributeModifier) (response.Responses, error) {
	return b.set(ctx, "/groups/"+id, m)
}

// SetGroupState changes the state of every light in the group. Group "0"
// holds all lights of the bridge.
func (b *Bridge) SetGroupState(ctx context.Context, id string, m *resource.GroupStateModifier) (response.Responses, error) {
	return b.set(ctx, "/groups/"+id+"/action", m)
}

func (b *Bridge) DeleteGroup(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/groups/"+id, nil); err != nil {
		return fmt.Errorf("error deleting group %s: %w", id, err)
	}
	return nil
}

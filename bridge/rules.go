package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) CreateRule(ctx context.Context, creator resource.RuleCreator) (string, error) {
	id, err := b.create(ctx, "/rules", creator)
	if err != nil {
		return "", fmt.Errorf("error creating rule: %w", err)
	}
	return id, nil
}

func (b *Bridge) GetRule(ctx context.Context, id string) (resource.Rule, error) {
	rule, err := get[resource.Rule](ctx, b, "/rules/"+id)
	if err != nil {
		return rule, fmt.Errorf("error reading rule %s: %w", id, err)
	}
	rule.SetID(id)
	return rule, nil
}

func (b *Bridge) GetAllRules(ctx context.Context) ([]resource.Rule, error) {
	rules, err := getAll[resource.Rule](ctx, b, "/rules")
	if err != nil {
		return nil, fmt.Errorf("error reading rules: %w", err)
	}
	return rules, nil
}

func (b *Bridge) SetRule(ctx context.Context, id string, m *resource.RuleModifier) (response.Responses, error) {
	return b.set(ctx, "/rules/"+id, m)
}

func (b *Bridge) DeleteRule(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/rules/"+id, nil); err != nil {
		return fmt.Errorf("error deleting rule %s: %w", id, err)
	}
	return nil
}

func (b *Bridge) CreateResourcelink(ctx context.Context, creator resource.ResourcelinkCreator) (string, error) {
	id, err := b.create(ctx, "/resourcelinks", creator)
	if err != nil {
		return "", fmt.Errorf("error creating resourcelink: %w", err)
	}
	return id, nil
}

func (b *Bridge) GetResourcelink(ctx context.Context, id string) (resource.Resourcelink, error) {
	link, err := get[resource.Resourcelink](ctx, b, "/resourcelinks/"+id)
	if err != nil {
		return link, fmt.Errorf("error reading resourcelink %s: %w", id, err)
	}
	link.SetID(id)
	return link, nil
}

func (b *Bridge) GetAllResourcelinks(ctx context.Context) ([]resource.Resourcelink, error) {
	links, err := getAll[resource.Resourcelink](ctx, b, "/resourcelinks")
	if err != nil {
		return nil, fmt.Errorf("error reading resourcelinks: %w", err)
	}
	return links, nil
}

func (b *Bridge) SetResourcelink(ctx context.Context, id string, m *resource.ResourcelinkModifier) (response.Responses, error) {
	return b.set(ctx, "/resourcelinks/"+id, m)
}

func (b *Bridge) DeleteResourcelink(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/resourcelinks/"+id, nil); err != nil {
		return fmt.Errorf("error deleting resourcelink %s: %w", id, err)
	}
	return nil
}

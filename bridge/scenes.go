package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) CreateScene(ctx context.Context, creator resource.SceneCreator) (string, error) {
	id, err := b.create(ctx, "/scenes", creator)
	if err != nil {
		return "", fmt.Errorf("error creating scene: %w", err)
	}
	return id, nil
}

// GetScene reads a scene including its stored light states.
func (b *Bridge) GetScene(ctx context.Context, id string) (resource.Scene, error) {
	scene, err := get[resource.Scene](ctx, b, "/scenes/"+id)
	if err != nil {
		return scene, fmt.Errorf("error reading scene %s: %w", id, err)
	}
	scene.SetID(id)
	return scene, nil
}

// GetAllScenes lists the scenes. The bridge omits light states from the
// listing.
func (b *Bridge) GetAllScenes(ctx context.Context) ([]resource.Scene, error) {
	scenes, err := getAll[resource.Scene](ctx, b, "/scenes")
	if err != nil {
		return nil, fmt.Errorf("error reading scenes: %w", err)
	}
	return scenes, nil
}

func (b *Bridge) SetScene(ctx context.Context, id string, m *resource.SceneModifier) (response.Responses, error) {
	return b.set(ctx, "/scenes/"+id, m)
}

func (b *Bridge) DeleteScene(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/scenes/"+id, nil); err != nil {
		return fmt.Errorf("error deleting scene %s: %w", id, err)
	}
	return nil
}

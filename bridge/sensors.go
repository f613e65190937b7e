package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) GetSensor(ctx context.Context, id string) (resource.Sensor, error) {
	sensor, err := get[resource.Sensor](ctx, b, "/sensors/"+id)
	if err != nil {
		return sensor, fmt.Errorf("error reading sensor %s: %w", id, err)
	}
	sensor.SetID(id)
	return sensor, nil
}

func (b *Bridge) GetAllSensors(ctx context.Context) ([]resource.Sensor, error) {
	sensors, err := getAll[resource.Sensor](ctx, b, "/sensors")
	if err != nil {
		return nil, fmt.Errorf("error reading sensors: %w", err)
	}
	return sensors, nil
}

func (b *Bridge) SetSensorAttribute(ctx context.Context, id string, m *resource.SensorAttributeModifier) (response.Responses, error) {
	return b.set(ctx, "/sensors/"+id, m)
}

func (b *Bridge) SetSensorState(ctx context.Context, id string, m *resource.SensorStateModifier) (response.Responses, error) {
	return b.set(ctx, "/sensors/"+id+"/state", m)
}

func (b *Bridge) SetSensorConfig(ctx context.Context, id string, m *resource.SensorConfigModifier) (response.Responses, error) {
	return b.set(ctx, "/sensors/"+id+"/config", m)
}

func (b *Bridge) SearchNewSensors(ctx context.Context) error {
	if err := b.send(ctx, http.MethodPost, "/sensors", nil); err != nil {
		return fmt.Errorf("error searching for sensors: %w", err)
	}
	return nil
}

func (b *Bridge) GetNewSensors(ctx context.Context) (resource.Scan, error) {
	scan, err := get[resource.Scan](ctx, b, "/sensors/new")
	if err != nil {
		return scan, fmt.Errorf("error reading new sensors: %w", err)
	}
	return scan, nil
}

func (b *Bridge) DeleteSensor(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/sensors/"+id, nil); err != nil {
		return fmt.Errorf("error deleting sensor %s: %w", id, err)
	}
	return nil
}

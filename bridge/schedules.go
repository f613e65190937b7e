package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wheelibin/huelib/resource"
	"github.com/wheelibin/huelib/response"
)

func (b *Bridge) CreateSchedule(ctx context.Context, creator resource.ScheduleCreator) (string, error) {
	id, err := b.create(ctx, "/schedules", creator)
	if err != nil {
		return "", fmt.Errorf("error creating schedule: %w", err)
	}
	return id, nil
}

func (b *Bridge) GetSchedule(ctx context.Context, id string) (resource.Schedule, error) {
	schedule, err := get[resource.Schedule](ctx, b, "/schedules/"+id)
	if err != nil {
		return schedule, fmt.Errorf("error reading schedule %s: %w", id, err)
	}
	schedule.SetID(id)
	return schedule, nil
}

func (b *Bridge) GetAllSchedules(ctx context.Context) ([]resource.Schedule, error) {
	schedules, err := getAll[resource.Schedule](ctx, b, "/schedules")
	if err != nil {
		return nil, fmt.Errorf("error reading schedules: %w", err)
	}
	return schedules, nil
}

func (b *Bridge) SetSchedule(ctx context.Context, id string, m *resource.ScheduleModifier) (response.Responses, error) {
	return b.set(ctx, "/schedules/"+id, m)
}

func (b *Bridge) DeleteSchedule(ctx context.Context, id string) error {
	if err := b.send(ctx, http.MethodDelete, "/schedules/"+id, nil); err != nil {
		return fmt.Errorf("error deleting schedule %s: %w", id, err)
	}
	return nil
}

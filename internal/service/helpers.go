package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/judiciary-service/internal/domain"
	"github.com/spec-kit/judiciary-service/internal/events"
	apperrors "github.com/spec-kit/judiciary-service/pkg/util"
)

func requireAdmin(actor *domain.User) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	return nil
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func userActor(actor *domain.User) events.Actor {
	if actor == nil {
		return events.Actor{}
	}
	return events.Actor{UserID: actor.ID, Role: actor.Role}
}

package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/entities"
)

// Store persists audit events.
type Store interface {
	LogEvent(ctx context.Context, event *entities.AuditEvent) error
	GetEvents(ctx context.Context, entityType string, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEntityHistory(ctx context.Context, entityType, entityID string) ([]entities.AuditEvent, error)
	DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error)
}

// RequestInfo identifies the request that caused a mutation.
type RequestInfo struct {
	RequestID string
	IPAddress string
	UserAgent string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo Store
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(context.Background(), event); err != nil {
			log.Error().Err(err).
				Str("entity_type", event.EntityType).
				Str("entity_id", event.EntityID).
				Str("action", string(event.Action)).
				Msg("failed to log audit event")
		}
	}()
}

// Wait blocks until every pending LogAsync call has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogCreate records the creation of an entity with a JSON snapshot.
func (s *Service) LogCreate(info RequestInfo, entityType, entityID, description string, snapshot any) {
	s.LogAsync(s.newEvent(info, entities.AuditActionCreate, entityType, entityID, description, snapshot))
}

// LogUpdate records a change to an entity with its new state.
func (s *Service) LogUpdate(info RequestInfo, entityType, entityID, description string, snapshot any) {
	s.LogAsync(s.newEvent(info, entities.AuditActionUpdate, entityType, entityID, description, snapshot))
}

// LogDelete records the removal of an entity.
func (s *Service) LogDelete(info RequestInfo, entityType, entityID, description string) {
	s.LogAsync(s.newEvent(info, entities.AuditActionDelete, entityType, entityID, description, nil))
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, entityType, limit, offset)
}

// GetEntityHistory retrieves every event for one entity, oldest first.
func (s *Service) GetEntityHistory(ctx context.Context, entityType, entityID string) ([]entities.AuditEvent, error) {
	return s.repo.GetEntityHistory(ctx, entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func (s *Service) newEvent(info RequestInfo, action entities.AuditAction, entityType, entityID, description string, snapshot any) *entities.AuditEvent {
	event := &entities.AuditEvent{
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: truncate(description, 500),
		RequestID:   info.RequestID,
		IPAddress:   info.IPAddress,
		UserAgent:   truncate(info.UserAgent, 500),
		Status:      entities.AuditStatusSuccess,
		CreatedAt:   time.Now(),
	}

	if snapshot != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			event.Metadata = string(data)
		} else {
			event.ErrorMsg = truncate("snapshot: "+err.Error(), 500)
		}
	}

	return event
}

// truncate shortens s to at most maxLen bytes, cutting on a rune boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

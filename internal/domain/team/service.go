package team

import (
	"context"
	"fmt"

	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// Service exposes the read-only roster.
type Service interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []Member
	GetByName(ctx context.Context, name string) (Member, error)
}

type service struct {
	coll   *store.Collection[Member]
	client *airtable.Client
	logger *logger.Logger
}

// NewService builds the roster service. client may be nil for demo mode.
func NewService(client *airtable.Client, log *logger.Logger, seed []Member) Service {
	coll := store.NewCollection(
		func(m Member) string { return m.ID },
		func(m *Member, id string) { m.ID = id },
	)
	coll.Replace(seed)
	return &service{coll: coll, client: client, logger: log}
}

func (s *service) Load(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	records, err := s.client.List(ctx, airtable.TableTeamMembers, airtable.ListParams{SortField: "Name"})
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	members := make([]Member, 0, len(records))
	for _, rec := range records {
		name := airtable.String(rec.Fields, "Name")
		if name == "" {
			continue
		}
		members = append(members, Member{
			ID:     rec.ID,
			Name:   name,
			Role:   airtable.String(rec.Fields, "Role"),
			Avatar: airtable.String(rec.Fields, "Avatar"),
			Color:  airtable.String(rec.Fields, "Color"),
		})
	}
	if len(members) > 0 {
		s.coll.Replace(members)
	}
	return nil
}

func (s *service) List(ctx context.Context) []Member {
	return s.coll.Snapshot()
}

func (s *service) GetByName(ctx context.Context, name string) (Member, error) {
	members := s.coll.Filter(func(m Member) bool { return m.Name == name })
	if len(members) == 0 {
		return Member{}, ErrNotFound
	}
	return members[0], nil
}

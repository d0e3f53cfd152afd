package message

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/airtable"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/remote"
	"github.com/karakusgokhan/team-hub/internal/infrastructure/store"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

// DefaultChannel receives posts that name no channel.
const DefaultChannel = "general"

// loadLimit bounds how much board history a snapshot pulls in.
const loadLimit = 50

// Service handles the message board.
type Service interface {
	Load(ctx context.Context) error
	List(ctx context.Context, channel string) []Message
	Create(ctx context.Context, req CreateMessageRequest) (Message, error)
	SetPinned(ctx context.Context, id string, pinned bool) (Message, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	coll   *store.Collection[Message]
	syncer *remote.Syncer[Message]
	logger *logger.Logger
}

// NewService builds the board service. client may be nil for demo mode.
func NewService(client *airtable.Client, notices *notice.Board, log *logger.Logger, timeout time.Duration, seed []Message) Service {
	coll := store.NewCollection(
		func(m Message) string { return m.ID },
		func(m *Message, id string) { m.ID = id },
	)
	coll.Replace(seed)
	return &service{
		coll: coll,
		syncer: remote.NewSyncer(airtable.TableMessages, client, coll, messageFields,
			notices, log, timeout),
		logger: log,
	}
}

func messageFields(m Message) map[string]any {
	return map[string]any{
		"Person":  m.Person,
		"Text":    m.Text,
		"Channel": m.Channel,
		"Pinned":  m.Pinned,
	}
}

func decodeMessage(rec airtable.Record) (Message, bool) {
	m := Message{
		ID:        rec.ID,
		Person:    airtable.String(rec.Fields, "Person"),
		Text:      airtable.String(rec.Fields, "Text"),
		Channel:   airtable.String(rec.Fields, "Channel"),
		Pinned:    airtable.Bool(rec.Fields, "Pinned"),
		CreatedAt: rec.CreatedTime,
	}
	if m.Text == "" {
		return Message{}, false
	}
	if m.Channel == "" {
		m.Channel = DefaultChannel
	}
	return m, true
}

func (s *service) Load(ctx context.Context) error {
	return s.syncer.Load(ctx, airtable.ListParams{
		MaxRecords:    loadLimit,
		SortField:     "CreatedAt",
		SortDirection: "desc",
	}, decodeMessage)
}

// List returns a channel's messages, pinned ones first, then newest
// first.
func (s *service) List(ctx context.Context, channel string) []Message {
	if channel == "" {
		channel = DefaultChannel
	}
	items := s.coll.Filter(func(m Message) bool { return m.Channel == channel })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Pinned != items[j].Pinned {
			return items[i].Pinned
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func (s *service) Create(ctx context.Context, req CreateMessageRequest) (Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Message{}, ErrTextRequired
	}
	if req.Person == "" {
		return Message{}, ErrPersonRequired
	}

	m := Message{
		ID:        store.TempID(),
		Person:    req.Person,
		Text:      text,
		Channel:   req.Channel,
		CreatedAt: time.Now(),
	}
	if m.Channel == "" {
		m.Channel = DefaultChannel
	}

	s.coll.Insert(m)
	s.syncer.CreateAsync(m.ID, m)
	return m, nil
}

func (s *service) SetPinned(ctx context.Context, id string, pinned bool) (Message, error) {
	if !s.coll.Update(id, func(m *Message) { m.Pinned = pinned }) {
		return Message{}, ErrNotFound
	}
	updated, _ := s.coll.Get(id)
	s.syncer.UpdateAsync(id, map[string]any{"Pinned": pinned})
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.coll.Delete(id) {
		return ErrNotFound
	}
	s.syncer.DeleteAsync(id)
	return nil
}

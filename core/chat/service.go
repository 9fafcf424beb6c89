package chat

import (
	"context"
	"errors"
	"sort"
)

var (
	// errors
	ErrNoRecipient = errors.New("no recipient user")
)

type (
	API interface {
		GetMessages(ctx context.Context, user1ID, user2ID string) ([]Message, error)
		// SendMessage returns the message as acknowledged by the server
		// (server-issued id and created_at).
		SendMessage(ctx context.Context, msg Message) (Message, error)
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

// History loads a conversation ordered by created_at, then id as the
// tie-break. Most endpoints already return this order; sorting is stable so
// server order survives equal timestamps.
func (svc *Service) History(ctx context.Context, user1ID, user2ID string) ([]Message, error) {
	if user1ID == "" || user2ID == "" {
		return nil, ErrNoRecipient
	}
	msgs, err := svc.api.GetMessages(ctx, user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt != msgs[j].CreatedAt {
			return msgs[i].CreatedAt < msgs[j].CreatedAt
		}
		return msgs[i].ID < msgs[j].ID
	})
	return msgs, nil
}

// Send submits a pending message and returns the server-acknowledged copy.
// The caller appends the pending message optimistically before calling and
// replaces it with the returned one; ordering may transiently diverge from
// server order until the next History reload.
func (svc *Service) Send(ctx context.Context, pending Message) (Message, error) {
	if pending.ReceiverID == "" {
		return Message{}, ErrNoRecipient
	}
	acked, err := svc.api.SendMessage(ctx, pending)
	if err != nil {
		return Message{}, err
	}
	acked.Pending = false
	return acked, nil
}

// Reconcile merges an optimistic local view with a freshly loaded server
// list: the server list wins wholesale, and any still-pending local
// messages the server has not yet returned (matched by sender and body) are
// re-appended in local insertion order.
func Reconcile(local, server []Message) []Message {
	type key struct{ sender, body string }
	seen := make(map[key]int, len(server))
	for _, m := range server {
		seen[key{m.SenderID, m.Body}]++
	}

	out := make([]Message, 0, len(server)+len(local))
	out = append(out, server...)
	for _, m := range local {
		if !m.Pending {
			continue
		}
		k := key{m.SenderID, m.Body}
		if seen[k] > 0 {
			seen[k]--
			continue
		}
		out = append(out, m)
	}
	return out
}

package backend

import (
	"context"
	"net/url"

	"github.com/tnhappykids/appcore/core/chat"
)

var _ chat.API = (*Client)(nil)

func (c *Client) GetMessages(ctx context.Context, user1ID, user2ID string) ([]chat.Message, error) {
	query := url.Values{
		"user1_id": {user1ID},
		"user2_id": {user2ID},
	}
	var msgs []chat.Message
	if err := c.get(ctx, "get_messages.php", query, "messages", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, msg chat.Message) (chat.Message, error) {
	raw, err := c.postJSON(ctx, "send_message.php", map[string]string{
		"sender_id":   msg.SenderID,
		"receiver_id": msg.ReceiverID,
		"message":     msg.Body,
	})
	if err != nil {
		return chat.Message{}, err
	}

	acked := msg
	acked.Pending = false
	if rawID, ok := raw["id"]; ok {
		acked.ID = rawString(rawID)
	}
	if rawAt, ok := raw["created_at"]; ok {
		acked.CreatedAt = rawString(rawAt)
	}
	return acked, nil
}

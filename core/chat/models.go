package chat

import (
	"github.com/google/uuid"

	"github.com/tnhappykids/appcore/core"
)

// Message mirrors a record from get_messages.php. Pending marks an
// optimistically appended message whose server id has not been seen yet; it
// never round-trips to the backend.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Body       string `json:"message"`
	CreatedAt  string `json:"created_at"`
	Pending    bool   `json:"-"`
}

// ConversationKey identifies a conversation by its unordered participant
// pair, so both sides resolve to the same key.
func ConversationKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// Compose builds a pending message with a client-generated id, validated
// before any network use. The uuid only exists to match the pending entry
// against later state; the server issues the real id.
func Compose(senderID, receiverID, body string) (Message, error) {
	body = core.CleanString(body)
	if receiverID == "" {
		return Message{}, ErrNoRecipient
	}
	if body == "" {
		return Message{}, core.NewValidationError(nil, core.FieldError{Field: "message", Error: "this field is required"})
	}
	return Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		Pending:    true,
	}, nil
}

package events

// Contact event actions put on the RabbitMQ queue for the search
// indexer.
const (
	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// ContactEvent is the JSON payload published after a contact write.
// The indexer worker consumes it and mirrors the change into the
// Elasticsearch contacts index. Field values are only set for upserts.
type ContactEvent struct {
	Action    string `json:"action"`
	ContactID int64  `json:"contact_id"`
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

package models

// Message represents a dispatcher message delivered to the driver
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Content   string `json:"content,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// OutgoingMessage is the payload for sending a message to dispatch
type OutgoingMessage struct {
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Content   string `json:"content"`
}

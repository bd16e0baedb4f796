package dto

// Conversation conversación de WhatsApp en la bandeja del panel.
type Conversation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	LastMessage string   `json:"lastMessage"`
	Time        string   `json:"time"`
	Unread      int      `json:"unread"`
	Tags        []string `json:"tags"`
}

// Message mensaje dentro de una conversación.
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"` // "agent" | "customer"
	Time   string `json:"time"`
}

// SendMessageRequest envío de un mensaje desde el panel.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=4096"`
}

package usecase

import (
	"strings"

	"github.com/jhoicas/crm-panel/internal/application/dto"
)

// ChatStore bandeja de conversaciones. El transporte en tiempo real está
// fuera de alcance: lo implementa el store simulado en memoria.
type ChatStore interface {
	Conversations() []dto.Conversation
	Messages(conversationID string) ([]dto.Message, error)
	Append(conversationID, text, sender string) (*dto.Message, error)
}

// ChatUseCase pantalla de chat: listado con búsqueda, historial y envío.
type ChatUseCase struct {
	store ChatStore
}

// NewChatUseCase construye el caso de uso de chat.
func NewChatUseCase(store ChatStore) *ChatUseCase {
	return &ChatUseCase{store: store}
}

// Conversations lista la bandeja; query busca en nombre y teléfono.
func (uc *ChatUseCase) Conversations(query string) []dto.Conversation {
	all := uc.store.Conversations()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	filtered := make([]dto.Conversation, 0, len(all))
	for _, conv := range all {
		if strings.Contains(strings.ToLower(conv.Name), q) ||
			strings.Contains(strings.ToLower(conv.Phone), q) {
			filtered = append(filtered, conv)
		}
	}
	return filtered
}

// Messages devuelve el historial de una conversación.
func (uc *ChatUseCase) Messages(conversationID string) ([]dto.Message, error) {
	return uc.store.Messages(conversationID)
}

// Send agrega un mensaje del agente a la conversación.
func (uc *ChatUseCase) Send(conversationID, text string) (*dto.Message, error) {
	return uc.store.Append(conversationID, text, "agent")
}

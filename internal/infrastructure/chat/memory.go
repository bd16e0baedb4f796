// Package chat implementa la bandeja de conversaciones simulada en memoria.
// El transporte real de WhatsApp queda fuera de alcance del panel; este store
// permite operar la pantalla de chat con datos de demostración.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/domain"
)

// MemoryStore bandeja en memoria, segura para uso concurrente.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations []dto.Conversation
	messages      map[string][]dto.Message // conversationID -> historial
}

// NewMemoryStore crea la bandeja sembrada con las conversaciones de demostración.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{messages: make(map[string][]dto.Message)}
	s.seed()
	return s
}

// Conversations devuelve la bandeja completa (copia).
func (s *MemoryStore) Conversations() []dto.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// Messages devuelve el historial de una conversación.
func (s *MemoryStore) Messages(conversationID string) ([]dto.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs, ok := s.messages[conversationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Append agrega un mensaje y actualiza el resumen de la conversación.
func (s *MemoryStore) Append(conversationID, text, sender string) (*dto.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[conversationID]; !ok {
		return nil, domain.ErrNotFound
	}

	msg := dto.Message{
		ID:     uuid.New().String(),
		Text:   text,
		Sender: sender,
		Time:   time.Now().Format("15:04"),
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)

	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].LastMessage = text
			s.conversations[i].Time = msg.Time
			if sender == "agent" {
				s.conversations[i].Unread = 0
			}
			break
		}
	}
	return &msg, nil
}

func (s *MemoryStore) seed() {
	s.conversations = []dto.Conversation{
		{ID: "1", Name: "María González", Phone: "+52 55 1234 5678", LastMessage: "Hola, necesito ayuda con mi pedido", Time: "10:30", Unread: 2, Tags: []string{"VIP", "Frecuente"}},
		{ID: "2", Name: "Carlos Rodríguez", Phone: "+52 55 8765 4321", LastMessage: "¿Cuándo llega mi envío?", Time: "09:45", Unread: 0, Tags: []string{"Nuevo"}},
		{ID: "3", Name: "Ana Martínez", Phone: "+52 55 2468 1357", LastMessage: "Gracias por la ayuda", Time: "08:15", Unread: 0, Tags: []string{"Satisfecho"}},
		{ID: "4", Name: "Luis Hernández", Phone: "+52 55 9876 5432", LastMessage: "Tengo una queja sobre el producto", Time: "07:20", Unread: 1, Tags: []string{"Urgente"}},
	}
	s.messages = map[string][]dto.Message{
		"1": {
			{ID: uuid.New().String(), Text: "Hola, necesito ayuda con mi pedido #12345", Sender: "customer", Time: "10:25"},
			{ID: uuid.New().String(), Text: "¡Hola María! Con gusto te ayudo. ¿Cuál es el problema con tu pedido?", Sender: "agent", Time: "10:27"},
			{ID: uuid.New().String(), Text: "Hola, necesito ayuda con mi pedido", Sender: "customer", Time: "10:30"},
		},
		"2": {
			{ID: uuid.New().String(), Text: "¿Cuándo llega mi envío?", Sender: "customer", Time: "09:45"},
		},
		"3": {
			{ID: uuid.New().String(), Text: "Mi problema quedó resuelto", Sender: "customer", Time: "08:10"},
			{ID: uuid.New().String(), Text: "Gracias por la ayuda", Sender: "customer", Time: "08:15"},
		},
		"4": {
			{ID: uuid.New().String(), Text: "Tengo una queja sobre el producto", Sender: "customer", Time: "07:20"},
		},
	}
}

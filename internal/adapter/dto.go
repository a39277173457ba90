package adapter

import (
	"time"

	"github.com/MKhiriev/go-thread-chat/models"
)

type loginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponseDTO struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
}

type participantDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type messageDTO struct {
	SenderID  string    `json:"sender_id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type threadDTO struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Participants []participantDTO `json:"participants"`
	Messages     []messageDTO     `json:"messages"`
}

type threadSummaryDTO struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Participants []participantDTO `json:"participants"`
	LastMessage  *messageDTO      `json:"last_message"`
}

type sendMessageRequestDTO struct {
	Text string `json:"text"`
}

func (p participantDTO) toModel() models.Participant {
	return models.Participant{ID: p.ID, DisplayName: p.Name}
}

// toModel converts a wire message. A missing type is treated as text; every
// other type carries the placeholder label instead of its text.
func (m messageDTO) toModel() models.Message {
	kind := models.MessageKind(m.Type)
	if kind == "" {
		kind = models.MessageKindText
	}

	payload := m.Text
	if kind != models.MessageKindText {
		payload = models.NonTextLabel(kind)
	}

	return models.Message{
		SenderID:  m.SenderID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: m.CreatedAt,
	}
}

func (t threadDTO) toModel() models.Thread {
	thread := models.Thread{
		ID:           t.ID,
		Title:        t.Title,
		Messages:     make([]models.Message, 0, len(t.Messages)),
		Participants: make(map[string]models.Participant, len(t.Participants)),
	}
	for _, m := range t.Messages {
		thread.Messages = append(thread.Messages, m.toModel())
	}
	for _, p := range t.Participants {
		if p.ID == "" {
			continue
		}
		thread.Participants[p.ID] = p.toModel()
	}
	return thread
}

func (s threadSummaryDTO) toModel() models.ThreadSummary {
	summary := models.ThreadSummary{
		ID:           s.ID,
		Title:        s.Title,
		Participants: make([]models.Participant, 0, len(s.Participants)),
	}
	for _, p := range s.Participants {
		summary.Participants = append(summary.Participants, p.toModel())
	}
	if s.LastMessage != nil {
		last := s.LastMessage.toModel()
		summary.LastMessage = &last
	}
	return summary
}

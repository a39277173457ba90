package chat

import "github.com/MKhiriev/go-thread-chat/models"

// ParticipantCache maps sender ids to participant metadata for the lifetime
// of the process. Entries are added or refreshed, never removed.
//
// The cache has no lock: it is written only from bubbletea Update functions
// (the inbox and the active session), which never run concurrently.
type ParticipantCache struct {
	byID map[string]models.Participant
}

// NewParticipantCache returns an empty cache.
func NewParticipantCache() *ParticipantCache {
	return &ParticipantCache{byID: make(map[string]models.Participant)}
}

// Upsert stores p under p.ID. An empty ID is ignored, and an empty display
// name never overwrites a known one.
func (c *ParticipantCache) Upsert(p models.Participant) {
	if p.ID == "" {
		return
	}
	if known, ok := c.byID[p.ID]; ok && p.DisplayName == "" {
		p.DisplayName = known.DisplayName
	}
	c.byID[p.ID] = p
}

// UpsertThread stores every participant of t.
func (c *ParticipantCache) UpsertThread(t models.Thread) {
	for _, p := range t.Participants {
		c.Upsert(p)
	}
}

// UpsertSummaries stores the participants of every inbox entry.
func (c *ParticipantCache) UpsertSummaries(summaries []models.ThreadSummary) {
	for _, s := range summaries {
		for _, p := range s.Participants {
			c.Upsert(p)
		}
	}
}

// Lookup returns the participant stored under id.
func (c *ParticipantCache) Lookup(id string) (models.Participant, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of cached participants.
func (c *ParticipantCache) Len() int {
	return len(c.byID)
}

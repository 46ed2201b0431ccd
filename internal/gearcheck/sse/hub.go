package sse

import (
	"encoding/json"
	"log"
	"sync"
)

// Event represents a Server-Sent Event
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client represents a connected dashboard client
type Client struct {
	ID     string
	Sector string
	Events chan Event
}

// Hub manages all SSE client connections
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("[SSE] Client registered: id=%s sector=%s (total: %d)", client.ID, client.Sector, len(h.clients))
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		log.Printf("[SSE] Client unregistered: id=%s (total: %d)", clientID, len(h.clients))
	}
}

// Broadcast sends an event to all connected clients
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			log.Printf("[SSE] Client %s buffer full, skipping event", client.ID)
		}
	}
}

// PublishInspectionSubmitted notifies dashboards about a finalized checklist.
// Clients watching a specific sector also receive the broadcast; filtering
// happens client-side so late sector changes never strand a dashboard.
func (h *Hub) PublishInspectionSubmitted(inspectionID, equipmentName, sector string) {
	data, _ := json.Marshal(map[string]string{
		"inspection_id": inspectionID,
		"equipment":     equipmentName,
		"sector":        sector,
	})
	h.Broadcast(Event{
		EventType: "inspection.submitted",
		Data:      string(data),
	})
	log.Printf("[SSE] Published inspection.submitted: id=%s sector=%s", inspectionID, sector)
}

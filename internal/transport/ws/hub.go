package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgSubmissionReceived MessageType = "submission_received"
	MsgScoreUpdate        MessageType = "score_update"
	MsgWatcherJoined      MessageType = "watcher_joined"
	MsgWatcherLeft        MessageType = "watcher_left"
	MsgError              MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections, keyed by project
type Hub struct {
	// projectID -> userID -> conn
	watchers map[string]map[string]*Connection

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection of one dashboard watcher
type Connection struct {
	ProjectID string
	UserID    string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ProjectID string
	ToUser    string // Empty means all watchers of the project
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.ProjectID] == nil {
				h.watchers[conn.ProjectID] = make(map[string]*Connection)
			}
			h.watchers[conn.ProjectID][conn.UserID] = conn
			log.Printf("Watcher %s connected to project %s", conn.UserID, conn.ProjectID)

			h.notifyWatchers(conn.ProjectID, conn.UserID, MsgWatcherJoined)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.watchers[conn.ProjectID]; ok {
				if existing, ok := watchers[conn.UserID]; ok && existing == conn {
					delete(watchers, conn.UserID)
					close(conn.Send)
					log.Printf("Watcher %s disconnected from project %s", conn.UserID, conn.ProjectID)

					h.notifyWatchers(conn.ProjectID, conn.UserID, MsgWatcherLeft)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if watchers, ok := h.watchers[msg.ProjectID]; ok {
				if msg.ToUser != "" {
					if conn, ok := watchers[msg.ToUser]; ok {
						select {
						case conn.Send <- data:
						default:
							// Drop message if buffer full
						}
					}
				} else {
					for _, conn := range watchers {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToProject sends a message to every watcher of a project
// (implements service.Broadcaster)
func (h *Hub) BroadcastToProject(projectID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ProjectID: projectID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToUser sends a message to one watcher of a project
func (h *Hub) BroadcastToUser(projectID, userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ProjectID: projectID,
		ToUser:    userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

func (h *Hub) notifyWatchers(projectID, userID string, msgType MessageType) {
	data, _ := json.Marshal(&Message{
		Type:    msgType,
		Payload: json.RawMessage(`{"userId":"` + userID + `"}`),
	})
	for id, conn := range h.watchers[projectID] {
		if id == userID {
			continue
		}
		select {
		case conn.Send <- data:
		default:
		}
	}
}

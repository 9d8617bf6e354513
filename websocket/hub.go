package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/monitoring"
)

const (
	MessageReviewsChanged = "reviews_changed"
	MessageSubscribe      = "subscribe"
	MessagePing           = "ping"
	MessagePong           = "pong"
)

// Client represents a connected WebSocket client
type Client struct {
	Hub     *Hub
	ID      uuid.UUID
	Conn    *websocket.Conn
	Send    chan []byte
	workers map[uuid.UUID]bool

	mu     sync.Mutex
	closed bool
}

// Hub routes review events to the clients watching each worker. Only the
// Run goroutine mutates subscriptions.
type Hub struct {
	// Registered clients
	Clients map[*Client]bool

	// Clients watching each worker
	Subscriptions map[uuid.UUID]map[*Client]bool

	// Broadcast carries events for the subscribers of Message.WorkerID
	Broadcast chan *Message

	Register   chan *Client
	Unregister chan *Client
	subscribe  chan subscription

	// Message handlers for client-sent messages
	MessageHandlers map[string]MessageHandler

	// done is closed when Run returns
	done chan struct{}

	upgrader websocket.Upgrader

	log *zap.Logger
	mu  sync.RWMutex
}

type subscription struct {
	client   *Client
	workerID uuid.UUID
}

// Message is the wire format in both directions
type Message struct {
	Type      string     `json:"type"`
	WorkerID  *uuid.UUID `json:"worker_id,omitempty"`
	Average   *float64   `json:"average,omitempty"`
	Display   string     `json:"display,omitempty"`
	Count     *int       `json:"count,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// MessageHandler handles different types of messages
type MessageHandler func(*Client, *Message) error

// NewHub creates a new WebSocket hub. Browser upgrades are limited to
// allowedOrigins; an empty list allows any origin.
func NewHub(log *zap.Logger, allowedOrigins []string) *Hub {
	hub := &Hub{
		Clients:         make(map[*Client]bool),
		Subscriptions:   make(map[uuid.UUID]map[*Client]bool),
		Broadcast:       make(chan *Message, 256),
		Register:        make(chan *Client),
		Unregister:      make(chan *Client),
		subscribe:       make(chan subscription),
		MessageHandlers: make(map[string]MessageHandler),
		done:            make(chan struct{}),
		upgrader:        newUpgrader(allowedOrigins),
		log:             log,
	}

	hub.MessageHandlers[MessagePing] = hub.handlePing
	hub.MessageHandlers[MessageSubscribe] = hub.handleSubscribe

	return hub
}

// Run starts the hub's main loop and closes every client when ctx ends
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			for workerID := range client.workers {
				h.addSubscriber(workerID, client)
			}
			count := len(h.Clients)
			h.mu.Unlock()
			monitoring.SetWebSocketClients(count)
			h.log.Debug("review feed client registered", zap.String("client_id", client.ID.String()))

		case client := <-h.Unregister:
			h.mu.Lock()
			h.remove(client)
			count := len(h.Clients)
			h.mu.Unlock()
			monitoring.SetWebSocketClients(count)

		case sub := <-h.subscribe:
			h.mu.Lock()
			if h.Clients[sub.client] {
				sub.client.workers[sub.workerID] = true
				h.addSubscriber(sub.workerID, sub.client)
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.sendToSubscribers(message)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.Clients {
				h.remove(client)
			}
			h.mu.Unlock()
			monitoring.SetWebSocketClients(0)
			return
		}
	}
}

// addSubscriber must be called with h.mu held
func (h *Hub) addSubscriber(workerID uuid.UUID, client *Client) {
	if h.Subscriptions[workerID] == nil {
		h.Subscriptions[workerID] = make(map[*Client]bool)
	}
	h.Subscriptions[workerID][client] = true
}

// remove must be called with h.mu held
func (h *Hub) remove(client *Client) {
	if _, ok := h.Clients[client]; !ok {
		return
	}
	for workerID := range client.workers {
		delete(h.Subscriptions[workerID], client)
		if len(h.Subscriptions[workerID]) == 0 {
			delete(h.Subscriptions, workerID)
		}
	}
	delete(h.Clients, client)
	client.close()
}

func (h *Hub) sendToSubscribers(message *Message) {
	if message.WorkerID == nil {
		return
	}
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("failed to marshal review event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.Subscriptions[*message.WorkerID] {
		select {
		case client.Send <- data:
		default:
			h.log.Warn("review feed client too slow, dropping", zap.String("client_id", client.ID.String()))
			h.remove(client)
		}
	}
}

// PublishReviewsChanged queues a reviews_changed event for the worker's
// subscribers. It never blocks the caller; a full queue drops the event.
func (h *Hub) PublishReviewsChanged(workerID uuid.UUID, summary models.RatingSummary) {
	count := summary.Count
	message := &Message{
		Type:      MessageReviewsChanged,
		WorkerID:  &workerID,
		Average:   summary.Average,
		Display:   summary.Display,
		Count:     &count,
		Timestamp: time.Now(),
	}

	select {
	case h.Broadcast <- message:
	default:
		h.log.Warn("review event queue full, dropping event", zap.String("worker_id", workerID.String()))
	}
}

// SubscriberCount returns how many clients watch a worker
func (h *Hub) SubscriberCount(workerID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Subscriptions[workerID])
}

// handlePing handles ping messages for connection health
func (h *Hub) handlePing(client *Client, _ *Message) error {
	return client.SendMessage(&Message{Type: MessagePong, Timestamp: time.Now()})
}

// handleSubscribe adds another worker to the client's watch list
func (h *Hub) handleSubscribe(client *Client, message *Message) error {
	if message.WorkerID == nil {
		return errMissingWorkerID
	}
	select {
	case h.subscribe <- subscription{client: client, workerID: *message.WorkerID}:
	case <-h.done:
	}
	return nil
}

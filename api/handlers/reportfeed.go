package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/models"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ReportFeedHub tracks the sockets subscribed to report updates
type ReportFeedHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

var feed = &ReportFeedHub{
	clients: make(map[string]*websocket.Conn),
	mutex:   sync.Mutex{},
}

// HandleReportsWebSocket subscribes the caller to the report update feed.
// Every create, patch and delete is pushed to all connected clients so
// open editors can refresh stale documents.
func HandleReportsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorf("websocket upgrade error: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.New().String()
	}

	feed.mutex.Lock()
	feed.clients[clientID] = conn
	feed.mutex.Unlock()
	zap.S().Debugf("client %s connected to /ws/reports", clientID)

	conn.SetCloseHandler(func(code int, text string) error {
		feed.mutex.Lock()
		delete(feed.clients, clientID)
		feed.mutex.Unlock()
		zap.S().Debugf("client %s disconnected from /ws/reports", clientID)
		return nil
	})

	// drain the connection so pings and close frames get processed
	for {
		if _, _, err := conn.NextReader(); err != nil {
			conn.Close()
			break
		}
	}
}

// BroadcastReportUpdate pushes a report event to every connected client
func BroadcastReportUpdate(eventType string, report models.AccidentReport) {
	feed.mutex.Lock()
	defer feed.mutex.Unlock()

	for clientID, conn := range feed.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": eventType,
			"data":  report,
		})
		if err != nil {
			zap.S().Warnf("error sending report event to client %s: %v", clientID, err)
			delete(feed.clients, clientID)
			conn.Close()
		}
	}
}

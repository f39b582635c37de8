package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/pmorten/scoreboard-system/gameday"
	"github.com/pmorten/scoreboard-system/live"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS middleware already gates the REST surface; the browser
		// clients connect from the same origins.
		return true
	},
}

type WebSocketHandler struct {
	hub    *live.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// ServeScoreboard subscribes the caller to live score pushes for one
// game day: /ws/scoreboard/{date}.
func (h *WebSocketHandler) ServeScoreboard(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(gameday.DateFormat, date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade scoreboard connection",
			slog.String("date", date), slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: date,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

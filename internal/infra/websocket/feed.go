package websocket

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	appdashboard "github.com/bryanwahyu/cyberdefense-reasoning/internal/application/dashboard"
	"github.com/bryanwahyu/cyberdefense-reasoning/internal/logging"
)

const writeWait = 10 * time.Second

// FeedStarter hands out fresh live feeds.
type FeedStarter interface {
	StartFeed() *appdashboard.Feed
}

// FeedHandler streams one live monitoring run per connection and closes it
// once the feed is exhausted.
type FeedHandler struct {
	feeds    FeedStarter
	logger   logging.Logger
	upgrader websocket.Upgrader
}

func NewFeedHandler(feeds FeedStarter, logger logging.Logger, allowedOrigins []string) *FeedHandler {
	return &FeedHandler{
		feeds:  feeds,
		logger: logger.With(logging.Component("websocket")),
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logging.Error(err))
		return
	}
	defer conn.Close()

	// request context is not reliable after hijack; the read pump cancels
	// when the client goes away
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go readPump(conn, cancel)

	feed := h.feeds.StartFeed()
	log := h.logger.With(logging.String("feed_id", feed.ID))
	log.Info("feed client connected")

	if err := write(conn, TypeFeedStarted, map[string]any{"id": feed.ID, "lines": feed.Remaining()}); err != nil {
		return
	}

	for !feed.Done() {
		line, err := feed.Next(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Warn("feed interrupted", logging.Error(err))
				write(conn, TypeFeedError, map[string]string{"error": err.Error()})
			}
			return
		}
		if err := write(conn, TypeFeedLine, line); err != nil {
			log.Debug("feed client gone", logging.Error(err))
			return
		}
	}

	write(conn, TypeFeedDone, nil)
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed complete"))
	log.Info("feed completed")
}

func write(conn *websocket.Conn, typ string, data any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(Message{Type: typ, Data: data, Timestamp: time.Now().Unix()})
}

// readPump drains client frames; any read error means the client left.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

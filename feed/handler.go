// Package feed serves trajectory predictions to remote renderers over websocket
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// Handler upgrades connections and answers JSON requests until the peer leaves
type Handler struct {
	cfg *Config
}

func NewHandler(cfg *Config) *Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Handler{cfg: cfg}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	session := uuid.NewString()
	slog.DebugContext(ctx, "accepted trajectory connection", "session_id", session)

	err = h.serve(ctx, conn)
	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		slog.DebugContext(ctx, "connection closed", "session_id", session)
	case errors.Is(err, context.Canceled):
		slog.DebugContext(ctx, "connection cancelled", "session_id", session)
	default:
		slog.ErrorContext(ctx, "connection failed", "session_id", session, "err", err)
	}
}

// serve runs the request loop; wsjson closes with StatusInvalidFramePayloadData on malformed JSON
func (h *Handler) serve(ctx context.Context, conn *websocket.Conn) error {
	for {
		var req Request
		readCtx, cancel := context.WithTimeout(ctx, h.cfg.ReadTimeout)
		err := wsjson.Read(readCtx, conn, &req)
		cancel()
		if err != nil {
			return err
		}

		resp := Handle(&req, h.cfg.MaxSteps)

		writeCtx, cancel := context.WithTimeout(ctx, h.cfg.WriteTimeout)
		err = wsjson.Write(writeCtx, conn, resp)
		cancel()
		if err != nil {
			return err
		}
	}
}

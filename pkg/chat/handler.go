package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"incubator/pkg/logging"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
	maxFrame   = 8 << 10
)

type Handler struct {
	service  ChatService
	manager  *ConnectionManager
	log      *logging.Logger
	upgrader websocket.Upgrader
}

// NewHandler builds the chat endpoints. allowOrigin decides websocket origins;
// nil accepts every origin.
func NewHandler(service ChatService, manager *ConnectionManager, allowOrigin func(origin string) bool, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	h := &Handler{service: service, manager: manager, log: log.Named("chat")}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowOrigin == nil || allowOrigin(origin)
		},
	}
	return h
}

// RegisterRoutes mounts the chat endpoints. Extra middleware, such as a rate
// limiter, wraps both routes.
func (h *Handler) RegisterRoutes(router *gin.Engine, middleware ...gin.HandlerFunc) {
	chain := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, middleware...), final)
	}
	router.POST("/api/chat", chain(h.postChat)...)
	router.GET("/ws/chat", chain(h.HandleWebSocketGin)...)
}

// @Summary      Ask the assistant
// @Description  Answers a visitor question. Validation problems are reported in the error field with status 200.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Visitor message"
// @Success      200  {object}  ChatResponse "Assistant reply"
// @Failure      500  {object}  ChatResponse "Malformed request"
// @Router       /api/chat [post]
func (h *Handler) postChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, ChatResponse{Response: msgMalformed, Error: errProcessing})
		return
	}

	c.JSON(http.StatusOK, h.service.Reply(c.Request.Context(), req.Message))
}

// HandleWebSocketGin upgrades the request and runs a chat session on it.
// Each text frame carries a ChatRequest; each reply is a ChatResponse.
func (h *Handler) HandleWebSocketGin(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade error", "error", err)
		return
	}

	session := h.manager.AddSession(uuid.NewString(), conn)
	h.log.Debug("chat session opened", "session_id", session.ID)
	session.Deliver(SessionFrame{SessionID: session.ID})

	go h.writeLoop(session)
	h.readLoop(session)
}

func (h *Handler) readLoop(s *Session) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		h.manager.RemoveSession(s)
		s.Conn.Close()
		h.log.Debug("chat session closed", "session_id", s.ID)
	}()

	s.Conn.SetReadLimit(maxFrame)
	s.Conn.SetReadDeadline(time.Now().Add(pongWait))
	s.Conn.SetPongHandler(func(string) error {
		return s.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read error", "session_id", s.ID, "error", err)
			}
			return
		}

		var req ChatRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			s.Deliver(ChatResponse{Response: msgMalformed, Error: errProcessing})
			continue
		}

		// Replies are produced in order; the responder delay also throttles the session.
		if !s.Deliver(h.service.Reply(ctx, req.Message)) {
			return
		}
	}
}

func (h *Handler) writeLoop(s *Session) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.Done:
			s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case frame := <-s.Send:
			s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteJSON(frame); err != nil {
				h.log.Warn("websocket write error", "session_id", s.ID, "error", err)
				s.Conn.Close()
				return
			}

		case <-ticker.C:
			s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Conn.Close()
				return
			}
		}
	}
}

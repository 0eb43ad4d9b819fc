package chat

import (
	"context"
	"strings"
	"unicode/utf8"

	"incubator/pkg/logging"
)

type ChatService interface {
	Reply(ctx context.Context, message string) ChatResponse
}

type chatService struct {
	responder Responder
	log       *logging.Logger
}

func NewChatService(responder Responder, log *logging.Logger) ChatService {
	if log == nil {
		log = logging.NewNop()
	}
	return &chatService{responder: responder, log: log.Named("chat")}
}

// Reply validates message and asks the responder. It never returns an error:
// every failure is turned into a friendly response with Error set.
func (s *chatService) Reply(ctx context.Context, message string) ChatResponse {
	if strings.TrimSpace(message) == "" {
		return ChatResponse{Response: msgEmpty, Error: errInvalidFormat}
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return ChatResponse{Response: msgTooLong, Error: errTooLong}
	}

	reply, err := s.responder.Respond(ctx, message)
	if err != nil {
		s.log.Error("chat responder failed", "error", err)
		return ChatResponse{Response: msgTrouble, Error: errInternal}
	}

	return ChatResponse{Response: reply.Text, Suggestions: reply.Suggestions}
}

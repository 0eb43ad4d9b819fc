package chat

// ChatRequest is the body of POST /api/chat and of every websocket frame sent by the client.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is what the client receives. Validation and responder
// failures are reported in Error with a friendly Response, never as HTTP errors.
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Reply is a responder's answer before it is shaped into a ChatResponse.
type Reply struct {
	Text        string
	Confidence  float64
	Suggestions []string
}

const MaxMessageLength = 500

const (
	msgEmpty     = "I didn't receive a message. Could you please try again?"
	msgTooLong   = "That's quite a long message! Could you break it down into smaller questions? I'll be happy to help with each one."
	msgTrouble   = "I'm experiencing some technical difficulties. Please try again in a moment, or contact our support team directly."
	msgMalformed = "Sorry, I encountered an error processing your request."

	errInvalidFormat = "Invalid message format"
	errTooLong       = "Message too long"
	errInternal      = "Internal server error"
	errProcessing    = "API processing error"
)

// SessionFrame is sent once when a websocket session opens.
type SessionFrame struct {
	SessionID string `json:"session_id"`
}

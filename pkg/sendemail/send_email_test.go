package sendemail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmailService_NoKeyIsNoop(t *testing.T) {
	svc := NewEmailService("", "team@example.com", "Team")

	_, ok := svc.(noopEmailService)
	require.True(t, ok)
	require.NoError(t, svc.SendEmail(context.Background(), "hi", "a@example.com", "body", "<p>body</p>"))
}

func TestNewEmailService_WithKey(t *testing.T) {
	svc := NewEmailService("SG.test", "team@example.com", "Team")

	impl, ok := svc.(*emailService)
	require.True(t, ok)
	require.Equal(t, "team@example.com", impl.senderEmail)
	require.NotNil(t, impl.client)
}

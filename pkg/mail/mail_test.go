package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hackathon-portal-api/pkg/config"
)

func TestNewReturnsNopWhenDisabled(t *testing.T) {
	assert.IsType(t, NopSender{}, New(config.MailConfig{Enabled: false, APIKey: "key"}))
	assert.IsType(t, NopSender{}, New(config.MailConfig{Enabled: true}))
	assert.IsType(t, &SendGridSender{}, New(config.MailConfig{Enabled: true, APIKey: "key"}))
	assert.NoError(t, NopSender{}.Send(context.Background(), Message{}))
}

func TestSendGridSenderBuild(t *testing.T) {
	s := NewSendGridSender("key", "noreply@hackathon.test", "Hackathon Team")
	m := s.build(Message{
		ToEmail:   "ada@example.com",
		ToName:    "Ada Lovelace",
		Subject:   "Application received",
		PlainText: "Thanks",
		HTML:      "<p>Thanks</p>",
	})

	require.NotNil(t, m.From)
	assert.Equal(t, "noreply@hackathon.test", m.From.Address)
	assert.Equal(t, "Application received", m.Subject)
	require.Len(t, m.Personalizations, 1)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "ada@example.com", m.Personalizations[0].To[0].Address)
	assert.Len(t, m.Content, 2)
}

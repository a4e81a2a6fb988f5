package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSend(t *testing.T) {
	act := NewActivityService()
	s := NewChatService(act)
	s.now = func() time.Time { return time.Date(2024, 7, 1, 14, 5, 0, 0, time.UTC) }
	assert.Len(t, s.Messages(), 4)

	msg, err := s.Send(riaz, "  ready to ship  ")
	require.NoError(t, err)
	assert.Equal(t, "ready to ship", msg.Text)
	assert.Equal(t, "02:05 PM", msg.Time)
	assert.Equal(t, "Riaz", msg.Sender)

	msgs := s.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, msg, msgs[4])
	assert.Equal(t, `sent a message: "ready to ship"`, act.List()[0].Action)

	_, err = s.Send(riaz, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, s.Messages(), 5)
}

func TestChatSendLogsRawText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: `say "hi"`, want: `sent a message: "say "hi""`},
		{text: `C:\drafts\expo`, want: `sent a message: "C:\drafts\expo"`},
		{text: "café ☕", want: `sent a message: "café ☕"`},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			act := NewActivityService()
			s := NewChatService(act)
			_, err := s.Send(riaz, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, act.List()[0].Action)
		})
	}
}

func TestChatSubscribe(t *testing.T) {
	s := NewChatService(nil)
	ch, cancel := s.Subscribe()

	_, err := s.Send(riaz, "hello")
	require.NoError(t, err)

	select {
	case m := <-ch:
		assert.Equal(t, "hello", m.Text)
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	cancel()
	cancel()
	_, ok := <-ch
	assert.False(t, ok)

	_, err = s.Send(riaz, "after cancel")
	assert.NoError(t, err)
}

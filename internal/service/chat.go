package service

import (
	"strings"
	"sync"
	"time"

	"content-hub/internal/model"
)

var initialMessages = []model.ChatMessage{
	{Sender: "Alice", Text: "Hey team, reminder about the content deadline for next week!", Time: "10:30 AM", Avatar: "https://i.pravatar.cc/150?u=alice"},
	{Sender: "Riaz", Text: "Got it. I have the creatives for the UAE Flag Day campaign ready.", Time: "10:31 AM", Avatar: "https://i.pravatar.cc/150?u=riaz"},
	{Sender: "Bob", Text: "Great! I will review them this afternoon.", Time: "10:32 AM", Avatar: "https://i.pravatar.cc/150?u=bob"},
	{Sender: "Charlie", Text: "Anyone have the analytics from the last campaign?", Time: "10:35 AM", Avatar: "https://i.pravatar.cc/150?u=charlie"},
}

const subscriberBuffer = 16

// ChatService is the team group chat. Messages live only in memory.
type ChatService struct {
	mu       sync.RWMutex
	messages []model.ChatMessage
	subs     map[int]chan model.ChatMessage
	nextSub  int
	now      func() time.Time
	activity *ActivityService
}

func NewChatService(activity *ActivityService) *ChatService {
	return &ChatService{
		messages: append([]model.ChatMessage(nil), initialMessages...),
		subs:     map[int]chan model.ChatMessage{},
		now:      time.Now,
		activity: activity,
	}
}

func (s *ChatService) Messages() []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ChatMessage(nil), s.messages...)
}

func (s *ChatService) Send(u model.User, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	msg := model.ChatMessage{
		Sender: u.Name,
		Text:   text,
		Time:   s.now().Format("03:04 PM"),
		Avatar: u.AvatarURL,
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	for _, ch := range s.subs {
		select {
		case ch <- msg:
		default: // slow reader, it will resync from Messages
		}
	}
	s.mu.Unlock()

	if s.activity != nil {
		s.activity.Log(u.Name, `sent a message: "` + text + `"`)
	}
	return msg, nil
}

// Subscribe returns a channel of new messages and a func that closes it.
func (s *ChatService) Subscribe() (<-chan model.ChatMessage, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan model.ChatMessage, subscriberBuffer)
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
}

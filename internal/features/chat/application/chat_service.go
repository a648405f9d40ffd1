package application

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	catalog "promptcraft/backend/internal/features/catalog/domain"
	"promptcraft/backend/internal/features/chat/domain"
	"promptcraft/backend/internal/features/chat/infrastructure"
	configdomain "promptcraft/backend/internal/features/config/domain"
	wizard "promptcraft/backend/internal/features/wizard/domain"
	"promptcraft/backend/internal/storage"
)

// HistoryKey is the store key of the persisted chat log.
const HistoryKey = "chatHistory"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("a reply is already pending")
)

const (
	msgInvalidCredential = "AI 服务的 API 密钥无效，请检查环境配置。"
	msgUnavailable       = "AI 助手当前不可用，请稍后再试。"
)

// WizardSnapshotter gives read-only access to the current wizard selections.
type WizardSnapshotter interface {
	Snapshot() wizard.WizardState
}

// ChatService owns the chat log. At most one request to the model is in
// flight at a time.
type ChatService struct {
	mu      sync.Mutex
	client  infrastructure.AIClient
	store   storage.Store
	wizard  WizardSnapshotter
	catalog *catalog.Catalog
	now     func() time.Time

	messages []domain.ChatMessage
	pending  bool
}

// NewChatService restores the persisted log, starting empty when it is
// missing or unreadable.
func NewChatService(ctx context.Context, client infrastructure.AIClient, store storage.Store, wiz WizardSnapshotter, cat *catalog.Catalog) *ChatService {
	s := &ChatService{
		client:  client,
		store:   store,
		wizard:  wiz,
		catalog: cat,
		now:     time.Now,
	}
	s.messages = s.load(ctx)
	return s
}

func (s *ChatService) load(ctx context.Context) []domain.ChatMessage {
	data, ok, err := s.store.Get(ctx, HistoryKey)
	if err != nil {
		log.Println("[ERROR] Failed to read chat history, starting empty:", err)
		return []domain.ChatMessage{}
	}
	if !ok {
		return []domain.ChatMessage{}
	}
	var msgs []domain.ChatMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		log.Println("[ERROR] Failed to parse chat history, starting empty:", err)
		return []domain.ChatMessage{}
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs
}

func (s *ChatService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.messages)
	if err != nil {
		log.Println("[ERROR] Failed to marshal chat history:", err)
		return
	}
	if err := s.store.Put(ctx, HistoryKey, data); err != nil {
		log.Println("[ERROR] Failed to persist chat history:", err)
	}
}

// Messages returns a copy of the log, oldest first.
func (s *ChatService) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatMessage{}, s.messages...)
}

// Pending reports whether a reply is being awaited.
func (s *ChatService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Clear empties the log. It is refused while a reply is pending.
func (s *ChatService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrReplyPending
	}
	s.messages = []domain.ChatMessage{}
	if err := s.store.Delete(ctx, HistoryKey); err != nil {
		log.Println("[ERROR] Failed to delete chat history:", err)
	}
	return nil
}

func (s *ChatService) newMessage(role domain.Role, content string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
	}
}

// BuildContext resolves the wizard selections into the assistant context.
func BuildContext(state wizard.WizardState, cat *catalog.Catalog) domain.ChatContext {
	c := domain.ChatContext{
		PrimaryColor: state.PrimaryColor,
		Components:   strings.Join(state.Components, ", "),
	}
	if p, ok := cat.Purpose(state.PurposeID); ok {
		c.PurposeTitle = p.Title
	}
	if st, ok := cat.Style(state.StyleID); ok {
		c.StyleTitle = st.Title
		c.StyleDescription = st.Description
	}
	return c
}

// Send appends the user's message, asks the model and appends its reply.
// A failed model call is recorded as an error-role message and is not
// returned as an error; the returned message is the one appended last.
func (s *ChatService) Send(ctx context.Context, text string, params configdomain.ModelParams) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return domain.ChatMessage{}, ErrReplyPending
	}
	history := make([]infrastructure.Turn, 0, len(s.messages)+1)
	for _, m := range s.messages {
		if m.Role.Conversational() {
			history = append(history, infrastructure.Turn{Role: string(m.Role), Text: m.Content})
		}
	}
	history = append(history, infrastructure.Turn{Role: string(domain.RoleUser), Text: text})
	s.messages = append(s.messages, s.newMessage(domain.RoleUser, text))
	s.pending = true
	s.persistLocked(ctx)
	s.mu.Unlock()

	req := infrastructure.ChatRequest{
		Model:             params.Model,
		SystemInstruction: domain.BuildSystemInstruction(BuildContext(s.wizard.Snapshot(), s.catalog)),
		Temperature:       params.Temperature,
		MaxTokens:         params.MaxTokens,
		History:           history,
	}
	reply, err := s.client.Generate(ctx, req)

	var msg domain.ChatMessage
	switch {
	case err == nil:
		msg = s.newMessage(domain.RoleModel, reply)
	case errors.Is(err, infrastructure.ErrInvalidCredential):
		log.Printf("[ERROR] Chat request via %s rejected credential: %v", s.client.Name(), err)
		msg = s.newMessage(domain.RoleError, msgInvalidCredential)
	default:
		log.Printf("[ERROR] Chat request via %s failed: %v", s.client.Name(), err)
		msg = s.newMessage(domain.RoleError, msgUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	s.pending = false
	// The request context may already be done; the log must still be saved.
	s.persistLocked(context.WithoutCancel(ctx))
	return msg, nil
}

package service

import (
	"context"
	"time"

	"nutrition-assistant-be/internal/constant"
	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/apperr"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/repository/memory"
	"nutrition-assistant-be/internal/repository/specification"
	"nutrition-assistant-be/internal/repository/unitofwork"
	"nutrition-assistant-be/pkg/assistant"

	"github.com/google/uuid"
)

// IChatService defines the chat session lifecycle
type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	SwitchSession(ctx context.Context, userId uuid.UUID, request *dto.SwitchSessionRequest) error
	GetActiveSession(ctx context.Context, userId uuid.UUID) (*dto.ActiveSessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error
	TogglePin(ctx context.Context, userId uuid.UUID, request *dto.TogglePinRequest) (*dto.TogglePinResponse, error)
	RenameSession(ctx context.Context, userId uuid.UUID, request *dto.RenameSessionRequest) error
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	generator   assistant.ResponseGenerator
	activeRepo  *memory.ActiveSessionRepository
	logger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	generator assistant.ResponseGenerator,
	activeRepo *memory.ActiveSessionRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		generator:  generator,
		activeRepo: activeRepo,
		logger:     log,
	}
}

// CreateSession opens a new session with a greeting from the assistant and
// makes it the user's active session.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        constant.ChatSessionDefaultTitle,
		CreatedAt:    now,
		LastActiveAt: now,
	}

	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       constant.ChatAssistantGreeting,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.activeRepo.Set(userId, chatSession.Id)

	cs.logger.Info("chat", "session created", map[string]interface{}{
		"user_id":    userId.String(),
		"session_id": chatSession.Id.String(),
	})

	return &dto.CreateSessionResponse{Id: chatSession.Id, Title: chatSession.Title}, nil
}

// GetAllSessions lists the user's sessions, pinned first, then most recently
// active.
func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:           s.Id,
			Title:        s.Title,
			Pinned:       s.Pinned,
			CreatedAt:    s.CreatedAt,
			LastActiveAt: s.LastActiveAt,
		})
	}

	return response, nil
}

func (cs *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.verifySession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.MessageOrder{},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return resp, nil
}

// SendChat appends the user's message, asks the assistant for a reply in the
// context of the full session history, and appends that reply. The first
// user message also titles the session. Both messages and the title land in
// one transaction so a generator failure leaves the session untouched.
func (cs *chatService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	chatSession, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	existing, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: request.ChatSessionId},
		specification.MessageOrder{},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Chat,
		CreatedAt:     now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	history := make([]assistant.Message, 0, len(existing)+1)
	for _, msg := range existing {
		history = append(history, assistant.Message{Role: msg.Role, Content: msg.Content})
	}
	history = append(history, assistant.Message{Role: userMessage.Role, Content: userMessage.Content})

	reply, err := cs.generator.Generate(ctx, history)
	if err != nil {
		cs.logger.Error("chat", "assistant generation failed", map[string]interface{}{
			"session_id": request.ChatSessionId.String(),
			"error":      err.Error(),
		})
		return nil, apperr.BackendUnavailable(err)
	}

	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       reply,
		CreatedAt:     now.Add(time.Millisecond),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"last_active_at": now}
	if chatSession.Title == constant.ChatSessionDefaultTitle {
		chatSession.Title = deriveTitle(request.Chat, now)
		fields["title"] = chatSession.Title
	}
	if err := uow.ChatSessionRepository().UpdateFields(ctx, chatSession.Id, fields); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.activeRepo.Set(userId, chatSession.Id)

	return &dto.SendChatResponse{
		ChatSessionId:    chatSession.Id,
		ChatSessionTitle: chatSession.Title,
		Sent: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Chat:      userMessage.Content,
			Role:      userMessage.Role,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        assistantMessage.Id,
			Chat:      assistantMessage.Content,
			Role:      assistantMessage.Role,
			CreatedAt: assistantMessage.CreatedAt,
		},
	}, nil
}

// SwitchSession points the user's active session at an existing session.
// The pointer lives in process memory only and is never persisted.
func (cs *chatService) SwitchSession(ctx context.Context, userId uuid.UUID, request *dto.SwitchSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId); err != nil {
		return err
	}

	cs.activeRepo.Set(userId, request.ChatSessionId)
	return nil
}

func (cs *chatService) GetActiveSession(ctx context.Context, userId uuid.UUID) (*dto.ActiveSessionResponse, error) {
	if sessionId, found := cs.activeRepo.Get(userId); found {
		return &dto.ActiveSessionResponse{ChatSessionId: &sessionId}, nil
	}
	return &dto.ActiveSessionResponse{ChatSessionId: nil}, nil
}

// DeleteSession removes a session with its full history. If the deleted
// session was the active one the pointer is cleared; other pointers are left
// alone.
func (cs *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	chatSession, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return err
	}

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, chatSession.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, chatSession.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	cs.activeRepo.ClearIf(userId, chatSession.Id)

	cs.logger.Info("chat", "session deleted", map[string]interface{}{
		"user_id":    userId.String(),
		"session_id": chatSession.Id.String(),
	})

	return nil
}

// TogglePin flips the pinned flag. Pinning does not touch last_active_at, so
// unpinning drops the session back to its natural recency slot.
func (cs *chatService) TogglePin(ctx context.Context, userId uuid.UUID, request *dto.TogglePinRequest) (*dto.TogglePinResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	pinned := !chatSession.Pinned
	if err := uow.ChatSessionRepository().UpdateFields(ctx, chatSession.Id, map[string]interface{}{
		"pinned": pinned,
	}); err != nil {
		return nil, err
	}

	return &dto.TogglePinResponse{ChatSessionId: chatSession.Id, Pinned: pinned}, nil
}

func (cs *chatService) RenameSession(ctx context.Context, userId uuid.UUID, request *dto.RenameSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return err
	}

	return uow.ChatSessionRepository().UpdateFields(ctx, chatSession.Id, map[string]interface{}{
		"title": request.Title,
	})
}

// verifySession loads a session scoped to its owner. A missing session and a
// session owned by someone else are indistinguishable to the caller.
func (cs *chatService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, apperr.NotFound("chat session")
	}
	return chatSession, nil
}

package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"nutrition-assistant-be/internal/constant"
	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/apperr"
	"nutrition-assistant-be/internal/pkg/logger"
	"nutrition-assistant-be/internal/repository/memory"
	"nutrition-assistant-be/internal/repository/unitofwork"
	"nutrition-assistant-be/internal/service"
	"nutrition-assistant-be/pkg/assistant"
	"nutrition-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupChatService(t *testing.T) (service.IChatService, *memory.ActiveSessionRepository, *gorm.DB, uuid.UUID) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	activeRepo := memory.NewActiveSessionRepository()
	sysLogger := logger.NewZapLogger(os.TempDir()+"/chat_flow_test.log", false)

	chatService := service.NewChatService(
		uowFactory,
		assistant.NewRuleBasedGenerator(),
		activeRepo,
		sysLogger,
	)

	// Seed an owner row so session FKs hold.
	userId := uuid.New()
	uow := uowFactory.NewUnitOfWork(context.Background())
	err = uow.UserRepository().Create(context.Background(), &entity.User{
		Id:        userId,
		Email:     "chat-flow-" + userId.String() + "@example.com",
		FullName:  "Chat Flow Test User",
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	return chatService, activeRepo, gormDB, userId
}

func TestChatSessionLifecycle(t *testing.T) {
	chatService, activeRepo, _, userId := setupChatService(t)
	ctx := context.Background()

	created, err := chatService.CreateSession(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, constant.ChatSessionDefaultTitle, created.Title)

	t.Run("created session appears in listing", func(t *testing.T) {
		sessions, err := chatService.GetAllSessions(ctx, userId)
		require.NoError(t, err)

		found := false
		for _, s := range sessions {
			if s.Id == created.Id {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("new session becomes active", func(t *testing.T) {
		active, err := chatService.GetActiveSession(ctx, userId)
		require.NoError(t, err)
		require.NotNil(t, active.ChatSessionId)
		assert.Equal(t, created.Id, *active.ChatSessionId)
	})

	t.Run("history starts with assistant greeting", func(t *testing.T) {
		history, err := chatService.GetChatHistory(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, constant.ChatMessageRoleAssistant, history[0].Role)
	})

	t.Run("first user message titles the session and appends in order", func(t *testing.T) {
		res, err := chatService.SendChat(ctx, userId, &dto.SendChatRequest{
			ChatSessionId: created.Id,
			Chat:          "How much protein should I eat?",
		})
		require.NoError(t, err)
		assert.Equal(t, "How much protein should I eat?", res.ChatSessionTitle)
		assert.Equal(t, constant.ChatMessageRoleUser, res.Sent.Role)
		assert.Equal(t, constant.ChatMessageRoleAssistant, res.Reply.Role)

		history, err := chatService.GetChatHistory(ctx, userId, created.Id)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, constant.ChatMessageRoleAssistant, history[0].Role)
		assert.Equal(t, constant.ChatMessageRoleUser, history[1].Role)
		assert.Equal(t, constant.ChatMessageRoleAssistant, history[2].Role)
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].CreatedAt.Before(history[i-1].CreatedAt))
		}
	})

	t.Run("second message does not retitle", func(t *testing.T) {
		res, err := chatService.SendChat(ctx, userId, &dto.SendChatRequest{
			ChatSessionId: created.Id,
			Chat:          "And how much water should I drink?",
		})
		require.NoError(t, err)
		assert.Equal(t, "How much protein should I eat?", res.ChatSessionTitle)
	})

	t.Run("rename is explicit only", func(t *testing.T) {
		err := chatService.RenameSession(ctx, userId, &dto.RenameSessionRequest{
			ChatSessionId: created.Id,
			Title:         "Protein questions",
		})
		require.NoError(t, err)

		sessions, err := chatService.GetAllSessions(ctx, userId)
		require.NoError(t, err)
		for _, s := range sessions {
			if s.Id == created.Id {
				assert.Equal(t, "Protein questions", s.Title)
			}
		}
	})

	t.Run("pin is an involution", func(t *testing.T) {
		res, err := chatService.TogglePin(ctx, userId, &dto.TogglePinRequest{ChatSessionId: created.Id})
		require.NoError(t, err)
		assert.True(t, res.Pinned)

		res, err = chatService.TogglePin(ctx, userId, &dto.TogglePinRequest{ChatSessionId: created.Id})
		require.NoError(t, err)
		assert.False(t, res.Pinned)
	})

	t.Run("foreign session is indistinguishable from missing", func(t *testing.T) {
		stranger := uuid.New()
		_, err := chatService.GetChatHistory(ctx, stranger, created.Id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, err = chatService.GetChatHistory(ctx, userId, uuid.New())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("delete removes session, history and active pointer", func(t *testing.T) {
		require.NoError(t, chatService.SwitchSession(ctx, userId, &dto.SwitchSessionRequest{
			ChatSessionId: created.Id,
		}))

		err := chatService.DeleteSession(ctx, userId, &dto.DeleteSessionRequest{
			ChatSessionId: created.Id,
		})
		require.NoError(t, err)

		_, err = chatService.GetChatHistory(ctx, userId, created.Id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, found := activeRepo.Get(userId)
		assert.False(t, found)

		sessions, err := chatService.GetAllSessions(ctx, userId)
		require.NoError(t, err)
		for _, s := range sessions {
			assert.NotEqual(t, created.Id, s.Id)
		}
	})
}

func TestSessionOrdering(t *testing.T) {
	chatService, _, _, userId := setupChatService(t)
	ctx := context.Background()

	first, err := chatService.CreateSession(ctx, userId)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := chatService.CreateSession(ctx, userId)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	third, err := chatService.CreateSession(ctx, userId)
	require.NoError(t, err)

	// Pin the oldest.
	_, err = chatService.TogglePin(ctx, userId, &dto.TogglePinRequest{ChatSessionId: first.Id})
	require.NoError(t, err)

	sessions, err := chatService.GetAllSessions(ctx, userId)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(sessions), 3)

	pos := make(map[uuid.UUID]int)
	for i, s := range sessions {
		pos[s.Id] = i
	}

	// Pinned before unpinned, recency inside the unpinned group.
	assert.Less(t, pos[first.Id], pos[second.Id])
	assert.Less(t, pos[first.Id], pos[third.Id])
	assert.Less(t, pos[third.Id], pos[second.Id])
}

func TestSwitchSessionValidation(t *testing.T) {
	chatService, _, _, userId := setupChatService(t)
	ctx := context.Background()

	err := chatService.SwitchSession(ctx, userId, &dto.SwitchSessionRequest{
		ChatSessionId: uuid.New(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

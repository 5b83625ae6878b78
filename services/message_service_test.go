package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"message-board/domain"
	"message-board/errors"
	"message-board/mocks"
	"message-board/repositories"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedClock returns the given instants in order, then repeats the last one.
func fixedClock(instants ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := instants[min(i, len(instants)-1)]
		i++
		return t
	}
}

func TestMessageService_CreateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	t0 := time.Unix(1_700_000_000, 0)
	svc := NewMessageService(mockRepo, slog.Default(),
		WithClock(fixedClock(t0)),
		WithIDGenerator(func() string { return "generated-id" }),
	)

	t.Run("should store the payload under a generated id", func(t *testing.T) {
		req := require.New(t)
		expected := repositories.DiskMessage{
			ID:            "generated-id",
			Title:         "Hi",
			Body:          "there",
			AttachmentURL: "",
			CreatedAt:     uint64(t0.UnixNano()),
		}

		mockRepo.EXPECT().
			Insert("generated-id", expected).
			Return(nil).
			Times(1)

		message, err := svc.CreateMessage(domain.MessagePayload{Title: "Hi", Body: "there"})

		req.NoError(err)
		req.Equal("generated-id", message.ID)
		req.Equal("Hi", message.Title)
		req.Equal("there", message.Body)
		req.Equal(uint64(t0.UnixNano()), message.CreatedAt)
		req.Nil(message.UpdatedAt)
	})

	t.Run("should propagate storage failures", func(t *testing.T) {
		req := require.New(t)
		storageErr := fmt.Errorf("disk full")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(storageErr).
			Times(1)

		_, err := svc.CreateMessage(domain.MessagePayload{Title: "Hi"})

		req.ErrorIs(err, storageErr)
	})
}

func TestMessageService_GetMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewMessageService(mockRepo, slog.Default())

	t.Run("should return the stored message", func(t *testing.T) {
		req := require.New(t)
		stored := repositories.DiskMessage{ID: "id-1", Title: "title", CreatedAt: 10}

		mockRepo.EXPECT().Get("id-1").Return(stored, true, nil).Times(1)

		message, err := svc.GetMessage("id-1")

		req.NoError(err)
		req.Equal(domain.Message{ID: "id-1", Title: "title", CreatedAt: 10}, message)
	})

	t.Run("should return not found with the requested id", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Get("missing-id").Return(repositories.DiskMessage{}, false, nil).Times(1)

		_, err := svc.GetMessage("missing-id")

		req.ErrorIs(err, errors.ErrMessageNotFound)
		req.Contains(err.Error(), "missing-id")
	})
}

func TestMessageService_UpdateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)

	t.Run("should replace the payload and keep id and creation time", func(t *testing.T) {
		req := require.New(t)
		t1 := time.Unix(1_700_000_100, 0)
		svc := NewMessageService(mockRepo, slog.Default(), WithClock(fixedClock(t1)))
		stored := repositories.DiskMessage{ID: "id-1", Title: "Hi", Body: "there", CreatedAt: 10}
		expected := repositories.DiskMessage{
			ID:            "id-1",
			Title:         "Hi2",
			Body:          "there",
			AttachmentURL: "https://example.com/a.png",
			CreatedAt:     10,
			UpdatedAt:     lo.ToPtr(uint64(t1.UnixNano())),
		}

		gomock.InOrder(
			mockRepo.EXPECT().Get("id-1").Return(stored, true, nil),
			mockRepo.EXPECT().Insert("id-1", expected).Return(nil),
		)

		message, err := svc.UpdateMessage("id-1", domain.MessagePayload{
			Title:         "Hi2",
			Body:          "there",
			AttachmentURL: "https://example.com/a.png",
		})

		req.NoError(err)
		req.Equal("id-1", message.ID)
		req.Equal(uint64(10), message.CreatedAt)
		req.Equal("Hi2", message.Title)
		req.Equal("https://example.com/a.png", message.AttachmentURL)
		req.True(message.Updated())
		req.Equal(uint64(t1.UnixNano()), *message.UpdatedAt)
	})

	t.Run("should never move the update time backwards", func(t *testing.T) {
		req := require.New(t)
		svc := NewMessageService(mockRepo, slog.Default(), WithClock(fixedClock(time.Unix(0, 5))))
		stored := repositories.DiskMessage{ID: "id-1", CreatedAt: 10, UpdatedAt: lo.ToPtr(uint64(20))}

		mockRepo.EXPECT().Get("id-1").Return(stored, true, nil)
		mockRepo.EXPECT().Insert("id-1", gomock.Any()).Return(nil)

		message, err := svc.UpdateMessage("id-1", domain.MessagePayload{Title: "late"})

		req.NoError(err)
		req.Equal(uint64(20), *message.UpdatedAt)
	})

	t.Run("should not write anything when the message does not exist", func(t *testing.T) {
		req := require.New(t)
		svc := NewMessageService(mockRepo, slog.Default())

		mockRepo.EXPECT().Get("missing-id").Return(repositories.DiskMessage{}, false, nil).Times(1)
		// Repository should NEVER be written to
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateMessage("missing-id", domain.MessagePayload{Title: "ghost"})

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})
}

func TestMessageService_DeleteMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewMessageService(mockRepo, slog.Default())

	t.Run("should return the removed message", func(t *testing.T) {
		req := require.New(t)
		stored := repositories.DiskMessage{ID: "id-1", Title: "bye", CreatedAt: 10}

		mockRepo.EXPECT().Remove("id-1").Return(stored, true, nil).Times(1)

		message, err := svc.DeleteMessage("id-1")

		req.NoError(err)
		req.Equal("bye", message.Title)
	})

	t.Run("should return not found when nothing was removed", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Remove("missing-id").Return(repositories.DiskMessage{}, false, nil).Times(1)

		_, err := svc.DeleteMessage("missing-id")

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})
}

func TestMessageService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewMessageService(mockRepo, slog.Default())

	t.Run("should return an empty list for an empty store", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Values().Return([]repositories.DiskMessage{}, nil).Times(1)

		messages, err := svc.ListMessages()

		req.NoError(err)
		req.NotNil(messages)
		req.Empty(messages)
	})

	t.Run("should keep the store order", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Values().Return([]repositories.DiskMessage{{ID: "a"}, {ID: "b"}}, nil).Times(1)

		messages, err := svc.ListMessages()

		req.NoError(err)
		req.Equal([]domain.Message{{ID: "a"}, {ID: "b"}}, messages)
	})
}

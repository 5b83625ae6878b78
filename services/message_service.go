package services

import (
	"fmt"
	"log/slog"
	"time"

	"message-board/domain"
	"message-board/errors"
	"message-board/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageService interface {
	ListMessages() ([]domain.Message, error)
	GetMessage(id string) (domain.Message, error)
	CreateMessage(payload domain.MessagePayload) (domain.Message, error)
	UpdateMessage(id string, payload domain.MessagePayload) (domain.Message, error)
	DeleteMessage(id string) (domain.Message, error)
}

type MessageService struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
	now        func() time.Time
	newID      func() string
}

type Option func(*MessageService)

// WithClock replaces the time source used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *MessageService) { s.now = now }
}

// WithIDGenerator replaces the generator of new message ids.
// Generated ids are not checked against the store.
func WithIDGenerator(newID func() string) Option {
	return func(s *MessageService) { s.newID = newID }
}

func NewMessageService(repository repositories.IMessageRepository, log *slog.Logger, opts ...Option) IMessageService {
	s := &MessageService{
		repository: repository,
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MessageService) ListMessages() ([]domain.Message, error) {
	messages, err := s.repository.Values()
	if err != nil {
		return nil, err
	}
	return lo.Map(messages, func(item repositories.DiskMessage, _ int) domain.Message {
		return toMessage(item)
	}), nil
}

func (s *MessageService) GetMessage(id string) (domain.Message, error) {
	message, found, err := s.repository.Get(id)
	if err != nil {
		return domain.Message{}, err
	}
	if !found {
		return domain.Message{}, notFound(id)
	}
	return toMessage(message), nil
}

func (s *MessageService) CreateMessage(payload domain.MessagePayload) (domain.Message, error) {
	message := repositories.DiskMessage{
		ID:            s.newID(),
		Title:         payload.Title,
		Body:          payload.Body,
		AttachmentURL: payload.AttachmentURL,
		CreatedAt:     s.timestamp(),
	}
	if err := s.repository.Insert(message.ID, message); err != nil {
		return domain.Message{}, err
	}
	s.log.Debug("Message created", "id", message.ID)
	return toMessage(message), nil
}

// UpdateMessage replaces the payload fields of an existing message.
// A missing id is reported as ErrMessageNotFound and nothing is written.
func (s *MessageService) UpdateMessage(id string, payload domain.MessagePayload) (domain.Message, error) {
	message, found, err := s.repository.Get(id)
	if err != nil {
		return domain.Message{}, err
	}
	if !found {
		return domain.Message{}, notFound(id)
	}

	// UpdatedAt never goes back in time, even if the clock does
	updatedAt := max(s.timestamp(), message.CreatedAt, lo.FromPtr(message.UpdatedAt))

	message.Title = payload.Title
	message.Body = payload.Body
	message.AttachmentURL = payload.AttachmentURL
	message.UpdatedAt = &updatedAt

	if err = s.repository.Insert(id, message); err != nil {
		return domain.Message{}, err
	}
	s.log.Debug("Message updated", "id", id)
	return toMessage(message), nil
}

func (s *MessageService) DeleteMessage(id string) (domain.Message, error) {
	message, found, err := s.repository.Remove(id)
	if err != nil {
		return domain.Message{}, err
	}
	if !found {
		return domain.Message{}, notFound(id)
	}
	s.log.Debug("Message deleted", "id", id)
	return toMessage(message), nil
}

func (s *MessageService) timestamp() uint64 {
	return uint64(s.now().UnixNano())
}

func notFound(id string) error {
	return fmt.Errorf("%w: id=%s", errors.ErrMessageNotFound, id)
}

func toMessage(message repositories.DiskMessage) domain.Message {
	return domain.Message{
		ID:            message.ID,
		Title:         message.Title,
		Body:          message.Body,
		AttachmentURL: message.AttachmentURL,
		CreatedAt:     message.CreatedAt,
		UpdatedAt:     message.UpdatedAt,
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"message-board/errors"

	"github.com/dgraph-io/badger/v4"
)

const messagePrefix = "msg:"

type IMessageRepository interface {
	Get(id string) (DiskMessage, bool, error)
	Values() ([]DiskMessage, error)
	Insert(id string, message DiskMessage) error
	Remove(id string) (DiskMessage, bool, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// DiskMessage is the stored shape of a board message.
type DiskMessage struct {
	ID            string
	Title         string
	Body          string
	AttachmentURL string
	CreatedAt     uint64
	UpdatedAt     *uint64
}

func messageKey(id string) []byte {
	return []byte(messagePrefix + id)
}

// Get returns the message stored under id.
// The boolean is false when no such key exists.
func (m MessageRepository) Get(id string) (DiskMessage, bool, error) {
	var message DiskMessage
	found := false
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(messageKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			message, err = DecodeDiskMessage(val)
			return err
		})
	})
	if err != nil {
		return DiskMessage{}, false, fmt.Errorf("get message %s: %w", id, err)
	}
	return message, found, nil
}

// Values returns every stored message.
// Badger iterates keys in ascending byte order, so messages come back sorted by id.
func (m MessageRepository) Values() ([]DiskMessage, error) {
	messages := make([]DiskMessage, 0)
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				message, err := DecodeDiskMessage(val)
				if err != nil {
					return fmt.Errorf("key %s: %w", item.Key(), err)
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Insert stores the message under id, overwriting any previous value.
// The id must be the message's own ID.
func (m MessageRepository) Insert(id string, message DiskMessage) error {
	if id != message.ID {
		return fmt.Errorf("%w: key=%s id=%s", errors.ErrKeyMismatch, id, message.ID)
	}
	bytes := EncodeDiskMessage(message)
	err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(id), bytes)
	})
	if err != nil {
		return fmt.Errorf("insert message %s: %w", id, err)
	}
	m.log.Debug("Message stored", "id", id, "size", len(bytes))
	return nil
}

// Remove deletes the message stored under id and returns it.
// Lookup and deletion share one transaction. Removing an absent key is not an error.
func (m MessageRepository) Remove(id string) (DiskMessage, bool, error) {
	var message DiskMessage
	found := false
	err := m.db.Update(func(txn *badger.Txn) error {
		key := messageKey(id)
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		err = item.Value(func(val []byte) error {
			message, err = DecodeDiskMessage(val)
			return err
		})
		if err != nil {
			return err
		}
		found = true
		return txn.Delete(key)
	})
	if err != nil {
		return DiskMessage{}, false, fmt.Errorf("remove message %s: %w", id, err)
	}
	if found {
		m.log.Debug("Message removed", "id", id)
	}
	return message, found, nil
}

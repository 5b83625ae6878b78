package repositories

import (
	"fmt"

	"message-board/errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the stored message record.
const (
	fieldID            protowire.Number = 1
	fieldTitle         protowire.Number = 2
	fieldBody          protowire.Number = 3
	fieldAttachmentURL protowire.Number = 4
	fieldCreatedAt     protowire.Number = 5
	fieldUpdatedAt     protowire.Number = 6
)

// EncodeDiskMessage serializes a message in protobuf wire format.
// updated_at is only written when the message has been updated, so its
// presence on disk tells "never updated" apart from a zero timestamp.
func EncodeDiskMessage(message DiskMessage) []byte {
	var b []byte
	b = appendString(b, fieldID, message.ID)
	b = appendString(b, fieldTitle, message.Title)
	b = appendString(b, fieldBody, message.Body)
	b = appendString(b, fieldAttachmentURL, message.AttachmentURL)
	b = protowire.AppendTag(b, fieldCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, message.CreatedAt)
	if message.UpdatedAt != nil {
		b = protowire.AppendTag(b, fieldUpdatedAt, protowire.VarintType)
		b = protowire.AppendVarint(b, *message.UpdatedAt)
	}
	return b
}

// DecodeDiskMessage parses bytes written by EncodeDiskMessage.
// Unknown fields are skipped.
func DecodeDiskMessage(b []byte) (DiskMessage, error) {
	var message DiskMessage
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return DiskMessage{}, corrupt(n)
		}
		b = b[n:]

		switch {
		case typ == protowire.BytesType && num >= fieldID && num <= fieldAttachmentURL:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return DiskMessage{}, corrupt(n)
			}
			b = b[n:]
			switch num {
			case fieldID:
				message.ID = v
			case fieldTitle:
				message.Title = v
			case fieldBody:
				message.Body = v
			case fieldAttachmentURL:
				message.AttachmentURL = v
			}
		case typ == protowire.VarintType && (num == fieldCreatedAt || num == fieldUpdatedAt):
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return DiskMessage{}, corrupt(n)
			}
			b = b[n:]
			if num == fieldCreatedAt {
				message.CreatedAt = v
			} else {
				message.UpdatedAt = &v
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return DiskMessage{}, corrupt(n)
			}
			b = b[n:]
		}
	}
	return message, nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func corrupt(n int) error {
	return fmt.Errorf("%w: %v", errors.ErrCorruptRecord, protowire.ParseError(n))
}

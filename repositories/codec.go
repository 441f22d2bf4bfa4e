package repositories

import (
	"chat-live/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored as protobuf wire messages.
// Unknown fields are skipped on decode so that new fields can be added without migration.
//
//	message Message {
//	  string id = 1; string sender_id = 2; string receiver_id = 3;
//	  string text = 4; string image = 5; string lang = 6;
//	  bool read = 7; bool delivered = 8;
//	  int64 created_at = 9; int64 updated_at = 10;
//	}
//
//	message User {
//	  string id = 1; string full_name = 2; string email = 3;
//	  string password_hash = 4; string profile_pic = 5;
//	  int64 created_at = 6; int64 updated_at = 7;
//	}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	return appendVarint(b, num, uint64(t.UnixNano()))
}

func encodeMessage(m domain.Message) []byte {
	var b []byte
	b = appendString(b, 1, m.ID.String())
	b = appendString(b, 2, m.SenderID.String())
	b = appendString(b, 3, m.ReceiverID.String())
	b = appendString(b, 4, m.Text)
	b = appendString(b, 5, m.Image)
	b = appendString(b, 6, m.Lang)
	b = appendVarint(b, 7, protowire.EncodeBool(m.Read))
	b = appendVarint(b, 8, protowire.EncodeBool(m.Delivered))
	b = appendTime(b, 9, m.CreatedAt)
	b = appendTime(b, 10, m.UpdatedAt)
	return b
}

func decodeMessage(b []byte) (domain.Message, error) {
	var m domain.Message
	err := walk(b, func(num protowire.Number, s string, v uint64) error {
		switch num {
		case 1:
			id, err := uuid.Parse(s)
			if err != nil {
				return err
			}
			m.ID = id
		case 2:
			m.SenderID = domain.UserID(s)
		case 3:
			m.ReceiverID = domain.UserID(s)
		case 4:
			m.Text = s
		case 5:
			m.Image = s
		case 6:
			m.Lang = s
		case 7:
			m.Read = protowire.DecodeBool(v)
		case 8:
			m.Delivered = protowire.DecodeBool(v)
		case 9:
			m.CreatedAt = time.Unix(0, int64(v)).UTC()
		case 10:
			m.UpdatedAt = time.Unix(0, int64(v)).UTC()
		}
		return nil
	})
	return m, err
}

func encodeUser(u domain.User) []byte {
	var b []byte
	b = appendString(b, 1, u.ID.String())
	b = appendString(b, 2, u.FullName)
	b = appendString(b, 3, u.Email)
	b = appendString(b, 4, u.PasswordHash)
	b = appendString(b, 5, u.ProfilePic)
	b = appendTime(b, 6, u.CreatedAt)
	b = appendTime(b, 7, u.UpdatedAt)
	return b
}

func decodeUser(b []byte) (domain.User, error) {
	var u domain.User
	err := walk(b, func(num protowire.Number, s string, v uint64) error {
		switch num {
		case 1:
			u.ID = domain.UserID(s)
		case 2:
			u.FullName = s
		case 3:
			u.Email = s
		case 4:
			u.PasswordHash = s
		case 5:
			u.ProfilePic = s
		case 6:
			u.CreatedAt = time.Unix(0, int64(v)).UTC()
		case 7:
			u.UpdatedAt = time.Unix(0, int64(v)).UTC()
		}
		return nil
	})
	return u, err
}

// walk visits every string and varint field of b.
func walk(b []byte, visit func(num protowire.Number, s string, v uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := visit(num, s, 0); err != nil {
				return fmt.Errorf("field %d: %w", num, err)
			}
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := visit(num, "", v); err != nil {
				return fmt.Errorf("field %d: %w", num, err)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

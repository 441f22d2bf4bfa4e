package repositories

import (
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// InspectRow is one badger record decoded for humans.
type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Detail    string
}

// Inspect decodes every record under prefix, up to limit rows when limit > 0.
func Inspect(db *badger.DB, prefix string, limit int) ([]InspectRow, error) {
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				rows = append(rows, MapRecord(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
			if limit > 0 && len(rows) >= limit {
				return nil
			}
		}
		return nil
	})
	return rows, err
}

// MapRecord recognizes message and user records, anything else is shown raw.
func MapRecord(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	switch parts[0] {
	case "msg":
		row.Type = "MESSAGE"
		if len(parts) == 4 {
			row.Namespace = parts[1]
			if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
				row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
			}
			row.EntityID = short(parts[3])
		}
		if m, err := decodeMessage(val); err == nil {
			row.Detail = m.SenderID.String() + " -> " + m.ReceiverID.String() + ": " + m.Text
			if m.Image != "" {
				row.Detail += " [" + m.Image + "]"
			}
			if m.Read {
				row.Detail += " (read)"
			}
		}
	case "msgid":
		row.Type = "MESSAGE_ID"
		row.EntityID = short(strings.TrimPrefix(key, "msgid:"))
		row.Detail = string(val)
	case "user":
		row.Type = "USER"
		row.EntityID = short(strings.TrimPrefix(key, userPrefix))
		if u, err := decodeUser(val); err == nil {
			row.Timestamp = u.CreatedAt.UTC().Format("15:04:05")
			row.Detail = u.FullName + " <" + u.Email + ">"
		}
	case "user-email":
		row.Type = "USER_EMAIL"
		row.Detail = string(val)
	}
	return row
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package database

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Collection names used throughout the portal.
const (
	CollectionProfiles      = "profiles"
	CollectionOpenings      = "openings"
	CollectionApplications  = "applications"
	CollectionNotifications = "notifications"
)

// ErrConflict is returned by Insert when a uniqueness constraint on the
// collection rejects the record.
var ErrConflict = errors.New("document conflict")

// Filter selects documents by field value. A scalar value means equality;
// a slice value means the document's array field must contain every element.
type Filter map[string]any

// Fields is a partial update: only the listed fields are written, the rest
// of the document is left untouched.
type Fields map[string]any

// DocumentStore is the storage collaborator. Records are JSON documents
// grouped into named collections; identities are generated on insert and
// stored in the document under "id".
type DocumentStore interface {
	Insert(ctx context.Context, collection string, record any) (uuid.UUID, error)
	FindOne(ctx context.Context, collection string, filter Filter) (json.RawMessage, bool, error)
	FindMany(ctx context.Context, collection string, filter Filter) ([]json.RawMessage, error)
	UpdateOne(ctx context.Context, collection string, id uuid.UUID, fields Fields) (int64, error)
}

// EncodeRecord canonicalizes a record into a JSON object and stamps the
// given identity into it.
func EncodeRecord(record any, id uuid.UUID) (map[string]any, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	doc["id"] = id.String()
	return doc, nil
}

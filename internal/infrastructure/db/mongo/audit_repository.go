package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository appends authentication events. Events are write-only from
// the API's point of view; they are read through reporting tools.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Username  string `bson:"username"`
	Outcome   string `bson:"outcome"`
	Reason    string `bson:"reason,omitempty"`
	Method    string `bson:"method,omitempty"`
	Path      string `bson:"path,omitempty"`
	RequestID string `bson:"request_id,omitempty"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuthAudit) error {
	doc := auditDoc{
		Username:  event.Username,
		Outcome:   event.Outcome,
		Reason:    event.Reason,
		Method:    event.Method,
		Path:      event.Path,
		RequestID: event.RequestID,
		At:        event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const ticketNoteCollection = "ticket_notes"

// TicketNoteRepository encapsulates ticket note persistence.
type TicketNoteRepository interface {
	Create(ctx context.Context, note *domain.TicketNote) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketNote, error)
}

type ticketNoteRepository struct {
	collection *mongo.Collection
}

// NewTicketNoteRepository instantiates the repository.
func NewTicketNoteRepository(db *mongo.Database) TicketNoteRepository {
	return &ticketNoteRepository{collection: db.Collection(ticketNoteCollection)}
}

func (r *ticketNoteRepository) Create(ctx context.Context, note *domain.TicketNote) error {
	_, err := r.collection.InsertOne(ctx, bson.M{
		"id":         note.ID,
		"ticket_id":  note.TicketID,
		"user_id":    note.UserID,
		"note":       note.Note,
		"created_at": encodeTime(note.CreatedAt),
	})
	return err
}

func (r *ticketNoteRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketNote, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ticket_id": ticketID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.TicketNote
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		createdAt, err := decodeTime(doc["created_at"])
		if err != nil {
			return nil, err
		}
		result = append(result, domain.TicketNote{
			ID:        docString(doc, "id"),
			TicketID:  docString(doc, "ticket_id"),
			UserID:    docString(doc, "user_id"),
			Note:      docString(doc, "note"),
			CreatedAt: createdAt,
		})
	}
	return result, cursor.Err()
}

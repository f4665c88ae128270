package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const ticketCollection = "tickets"

// TicketFilter captures ticket listing parameters. A nil field leaves the
// corresponding predicate out of the query.
type TicketFilter struct {
	CompanyID *string
	Statuses  []domain.TicketStatus
	// AssignedToOrUnassigned restricts to tickets assigned to the given
	// user or to nobody; used for technician scoping.
	AssignedToOrUnassigned *string
	CreatedFrom            *time.Time
	CreatedTo              *time.Time
	Limit                  int64
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, companyID *string, statuses []domain.TicketStatus) (int64, error)
	Recent(ctx context.Context, companyID *string, limit int64) ([]domain.Ticket, error)
}

type ticketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(db *mongo.Database) TicketRepository {
	return &ticketRepository{collection: db.Collection(ticketCollection)}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	_, err := r.collection.InsertOne(ctx, encodeTicket(ticket))
	return err
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var doc bson.M
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return decodeTicket(doc)
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query := ticketQuery(filter)

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Ticket
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ticket, err := decodeTicket(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, cursor.Err()
}

// Update rewrites the mutable fields of one ticket document. The write is a
// single-document $set; concurrent transitions on the same id resolve
// last-write-wins at the store.
func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	set := bson.M{
		"asset_id":         encodeStringPtr(ticket.AssetID),
		"service_id":       encodeStringPtr(ticket.ServiceID),
		"title":            ticket.Title,
		"category":         encodeStringPtr(ticket.Category),
		"priority":         encodeStringPtr(ticket.Priority),
		"status":           string(ticket.Status),
		"requester":        encodeStringPtr(ticket.Requester),
		"assigned_to":      encodeStringPtr(ticket.AssignedTo),
		"description":      ticket.Description,
		"maintenance_log":  encodeStringPtr(ticket.MaintenanceLog),
		"final_resolution": encodeStringPtr(ticket.FinalResolution),
		"updated_at":       encodeTime(ticket.UpdatedAt),
		"resolved_at":      encodeTimePtr(ticket.ResolvedAt),
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": ticket.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ticketRepository) Count(ctx context.Context, companyID *string, statuses []domain.TicketStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, ticketQuery(TicketFilter{CompanyID: companyID, Statuses: statuses}))
}

func (r *ticketRepository) Recent(ctx context.Context, companyID *string, limit int64) ([]domain.Ticket, error) {
	query := ticketQuery(TicketFilter{CompanyID: companyID})
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Ticket
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ticket, err := decodeTicket(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, cursor.Err()
}

func ticketQuery(filter TicketFilter) bson.M {
	query := bson.M{}
	if filter.CompanyID != nil {
		query["company_id"] = *filter.CompanyID
	}
	if len(filter.Statuses) == 1 {
		query["status"] = string(filter.Statuses[0])
	} else if len(filter.Statuses) > 1 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query["status"] = bson.M{"$in": statuses}
	}
	if filter.AssignedToOrUnassigned != nil {
		query["$or"] = bson.A{
			bson.M{"assigned_to": *filter.AssignedToOrUnassigned},
			bson.M{"assigned_to": nil},
		}
	}
	// RFC 3339 strings compare lexicographically in timestamp order.
	createdRange := bson.M{}
	if filter.CreatedFrom != nil {
		createdRange["$gte"] = encodeTime(*filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		createdRange["$lte"] = encodeTime(*filter.CreatedTo)
	}
	if len(createdRange) > 0 {
		query["created_at"] = createdRange
	}
	return query
}

func encodeTicket(ticket *domain.Ticket) bson.M {
	return bson.M{
		"id":               ticket.ID,
		"company_id":       ticket.CompanyID,
		"asset_id":         encodeStringPtr(ticket.AssetID),
		"service_id":       encodeStringPtr(ticket.ServiceID),
		"title":            ticket.Title,
		"category":         encodeStringPtr(ticket.Category),
		"priority":         encodeStringPtr(ticket.Priority),
		"status":           string(ticket.Status),
		"requester":        encodeStringPtr(ticket.Requester),
		"assigned_to":      encodeStringPtr(ticket.AssignedTo),
		"created_by":       ticket.CreatedBy,
		"description":      ticket.Description,
		"maintenance_log":  encodeStringPtr(ticket.MaintenanceLog),
		"final_resolution": encodeStringPtr(ticket.FinalResolution),
		"created_at":       encodeTime(ticket.CreatedAt),
		"updated_at":       encodeTime(ticket.UpdatedAt),
		"resolved_at":      encodeTimePtr(ticket.ResolvedAt),
	}
}

func decodeTicket(doc bson.M) (*domain.Ticket, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	updatedAt, err := decodeTime(doc["updated_at"])
	if err != nil {
		return nil, err
	}
	resolvedAt, err := decodeTimePtr(doc["resolved_at"])
	if err != nil {
		return nil, err
	}

	return &domain.Ticket{
		ID:              docString(doc, "id"),
		CompanyID:       docString(doc, "company_id"),
		AssetID:         docStringPtr(doc, "asset_id"),
		ServiceID:       docStringPtr(doc, "service_id"),
		Title:           docString(doc, "title"),
		Category:        docStringPtr(doc, "category"),
		Priority:        docStringPtr(doc, "priority"),
		Status:          domain.TicketStatus(docString(doc, "status")),
		Requester:       docStringPtr(doc, "requester"),
		AssignedTo:      docStringPtr(doc, "assigned_to"),
		CreatedBy:       docString(doc, "created_by"),
		Description:     docString(doc, "description"),
		MaintenanceLog:  docStringPtr(doc, "maintenance_log"),
		FinalResolution: docStringPtr(doc, "final_resolution"),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		ResolvedAt:      resolvedAt,
	}, nil
}

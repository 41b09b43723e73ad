package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

const saleCollection = "sales"

type SaleRepository struct {
	coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{coll: db.Collection(saleCollection)}
}

type saleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Customer    string             `bson:"customer"`
	Product     string             `bson:"product"`
	Status      string             `bson:"status"`
	Date        string             `bson:"date,omitempty"`
	Total       float64            `bson:"total"`
	Notes       string             `bson:"notes,omitempty"`
	StorePickup bool               `bson:"store_pickup"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d *saleDoc) toDomain() domain.Sale {
	return domain.Sale{
		ID:          d.ID.Hex(),
		Customer:    d.Customer,
		Product:     d.Product,
		Status:      d.Status,
		Date:        d.Date,
		Total:       d.Total,
		Notes:       d.Notes,
		StorePickup: d.StorePickup,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	doc := saleDoc{
		Customer:    sale.Customer,
		Product:     sale.Product,
		Status:      sale.Status,
		Date:        sale.Date,
		Total:       sale.Total,
		Notes:       sale.Notes,
		StorePickup: sale.StorePickup,
		CreatedAt:   sale.CreatedAt.Unix(),
		UpdatedAt:   sale.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	created := *sale
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	sales := make([]domain.Sale, 0)
	for cur.Next(ctx) {
		var doc saleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		sales = append(sales, doc.toDomain())
	}
	return sales, cur.Err()
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	var doc saleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}

	sale := doc.toDomain()
	return &sale, nil
}

func (r *SaleRepository) Update(ctx context.Context, id string, sale *domain.Sale) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSaleNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"customer":     sale.Customer,
		"product":      sale.Product,
		"status":       sale.Status,
		"date":         sale.Date,
		"total":        sale.Total,
		"notes":        sale.Notes,
		"store_pickup": sale.StorePickup,
		"updated_at":   sale.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSaleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type productDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID      string             `bson:"category_id,omitempty"`
	Code            string             `bson:"code"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	UnitPrice       float64            `bson:"unit_price"`
	MinDeliveryMins int                `bson:"min_delivery_mins,omitempty"`
	MaxDeliveryMins int                `bson:"max_delivery_mins,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func (d *productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:              d.ID.Hex(),
		CategoryID:      d.CategoryID,
		Code:            d.Code,
		Title:           d.Title,
		Description:     d.Description,
		UnitPrice:       d.UnitPrice,
		MinDeliveryMins: d.MinDeliveryMins,
		MaxDeliveryMins: d.MaxDeliveryMins,
		CreatedAt:       unixToTime(d.CreatedAt),
		UpdatedAt:       unixToTime(d.UpdatedAt),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := productDoc{
		CategoryID:      product.CategoryID,
		Code:            product.Code,
		Title:           product.Title,
		Description:     product.Description,
		UnitPrice:       product.UnitPrice,
		MinDeliveryMins: product.MinDeliveryMins,
		MaxDeliveryMins: product.MaxDeliveryMins,
		CreatedAt:       product.CreatedAt.Unix(),
		UpdatedAt:       product.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := doc.toDomain()
	return &product, nil
}

// Filter applies only the criteria present in f; empty filter lists everything.
func (r *ProductRepository) Filter(ctx context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}
	if f.Code != "" {
		query["code"] = f.Code
	}
	if f.Title != "" {
		query["title"] = bson.M{"$regex": f.Title, "$options": "i"}
	}
	if f.CategoryID != "" {
		query["category_id"] = f.CategoryID
	}
	return r.find(ctx, query)
}

func (r *ProductRepository) find(ctx context.Context, query bson.M) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]domain.Product, 0)
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	return products, cur.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id string, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"category_id":       product.CategoryID,
		"code":              product.Code,
		"title":             product.Title,
		"description":       product.Description,
		"unit_price":        product.UnitPrice,
		"min_delivery_mins": product.MinDeliveryMins,
		"max_delivery_mins": product.MaxDeliveryMins,
		"updated_at":        product.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

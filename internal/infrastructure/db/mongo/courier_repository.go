package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

const courierCollection = "couriers"

type CourierRepository struct {
	coll *mongo.Collection
}

func NewCourierRepository(db *mongo.Database) *CourierRepository {
	return &CourierRepository{coll: db.Collection(courierCollection)}
}

type courierDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	CPF            string             `bson:"cpf"`
	RG             string             `bson:"rg,omitempty"`
	BirthDate      string             `bson:"birth_date,omitempty"`
	MobilePhone    string             `bson:"mobile_phone,omitempty"`
	HomePhone      string             `bson:"home_phone,omitempty"`
	DeliveriesMade int                `bson:"deliveries_made"`
	DeliveryFee    float64            `bson:"delivery_fee"`
	Address        addressBlock       `bson:"address"`
	Active         bool               `bson:"active"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (d *courierDoc) toDomain() domain.Courier {
	return domain.Courier{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		CPF:            d.CPF,
		RG:             d.RG,
		BirthDate:      d.BirthDate,
		MobilePhone:    d.MobilePhone,
		HomePhone:      d.HomePhone,
		DeliveriesMade: d.DeliveriesMade,
		DeliveryFee:    d.DeliveryFee,
		Address:        d.Address.toDomain(),
		Active:         d.Active,
		CreatedAt:      unixToTime(d.CreatedAt),
		UpdatedAt:      unixToTime(d.UpdatedAt),
	}
}

func (r *CourierRepository) Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error) {
	doc := courierDoc{
		Name:           courier.Name,
		CPF:            courier.CPF,
		RG:             courier.RG,
		BirthDate:      courier.BirthDate,
		MobilePhone:    courier.MobilePhone,
		HomePhone:      courier.HomePhone,
		DeliveriesMade: courier.DeliveriesMade,
		DeliveryFee:    courier.DeliveryFee,
		Address:        toAddressBlock(courier.Address),
		Active:         courier.Active,
		CreatedAt:      courier.CreatedAt.Unix(),
		UpdatedAt:      courier.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert courier: %w", err)
	}

	created := *courier
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CourierRepository) FindAll(ctx context.Context) ([]domain.Courier, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	defer cur.Close(ctx)

	couriers := make([]domain.Courier, 0)
	for cur.Next(ctx) {
		var doc courierDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode courier: %w", err)
		}
		couriers = append(couriers, doc.toDomain())
	}
	return couriers, cur.Err()
}

func (r *CourierRepository) FindByID(ctx context.Context, id string) (*domain.Courier, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourierNotFound
	}

	var doc courierDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCourierNotFound
		}
		return nil, fmt.Errorf("find courier: %w", err)
	}

	courier := doc.toDomain()
	return &courier, nil
}

func (r *CourierRepository) Update(ctx context.Context, id string, courier *domain.Courier) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourierNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":            courier.Name,
		"cpf":             courier.CPF,
		"rg":              courier.RG,
		"birth_date":      courier.BirthDate,
		"mobile_phone":    courier.MobilePhone,
		"home_phone":      courier.HomePhone,
		"deliveries_made": courier.DeliveriesMade,
		"delivery_fee":    courier.DeliveryFee,
		"address":         toAddressBlock(courier.Address),
		"active":          courier.Active,
		"updated_at":      courier.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update courier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourierNotFound
	}
	return nil
}

func (r *CourierRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourierNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourierNotFound
	}
	return nil
}

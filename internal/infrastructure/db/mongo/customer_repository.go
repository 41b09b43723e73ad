package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

const (
	customerCollection = "customers"
	addressCollection  = "customer_addresses"
)

// CustomerRepository persists customers and their delivery addresses.
// Addresses live in their own collection keyed by customer id.
type CustomerRepository struct {
	customers *mongo.Collection
	addresses *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		customers: db.Collection(customerCollection),
		addresses: db.Collection(addressCollection),
	}
}

type customerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	BirthDate   string             `bson:"birth_date,omitempty"`
	CPF         string             `bson:"cpf"`
	MobilePhone string             `bson:"mobile_phone,omitempty"`
	HomePhone   string             `bson:"home_phone,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type addressDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID string             `bson:"customer_id"`
	Street     string             `bson:"street"`
	Number     string             `bson:"number"`
	District   string             `bson:"district,omitempty"`
	ZipCode    string             `bson:"zip_code,omitempty"`
	City       string             `bson:"city,omitempty"`
	State      string             `bson:"state,omitempty"`
	Complement string             `bson:"complement,omitempty"`
}

func (d *customerDoc) toDomain() domain.Customer {
	return domain.Customer{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		BirthDate:   d.BirthDate,
		CPF:         d.CPF,
		MobilePhone: d.MobilePhone,
		HomePhone:   d.HomePhone,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (d *addressDoc) toDomain() domain.CustomerAddress {
	return domain.CustomerAddress{
		ID:         d.ID.Hex(),
		CustomerID: d.CustomerID,
		Street:     d.Street,
		Number:     d.Number,
		District:   d.District,
		ZipCode:    d.ZipCode,
		City:       d.City,
		State:      d.State,
		Complement: d.Complement,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	doc := customerDoc{
		Name:        customer.Name,
		BirthDate:   customer.BirthDate,
		CPF:         customer.CPF,
		MobilePhone: customer.MobilePhone,
		HomePhone:   customer.HomePhone,
		CreatedAt:   customer.CreatedAt.Unix(),
		UpdatedAt:   customer.UpdatedAt.Unix(),
	}

	res, err := r.customers.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *customer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	cur, err := r.customers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	customers := make([]domain.Customer, 0)
	for cur.Next(ctx) {
		var doc customerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, doc.toDomain())
	}
	return customers, cur.Err()
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	var doc customerDoc
	if err := r.customers.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	customer := doc.toDomain()
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, customer *domain.Customer) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	res, err := r.customers.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":         customer.Name,
		"birth_date":   customer.BirthDate,
		"cpf":          customer.CPF,
		"mobile_phone": customer.MobilePhone,
		"home_phone":   customer.HomePhone,
		"updated_at":   customer.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	res, err := r.customers.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}

	// Cascade: delivery addresses are worthless without their owner.
	_, err = r.addresses.DeleteMany(ctx, bson.M{"customer_id": id})
	if err != nil {
		return fmt.Errorf("delete customer addresses: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Filter(ctx context.Context, name, cpf string) ([]domain.Customer, error) {
	query := bson.M{}
	if name != "" {
		query["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if cpf != "" {
		query["cpf"] = bson.M{"$regex": cpf}
	}

	cur, err := r.customers.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("filter customers: %w", err)
	}
	defer cur.Close(ctx)

	customers := make([]domain.Customer, 0)
	for cur.Next(ctx) {
		var doc customerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, doc.toDomain())
	}
	return customers, cur.Err()
}

func (r *CustomerRepository) AddAddress(ctx context.Context, customerID string, addr *domain.CustomerAddress) (*domain.CustomerAddress, error) {
	doc := addressDoc{
		CustomerID: customerID,
		Street:     addr.Street,
		Number:     addr.Number,
		District:   addr.District,
		ZipCode:    addr.ZipCode,
		City:       addr.City,
		State:      addr.State,
		Complement: addr.Complement,
	}

	res, err := r.addresses.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *addr
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.CustomerID = customerID
	return &created, nil
}

func (r *CustomerRepository) FindAddresses(ctx context.Context, customerID string) ([]domain.CustomerAddress, error) {
	cur, err := r.addresses.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	addrs := make([]domain.CustomerAddress, 0)
	for cur.Next(ctx) {
		var doc addressDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		addrs = append(addrs, doc.toDomain())
	}
	return addrs, cur.Err()
}

func (r *CustomerRepository) UpdateAddress(ctx context.Context, addressID string, addr *domain.CustomerAddress) error {
	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	res, err := r.addresses.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"street":     addr.Street,
		"number":     addr.Number,
		"district":   addr.District,
		"zip_code":   addr.ZipCode,
		"city":       addr.City,
		"state":      addr.State,
		"complement": addr.Complement,
	}})
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *CustomerRepository) DeleteAddress(ctx context.Context, addressID string) error {
	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	res, err := r.addresses.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

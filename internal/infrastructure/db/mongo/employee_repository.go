package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

const employeeCollection = "employees"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeeCollection)}
}

type employeeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Name        string             `bson:"name"`
	CPF         string             `bson:"cpf"`
	RG          string             `bson:"rg,omitempty"`
	BirthDate   string             `bson:"birth_date,omitempty"`
	MobilePhone string             `bson:"mobile_phone,omitempty"`
	HomePhone   string             `bson:"home_phone,omitempty"`
	Salary      float64            `bson:"salary,omitempty"`
	Address     addressBlock       `bson:"address"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

// addressBlock is the embedded address shared by employees and couriers.
type addressBlock struct {
	Street     string `bson:"street,omitempty"`
	Number     string `bson:"number,omitempty"`
	District   string `bson:"district,omitempty"`
	City       string `bson:"city,omitempty"`
	ZipCode    string `bson:"zip_code,omitempty"`
	State      string `bson:"state,omitempty"`
	Complement string `bson:"complement,omitempty"`
}

func toAddressBlock(a domain.Address) addressBlock {
	return addressBlock{
		Street:     a.Street,
		Number:     a.Number,
		District:   a.District,
		City:       a.City,
		ZipCode:    a.ZipCode,
		State:      a.State,
		Complement: a.Complement,
	}
}

func (b addressBlock) toDomain() domain.Address {
	return domain.Address{
		Street:     b.Street,
		Number:     b.Number,
		District:   b.District,
		City:       b.City,
		ZipCode:    b.ZipCode,
		State:      b.State,
		Complement: b.Complement,
	}
}

func (d *employeeDoc) toDomain() domain.Employee {
	return domain.Employee{
		ID:          d.ID.Hex(),
		Type:        domain.EmployeeType(d.Type),
		Name:        d.Name,
		CPF:         d.CPF,
		RG:          d.RG,
		BirthDate:   d.BirthDate,
		MobilePhone: d.MobilePhone,
		HomePhone:   d.HomePhone,
		Salary:      d.Salary,
		Address:     d.Address.toDomain(),
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	doc := employeeDoc{
		Type:        string(employee.Type),
		Name:        employee.Name,
		CPF:         employee.CPF,
		RG:          employee.RG,
		BirthDate:   employee.BirthDate,
		MobilePhone: employee.MobilePhone,
		HomePhone:   employee.HomePhone,
		Salary:      employee.Salary,
		Address:     toAddressBlock(employee.Address),
		CreatedAt:   employee.CreatedAt.Unix(),
		UpdatedAt:   employee.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	employees := make([]domain.Employee, 0)
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, doc.toDomain())
	}
	return employees, cur.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	var doc employeeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	employee := doc.toDomain()
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, employee *domain.Employee) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"type":         string(employee.Type),
		"name":         employee.Name,
		"cpf":          employee.CPF,
		"rg":           employee.RG,
		"birth_date":   employee.BirthDate,
		"mobile_phone": employee.MobilePhone,
		"home_phone":   employee.HomePhone,
		"salary":       employee.Salary,
		"address":      toAddressBlock(employee.Address),
		"updated_at":   employee.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

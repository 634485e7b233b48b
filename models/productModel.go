package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Catalog categories.
var productCategories = []string{"Women", "Men", "Kids", "Baby"}

const defaultCategory = "Women"

func ValidCategory(category string) bool {
	for _, c := range productCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ProductCategories() []string {
	return productCategories
}

// Product is the single mutable source of truth for inventory levels. Stock
// and SoldCount are additionally adjusted as a side effect of order creation.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	SoldCount   int                `bson:"soldCount" json:"soldCount"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Colors      []string           `bson:"colors" json:"colors"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductInput carries the writable product fields of a create or update
// request. Pointer fields distinguish "not submitted" from zero values.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Description *string  `json:"description"`
}

type ProductModel struct {
	Collection *mongo.Collection
}

// Insert validates a product submission and persists it with the catalog
// defaults filled in.
func (m *ProductModel) Insert(ctx context.Context, input ProductInput) (*Product, error) {
	if input.Name == "" || input.Price == nil || input.Stock == nil {
		return nil, NewValidationError("please provide name, price, and stock")
	}
	if *input.Price < 0 || *input.Stock < 0 {
		return nil, NewValidationError("price and stock must be non-negative")
	}
	if input.Category != "" && !ValidCategory(input.Category) {
		return nil, NewValidationError("invalid category. Must be one of: Women, Men, Kids, Baby")
	}

	now := time.Now().UTC()
	product := Product{
		Name:      input.Name,
		Price:     *input.Price,
		Stock:     *input.Stock,
		Category:  defaultCategory,
		Colors:    []string{},
		Sizes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Colors != nil {
		product.Colors = input.Colors
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	result, err := m.Collection.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return &product, nil
}

// GetAll returns the whole catalog, newest first.
func (m *ProductModel) GetAll(ctx context.Context) ([]Product, error) {
	return m.find(ctx, bson.M{})
}

// GetByCategory returns the catalog entries of one category, newest first.
func (m *ProductModel) GetByCategory(ctx context.Context, category string) ([]Product, error) {
	if !ValidCategory(category) {
		return nil, NewValidationError("invalid category. Must be one of: Women, Men, Kids, Baby")
	}
	return m.find(ctx, bson.M{"category": category})
}

func (m *ProductModel) find(ctx context.Context, filter bson.M) ([]Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *ProductModel) Get(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid product ID")
	}

	var product Product
	err = m.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies the submitted fields to an existing product and returns the
// updated document.
func (m *ProductModel) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid product ID")
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, NewValidationError("price must be non-negative")
		}
		set["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, NewValidationError("stock must be non-negative")
		}
		set["stock"] = *input.Stock
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Category != "" {
		if !ValidCategory(input.Category) {
			return nil, NewValidationError("invalid category")
		}
		set["category"] = input.Category
	}
	if input.Colors != nil {
		set["colors"] = input.Colors
	}
	if input.Sizes != nil {
		set["sizes"] = input.Sizes
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated Product
	err = m.Collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *ProductModel) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewValidationError("invalid product ID")
	}

	result, err := m.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ApplyOrderItems applies a created order's stock deltas: for every item
// backed by a stored product, decrement stock and increment soldCount by the
// item quantity. Each adjustment is a single atomic write; there is no
// cross-item transaction. A failed item does not stop the loop, and the
// joined per-item errors are returned for the caller to log.
func (m *ProductModel) ApplyOrderItems(ctx context.Context, items []OrderItem) error {
	var errs []error
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		if err := m.adjustInventory(ctx, item.ProductID, item.Quantity); err != nil {
			errs = append(errs, fmt.Errorf("product %s: %w", item.ProductID, err))
		}
	}
	return errors.Join(errs...)
}

// adjustInventory performs one conditional atomic decrement. The filter
// requires stock >= quantity, so stock can never go negative; a zero-matched
// update is classified as out-of-stock or product-missing.
func (m *ProductModel) adjustInventory(ctx context.Context, id string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	filter := bson.M{"_id": oid, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity, "soldCount": quantity},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := m.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		count, err := m.Collection.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

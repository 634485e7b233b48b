package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Order statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment methods accepted at checkout. The method is recorded as submitted;
// no gateway transaction is performed.
const (
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cod"
	PaymentGCash          = "gcash"
	PaymentPayMaya        = "paymaya"
)

const defaultShippingFee = 10

// statusTransitions is the enforced order lifecycle: a linear
// pending -> processing -> shipped -> delivered path, with cancellation
// possible until the order is delivered.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func ValidOrderStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCard, PaymentCashOnDelivery, PaymentGCash, PaymentPayMaya:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BuyerSnapshot is the purchasing user's details copied into the order at
// checkout time. Later profile edits never alter historical orders.
type BuyerSnapshot struct {
	Username  string `bson:"username" json:"username"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	FirstName string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string `bson:"lastName,omitempty" json:"lastName,omitempty"`
}

// OrderItem is one product-variant-quantity line within an order. ProductID
// is empty for catalog entries not backed by a stored product; such items
// carry no inventory effect.
type OrderItem struct {
	Name          string  `bson:"name" json:"name"`
	Price         float64 `bson:"price" json:"price"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	Image         string  `bson:"image,omitempty" json:"image,omitempty"`
	Category      string  `bson:"category,omitempty" json:"category,omitempty"`
	SelectedColor string  `bson:"selectedColor,omitempty" json:"selectedColor,omitempty"`
	SelectedSize  string  `bson:"selectedSize,omitempty" json:"selectedSize,omitempty"`
	ProductID     string  `bson:"productId,omitempty" json:"productId,omitempty"`
}

// ShippingAddress is a snapshot of the delivery address taken at checkout.
type ShippingAddress struct {
	FullName    string `bson:"fullName" json:"fullName"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`
	Region      string `bson:"region" json:"region"`
	PostalCode  string `bson:"postalCode" json:"postalCode"`
	StreetName  string `bson:"streetName" json:"streetName"`
	Label       string `bson:"label,omitempty" json:"label,omitempty"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User             BuyerSnapshot      `bson:"user" json:"user"`
	Items            []OrderItem        `bson:"items" json:"items"`
	ShippingAddress  ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod    string             `bson:"paymentMethod" json:"paymentMethod"`
	Subtotal         float64            `bson:"subtotal" json:"subtotal"`
	Shipping         float64            `bson:"shipping" json:"shipping"`
	Tax              float64            `bson:"tax" json:"tax"`
	Total            float64            `bson:"total" json:"total"`
	Status           string             `bson:"status" json:"status"`
	InventoryApplied bool               `bson:"inventoryApplied" json:"inventoryApplied"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidateNewOrder checks an order submission before anything is persisted.
// Totals are taken as submitted; only structure is validated here.
func ValidateNewOrder(order *Order) error {
	if order.User.Username == "" || order.Items == nil || order.PaymentMethod == "" || order.Total == 0 {
		return NewValidationError("missing required order fields")
	}
	if len(order.Items) == 0 {
		return NewValidationError("order must contain at least one item")
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return NewValidationError("order items must have a positive quantity")
		}
	}
	addr := order.ShippingAddress
	if addr.FullName == "" || addr.PhoneNumber == "" || addr.StreetName == "" || addr.Region == "" || addr.PostalCode == "" {
		return NewValidationError("missing required shipping address fields")
	}
	if !ValidPaymentMethod(order.PaymentMethod) {
		return NewValidationError("invalid payment method")
	}
	return nil
}

type OrderModel struct {
	Collection *mongo.Collection
}

// Insert persists a new order in the pending status, applying the checkout
// defaults for shipping and tax.
func (m *OrderModel) Insert(ctx context.Context, order *Order) error {
	order.ID = primitive.NilObjectID
	order.Status = StatusPending
	if order.Shipping == 0 {
		order.Shipping = defaultShippingFee
	}
	order.InventoryApplied = false
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := m.Collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

// GetAll returns every order, newest first.
func (m *OrderModel) GetAll(ctx context.Context) ([]Order, error) {
	return m.find(ctx, bson.M{})
}

// GetByUsername returns one buyer's orders, newest first.
func (m *OrderModel) GetByUsername(ctx context.Context, username string) ([]Order, error) {
	return m.find(ctx, bson.M{"user.username": username})
}

func (m *OrderModel) find(ctx context.Context, filter bson.M) ([]Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *OrderModel) Get(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid order ID")
	}

	var order Order
	err = m.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order to a new status, enforcing the lifecycle
// transition table, and returns the updated order.
func (m *OrderModel) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	if !ValidOrderStatus(status) {
		return nil, NewValidationError("invalid status")
	}

	current, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, status) {
		return nil, NewValidationError(fmt.Sprintf("invalid status transition from %s to %s", current.Status, status))
	}

	// Filter on the status we just read so a concurrent transition cannot be
	// overwritten.
	filter := bson.M{"_id": current.ID, "status": current.Status}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Order
	err = m.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkInventoryApplied records that every line item's stock adjustment
// succeeded for this order.
func (m *OrderModel) MarkInventoryApplied(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"inventoryApplied": true, "updatedAt": time.Now().UTC()}}
	_, err := m.Collection.UpdateByID(ctx, id, update)
	return err
}

// Delete removes an order. Inventory adjustments already applied for the
// order are not reversed.
func (m *OrderModel) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewValidationError("invalid order ID")
	}

	result, err := m.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

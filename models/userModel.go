package models

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidGender(gender string) bool {
	switch gender {
	case "Male", "Female", "Other":
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterInput is a user registration submission.
type RegisterInput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileImage"`
}

// ValidateRegistration checks a registration submission before the duplicate
// lookup and insert.
func ValidateRegistration(input RegisterInput) error {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return NewValidationError("please fill in all required fields (username, email, password, firstName, lastName)")
	}
	if len(strings.TrimSpace(input.Username)) < 3 {
		return NewValidationError("username must be at least 3 characters long")
	}
	if len(input.Password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}
	if !ValidEmail(input.Email) {
		return NewValidationError("please enter a valid email address")
	}
	if input.Gender != "" && !ValidGender(input.Gender) {
		return NewValidationError("gender must be one of: Male, Female, Other")
	}
	return nil
}

type UserModel struct {
	Collection *mongo.Collection
}

func (m *UserModel) Insert(ctx context.Context, user *User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = RoleUser
	}

	result, err := m.Collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Exists reports whether a user with the given username or email is already
// registered.
func (m *UserModel) Exists(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": strings.TrimSpace(username)},
		bson.M{"email": strings.ToLower(strings.TrimSpace(email))},
	}}
	count, err := m.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByIdentifier looks a user up by username or email.
func (m *UserModel) GetByIdentifier(ctx context.Context, identifier string) (*User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": strings.ToLower(identifier)},
	}}

	var user User
	err := m.Collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) GetAll(ctx context.Context) ([]User, error) {
	cur, err := m.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole changes a user's role and returns the updated user.
func (m *UserModel) UpdateRole(ctx context.Context, id, role string) (*User, error) {
	if !ValidRole(role) {
		return nil, NewValidationError("invalid role")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid user ID")
	}

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}}
	result, err := m.Collection.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	var user User
	if err := m.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

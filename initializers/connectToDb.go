package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database

	Orders   *mongo.Collection
	Products *mongo.Collection
	Users    *mongo.Collection
)

func ConnectToDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI environment variable not found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal(err)
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "stylehaven"
	}

	Client = client
	DB = client.Database(dbName)
	Orders = DB.Collection("orders")
	Products = DB.Collection("products")
	Users = DB.Collection("users")

	log.Println("Connected to database!")
}

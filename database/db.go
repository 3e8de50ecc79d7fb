package database

import (
	"context"
	"log"
	"time"

	"github.com/emersonmaddock/sophros/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient backs every repository. Set once by InitDB at startup.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping.
// Profile data is not optional, so a failed connect is fatal.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("mongo: connect failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo: ping failed: %v", err)
	}

	MongoClient = client
	log.Printf("mongo: connected to %s", config.AppConfig.DatabaseName)
}

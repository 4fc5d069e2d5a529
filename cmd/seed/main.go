package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"mockinterview/internal/model"
)

// Seeds a demo account for local development.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "mockinterview"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	users := client.Database(dbName).Collection("users")

	email := "demo@example.com"
	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatalf("Failed to query users: %v", err)
	}
	if count > 0 {
		fmt.Printf("Demo user %s already exists\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := model.User{
		Name:            "Demo Candidate",
		Email:           email,
		PasswordHash:    string(hash),
		Profession:      "Software Engineer",
		ExperienceLevel: "mid",
		CreatedAt:       time.Now(),
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		log.Fatalf("Failed to insert demo user: %v", err)
	}

	fmt.Printf("Successfully created demo user %s (password: demo1234)\n", email)
}

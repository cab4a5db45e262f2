package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terracore-io/reserve-ledger/internal/config"
)

type index struct {
	Indexes map[string]int
}

var collections = map[string][]index{
	MinterStateCollection:   {{Indexes: map[string]int{}}},
	ProjectCollection:       {{Indexes: map[string]int{"state": 1}}},
	ParticipationCollection: {{Indexes: map[string]int{"project_id": 1}}},
}

// Setup creates the collections and indexes and seeds the single minter
// state document if it does not exist yet. It is safe to run repeatedly.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	// Create a context with timeout for the setup process
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	database := client.Database(cfg.DbName)

	existing, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for name, idxs := range collections {
		if !existingSet[name] {
			if err := database.CreateCollection(ctx, name); err != nil {
				return err
			}
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	if err := seedMinterState(ctx, database); err != nil {
		return err
	}

	return client.Disconnect(ctx)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	if len(idx.Indexes) == 0 {
		return nil
	}

	keys := bson.D{}
	for field, order := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: order})
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
	return err
}

// seedMinterState inserts the singleton document with a zero snapshot, zero
// fee and an undiscounted commercial factor. Setting the production fee and
// discount is an explicit administrator action.
func seedMinterState(ctx context.Context, database *mongo.Database) error {
	filter := bson.M{"_id": MinterStateID}
	update := bson.M{
		"$setOnInsert": &MinterStateDocument{
			ID:                  MinterStateID,
			FeeBasisPoints:      0,
			DiscountBasisPoints: 10000,
			MintedTotal:         0,
			FeesCollected:       0,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := database.Collection(MinterStateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

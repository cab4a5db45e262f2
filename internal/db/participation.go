package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terracore-io/reserve-ledger/internal/db/model"
)

func (db *Database) GetParticipation(ctx context.Context, projectID, account string) (*model.ParticipationDocument, error) {
	filter := bson.M{"_id": model.ParticipationID(projectID, account)}

	res := db.collection(model.ParticipationCollection).FindOne(ctx, filter)

	var participation model.ParticipationDocument
	if err := res.Decode(&participation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.ParticipationID(projectID, account),
				Message: "participation not found",
			}
		}
		return nil, err
	}

	return &participation, nil
}

func (db *Database) GetParticipationsByProject(ctx context.Context, projectID string) ([]*model.ParticipationDocument, error) {
	filter := bson.M{"project_id": projectID}

	cursor, err := db.collection(model.ParticipationCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participations []*model.ParticipationDocument
	if err := cursor.All(ctx, &participations); err != nil {
		return nil, err
	}

	return participations, nil
}

// AddParticipationStake increments the staked amount and the 1:1 claim
// balance, creating the participation record on first stake
func (db *Database) AddParticipationStake(ctx context.Context, projectID, account string, amount uint64) error {
	filter := bson.M{"_id": model.ParticipationID(projectID, account)}
	update := bson.M{
		"$inc": bson.M{
			"staked":        amount,
			"claims_issued": amount,
		},
		"$setOnInsert": bson.M{
			"project_id": projectID,
			"account":    account,
			"created_at": time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.ParticipationCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// SubtractParticipationStake decrements stake and claim balance together.
// Requiring the claim balance to cover the amount blocks principal
// withdrawal from a converted position, whose claims were burned.
func (db *Database) SubtractParticipationStake(ctx context.Context, projectID, account string, amount uint64) error {
	filter := bson.M{
		"_id":           model.ParticipationID(projectID, account),
		"staked":        bson.M{"$gte": amount},
		"claims_issued": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{
			"staked":        -int64(amount),
			"claims_issued": -int64(amount),
		},
	}

	res := db.collection(model.ParticipationCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     model.ParticipationID(projectID, account),
				Message: "participation not found or staked amount insufficient",
			}
		}
		return res.Err()
	}

	return nil
}

// AddParticipationProfit records a profit claim. Half of every claimed
// amount counts toward debt repayment; debtRepaid is derived bookkeeping,
// not a separate transfer.
func (db *Database) AddParticipationProfit(ctx context.Context, projectID, account string, claimed, debtRepaid uint64) error {
	filter := bson.M{"_id": model.ParticipationID(projectID, account)}
	update := bson.M{
		"$inc": bson.M{
			"profit_claimed": claimed,
			"debt_repaid":    debtRepaid,
		},
	}

	res := db.collection(model.ParticipationCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     model.ParticipationID(projectID, account),
				Message: "participation not found",
			}
		}
		return res.Err()
	}

	return nil
}

// MarkParticipationConverted sets the permanent conversion flag and zeroes
// the claim balance. The filter rejects a second conversion attempt.
func (db *Database) MarkParticipationConverted(ctx context.Context, projectID, account string) error {
	filter := bson.M{
		"_id":           model.ParticipationID(projectID, account),
		"converted":     false,
		"claims_issued": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$set": bson.M{
			"converted":     true,
			"claims_issued": 0,
		},
	}

	res := db.collection(model.ParticipationCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     model.ParticipationID(projectID, account),
				Message: "participation not found, already converted or no claims to convert",
			}
		}
		return res.Err()
	}

	return nil
}

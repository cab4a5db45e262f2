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

func (db *Database) GetMinterState(ctx context.Context) (*model.MinterStateDocument, error) {
	filter := bson.M{"_id": model.MinterStateID}

	res := db.collection(model.MinterStateCollection).FindOne(ctx, filter)

	var state model.MinterStateDocument
	if err := res.Decode(&state); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.MinterStateID,
				Message: "minter state not initialized",
			}
		}
		return nil, err
	}

	return &state, nil
}

// UpdateReserveSnapshot replaces the snapshot wholesale. No history is kept.
func (db *Database) UpdateReserveSnapshot(ctx context.Context, snapshot *model.ReserveSnapshot) error {
	snapshot.UpdatedAt = time.Now().Unix()

	filter := bson.M{"_id": model.MinterStateID}
	update := bson.M{"$set": bson.M{"snapshot": snapshot}}

	return db.updateMinterState(ctx, filter, update)
}

func (db *Database) SetFeeBasisPoints(ctx context.Context, feeBps uint64) error {
	filter := bson.M{"_id": model.MinterStateID}
	update := bson.M{"$set": bson.M{"fee_basis_points": feeBps}}

	return db.updateMinterState(ctx, filter, update)
}

func (db *Database) SetDiscountBasisPoints(ctx context.Context, discountBps uint64) error {
	filter := bson.M{"_id": model.MinterStateID}
	update := bson.M{"$set": bson.M{"discount_basis_points": discountBps}}

	return db.updateMinterState(ctx, filter, update)
}

// IncrementMintedTotal commits an issuance. The filter requires the prior
// cumulative minted amount to be at most maxPriorMinted (capacity minus the
// new issuance, computed by the caller), so a concurrent snapshot shrink or
// competing mint between read and commit cannot push the total past
// capacity. A non-qualifying document surfaces as NotFoundError.
func (db *Database) IncrementMintedTotal(ctx context.Context, issued, fee, maxPriorMinted uint64) error {
	filter := bson.M{
		"_id":          model.MinterStateID,
		"minted_total": bson.M{"$lte": maxPriorMinted},
	}
	update := bson.M{
		"$inc": bson.M{
			"minted_total":   issued,
			"fees_collected": fee,
		},
	}

	return db.updateMinterState(ctx, filter, update)
}

// ResetFeesCollected zeroes the accumulated fee balance and returns the
// amount that was held before the reset.
func (db *Database) ResetFeesCollected(ctx context.Context) (uint64, error) {
	filter := bson.M{"_id": model.MinterStateID}
	update := bson.M{"$set": bson.M{"fees_collected": 0}}

	res := db.collection(model.MinterStateCollection).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.Before))
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return 0, &NotFoundError{
				Key:     model.MinterStateID,
				Message: "minter state not initialized",
			}
		}
		return 0, res.Err()
	}

	var state model.MinterStateDocument
	if err := res.Decode(&state); err != nil {
		return 0, err
	}

	return state.FeesCollected, nil
}

func (db *Database) updateMinterState(ctx context.Context, filter, update bson.M) error {
	res := db.collection(model.MinterStateCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     model.MinterStateID,
				Message: "minter state not found or not qualified for update",
			}
		}
		return res.Err()
	}

	return nil
}

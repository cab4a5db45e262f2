package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/terracore-io/reserve-ledger/internal/db/model"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

// UpdateOption adds fields to the $set document of a state transition
type UpdateOption func(set bson.M)

func WithAcceptingStakes(accepting bool) UpdateOption {
	return func(set bson.M) {
		set["accepting_stakes"] = accepting
	}
}

func WithFundedAt(ts int64) UpdateOption {
	return func(set bson.M) {
		set["funded_at"] = ts
	}
}

func (db *Database) SaveNewProject(ctx context.Context, projectDoc *model.ProjectDocument) error {
	_, err := db.collection(model.ProjectCollection).InsertOne(ctx, projectDoc)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     projectDoc.ID,
			Message: "project already exists",
		}
	}
	return err
}

func (db *Database) GetProject(ctx context.Context, projectID string) (*model.ProjectDocument, error) {
	filter := bson.M{"_id": projectID}

	res := db.collection(model.ProjectCollection).FindOne(ctx, filter)

	var project model.ProjectDocument
	if err := res.Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     projectID,
				Message: "project not found",
			}
		}
		return nil, err
	}

	return &project, nil
}

func (db *Database) GetProjectsByStates(ctx context.Context, states []types.ProjectState) ([]*model.ProjectDocument, error) {
	filter := bson.M{}
	if len(states) > 0 {
		stateStrs := make([]string, len(states))
		for i, state := range states {
			stateStrs[i] = state.String()
		}
		filter["state"] = bson.M{"$in": stateStrs}
	}

	cursor, err := db.collection(model.ProjectCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*model.ProjectDocument
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// UpdateProjectState moves a project into newState only if its current
// state is one of qualifiedPreviousStates
func (db *Database) UpdateProjectState(
	ctx context.Context,
	projectID string,
	qualifiedPreviousStates []types.ProjectState,
	newState types.ProjectState,
	opts ...UpdateOption,
) error {
	qualifiedStateStrs := make([]string, len(qualifiedPreviousStates))
	for i, state := range qualifiedPreviousStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":   projectID,
		"state": bson.M{"$in": qualifiedStateStrs},
	}

	updateFields := bson.M{
		"state": newState.String(),
	}
	for _, opt := range opts {
		opt(updateFields)
	}

	update := bson.M{"$set": updateFields}

	res := db.collection(model.ProjectCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     projectID,
				Message: "project not found or current state is not qualified states",
			}
		}
		return res.Err()
	}

	return nil
}

// AddProjectStake increments the staked total of a project that is still
// accepting stakes and returns the document after the increment, so the
// caller can evaluate the funding-target transition. The triggering stake
// is accepted in full, overshoot included.
func (db *Database) AddProjectStake(ctx context.Context, projectID string, amount uint64) (*model.ProjectDocument, error) {
	filter := bson.M{
		"_id":              projectID,
		"state":            types.StateActive.String(),
		"accepting_stakes": true,
	}
	update := bson.M{"$inc": bson.M{"total_staked": amount}}

	res := db.collection(model.ProjectCollection).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After))
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     projectID,
				Message: "project not found or not accepting stakes",
			}
		}
		return nil, res.Err()
	}

	var project model.ProjectDocument
	if err := res.Decode(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

// SubtractProjectStake decrements the staked total, requiring the current
// total to cover the amount and the state to qualify for unstaking
func (db *Database) SubtractProjectStake(ctx context.Context, projectID string, amount uint64) error {
	qualifiedStates := types.QualifiedStatesForUnstake()
	qualifiedStateStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":          projectID,
		"state":        bson.M{"$in": qualifiedStateStrs},
		"total_staked": bson.M{"$gte": amount},
	}
	update := bson.M{"$inc": bson.M{"total_staked": -int64(amount)}}

	res := db.collection(model.ProjectCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     projectID,
				Message: "project not found, state not qualified or staked total insufficient",
			}
		}
		return res.Err()
	}

	return nil
}

// AddProjectProfit increments the cumulative profit of a project in a
// profit-bearing state
func (db *Database) AddProjectProfit(ctx context.Context, projectID string, amount uint64) error {
	qualifiedStates := types.QualifiedStatesForProfitDeposit()
	qualifiedStateStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":   projectID,
		"state": bson.M{"$in": qualifiedStateStrs},
	}
	update := bson.M{"$inc": bson.M{"total_profit": amount}}

	res := db.collection(model.ProjectCollection).FindOneAndUpdate(ctx, filter, update)
	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     projectID,
				Message: "project not found or state does not accept profit deposits",
			}
		}
		return res.Err()
	}

	return nil
}

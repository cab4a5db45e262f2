package model

import (
	"github.com/terracore-io/reserve-ledger/internal/types"
)

const ProjectCollection = "projects"

type ProjectDocument struct {
	ID               string             `bson:"_id"`
	Name             string             `bson:"name"`
	DocumentationURI string             `bson:"documentation_uri"`
	State            types.ProjectState `bson:"state"`
	FundingTarget    uint64             `bson:"funding_target"`
	TotalStaked      uint64             `bson:"total_staked"`
	TotalProfit      uint64             `bson:"total_profit"`
	Operator         string             `bson:"operator"`
	FundingAddress   string             `bson:"funding_address"`
	AcceptingStakes  bool               `bson:"accepting_stakes"`
	CreatedAt        int64              `bson:"created_at"`
	FundedAt         int64              `bson:"funded_at,omitempty"`
}

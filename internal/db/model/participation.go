package model

import "fmt"

const ParticipationCollection = "participations"

// ParticipationID builds the composite primary key. Lookups are always by
// the exact (project, account) pair.
func ParticipationID(projectID, account string) string {
	return fmt.Sprintf("%s:%s", projectID, account)
}

// ParticipationDocument is never deleted, even after a full unstake:
// debt-repayment progress must survive unstake/restake cycles so conversion
// eligibility cannot be reset.
type ParticipationDocument struct {
	ID            string `bson:"_id"`
	ProjectID     string `bson:"project_id"`
	Account       string `bson:"account"`
	Staked        uint64 `bson:"staked"`
	ClaimsIssued  uint64 `bson:"claims_issued"`
	ProfitClaimed uint64 `bson:"profit_claimed"`
	DebtRepaid    uint64 `bson:"debt_repaid"`
	Converted     bool   `bson:"converted"`
	CreatedAt     int64  `bson:"created_at"`
}

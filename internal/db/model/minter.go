package model

const MinterStateCollection = "minter_state"

// MinterStateID is the _id of the single minter state document
const MinterStateID = "minter"

// ReserveSnapshot holds the five reserve category estimates, lowest to
// highest geological confidence, in commodity mass base units. Each update
// replaces the document wholesale; no history is retained.
type ReserveSnapshot struct {
	Inferred  uint64 `bson:"inferred"`
	Indicated uint64 `bson:"indicated"`
	Measured  uint64 `bson:"measured"`
	Probable  uint64 `bson:"probable"`
	Proven    uint64 `bson:"proven"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Quantities returns the category estimates in weight order
func (s *ReserveSnapshot) Quantities() [5]uint64 {
	return [5]uint64{s.Inferred, s.Indicated, s.Measured, s.Probable, s.Proven}
}

type MinterStateDocument struct {
	ID                  string          `bson:"_id"`
	FeeBasisPoints      uint64          `bson:"fee_basis_points"`
	DiscountBasisPoints uint64          `bson:"discount_basis_points"`
	MintedTotal         uint64          `bson:"minted_total"`
	FeesCollected       uint64          `bson:"fees_collected"`
	Snapshot            ReserveSnapshot `bson:"snapshot"`
}

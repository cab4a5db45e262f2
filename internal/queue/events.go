package queue

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	EventReserveMinted          EventType = "reserve.minted"
	EventReserveSnapshotUpdated EventType = "reserve.snapshot_updated"
	EventFeeUpdated             EventType = "reserve.fee_updated"
	EventDiscountUpdated        EventType = "reserve.discount_updated"
	EventFeesWithdrawn          EventType = "reserve.fees_withdrawn"
	EventOracleUpdated          EventType = "reserve.oracle_updated"

	EventProjectCreated      EventType = "project.created"
	EventProjectActivated    EventType = "project.activated"
	EventProjectStateChanged EventType = "project.state_changed"
	EventStaked              EventType = "project.staked"
	EventUnstaked            EventType = "project.unstaked"
	EventProfitDeposited     EventType = "project.profit_deposited"
	EventProfitClaimed       EventType = "project.profit_claimed"
	EventConverted           EventType = "project.converted"
)

// Event is the structured notification emitted after every state-changing
// operation. It is the only durable audit trail the core provides.
type Event struct {
	Type      EventType         `json:"type"`
	Actor     string            `json:"actor"`
	ProjectID string            `json:"project_id,omitempty"`
	State     string            `json:"state,omitempty"`
	Amounts   map[string]uint64 `json:"amounts,omitempty"`
	At        int64             `json:"at"`
}

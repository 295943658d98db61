package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryEvent classifies what kind of mutation a history entry records.
type HistoryEvent string

const (
	// HistoryEventAllocation records a quantity change caused by an allocation.
	HistoryEventAllocation HistoryEvent = "allocation"
	// HistoryEventDelete records a supply unit being withdrawn by its owner.
	HistoryEventDelete HistoryEvent = "delete"
	// HistoryEventManualAdjust records a direct inventory correction by an operator or owner.
	HistoryEventManualAdjust HistoryEvent = "manual_adjust"
)

// HistorySubject identifies which kind of record a history entry describes.
type HistorySubject string

const (
	HistorySubjectSupplyUnit    HistorySubject = "supply_unit"
	HistorySubjectDemandRequest HistorySubject = "demand_request"
)

// HistoryEntry is one immutable audit record. Entries are append-only: they are
// written in the same logical operation as the mutation they describe and are
// never updated or deleted afterwards.
type HistoryEntry struct {
	ID                uuid.UUID       `json:"id"`
	SubjectType       HistorySubject  `json:"subject_type"`
	SubjectID         uuid.UUID       `json:"subject_id"` // The supply unit or demand request that was mutated.
	Event             HistoryEvent    `json:"event"`
	QuantityDelta     decimal.Decimal `json:"quantity_delta"`     // Signed change, negative for draws.
	ResultingQuantity decimal.Decimal `json:"resulting_quantity"` // Quantity after the mutation.
	ResultingStatus   string          `json:"resulting_status"`   // Status after the mutation.
	Remark            string          `json:"remark,omitempty"`
	ActorID           uuid.UUID       `json:"actor_id"` // Who performed the mutation.
	CreatedAt         time.Time       `json:"created_at"`
}

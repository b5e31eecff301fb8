package v1

import (
	ledger_uuid "github.com/pocketledger/backend/internal/uuid"
)

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

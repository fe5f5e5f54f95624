package task

import "github.com/google/uuid"

// Filter holds the query criteria for listing tasks. OwnerID is mandatory:
// list queries never cross owners. Nil Status/Priority mean "no filter" for
// that dimension. Soft-deleted tasks are always excluded.
type Filter struct {
	OwnerID  uuid.UUID
	Status   *Status
	Priority *Priority
}

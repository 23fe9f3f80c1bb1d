package domain

// BlockingTable describes a dependent table holding rows that reference a
// product under deletion evaluation.
type BlockingTable struct {
	Table       string `json:"table"`
	Count       int64  `json:"count"`
	Description string `json:"description"`
}

// DeletionResult is the outcome of a deletion-safety check. It is computed
// fresh on every evaluation and never persisted.
type DeletionResult struct {
	CanDelete      bool            `json:"can_delete"`
	Reason         string          `json:"reason,omitempty"`
	BlockingTables []BlockingTable `json:"blocking_tables,omitempty"`
}

// DeleteOutcome reports the result of a delete operation to the caller.
// Store errors never escape as Go errors from the deletion workflow; they
// are translated into a failed outcome with a short actionable message.
type DeleteOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReferenceChecker inspects the known dependent tables for rows referencing
// a product. A table that is absent in the current deployment, or that fails
// to answer, counts as holding zero references.
type ReferenceChecker interface {
	// HasTable reports whether a dependent table exists in this deployment.
	HasTable(name string) bool
	// CheckReferences returns only the tables with a nonzero reference count.
	CheckReferences(productID uint) []BlockingTable
}

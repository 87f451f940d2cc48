// Package repository defines the interfaces for the persistence layer.
package repository

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges a partial update. MatchedCount is zero when the
// target did not exist.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a delete-by-id.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

package domain

import "time"

// Record is implemented by every persisted content document. Repositories use
// it to stamp write times without knowing the concrete type.
type Record interface {
	Touch(now time.Time)
	Identity() string
}

// Document carries the identifier and timestamps shared by all content
// collections. Embed it inline so the fields are flattened in BSON and JSON.
type Document struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Touch sets CreatedAt on first write and UpdatedAt on every write.
func (d *Document) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

func (d *Document) Identity() string { return d.ID }

// Changes is a partial update: bson field name to new value.
type Changes map[string]any

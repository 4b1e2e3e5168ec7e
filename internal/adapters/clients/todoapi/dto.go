package todoapi

// ChecklistItemDTO is a checklist item on the wire.
type ChecklistItemDTO struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Checked        bool    `json:"checked"`
	ExpirationDate *string `json:"expirationDate"`
}

// TodoDTO matches the server's todo view.
type TodoDTO struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	SubCategory string             `json:"subCategory"`
	Assignee    string             `json:"assignee"`
	Checklist   []ChecklistItemDTO `json:"checklist"`
	Position    float64            `json:"position"`
	CreatedAt   *string            `json:"createdAt"`
	UpdatedAt   *string            `json:"updatedAt"`
}

// TodoWriteDTO is the body of create and update requests. Nil fields are
// omitted so the server leaves them untouched.
type TodoWriteDTO struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Category    *string             `json:"category,omitempty"`
	SubCategory *string             `json:"subCategory,omitempty"`
	Assignee    *string             `json:"assignee,omitempty"`
	Position    *float64            `json:"position,omitempty"`
	Checklist   *[]ChecklistItemDTO `json:"checklist,omitempty"`
}

// MutationDTO acknowledges a create or update.
type MutationDTO struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CategoriesDTO lists the distinct categories.
type CategoriesDTO struct {
	Categories []string `json:"categories"`
}

// SyncedExpirationDTO is one row of the persisted expiration index.
type SyncedExpirationDTO struct {
	ID             string  `json:"id"`
	TodoID         string  `json:"todoId"`
	TodoTitle      string  `json:"todoTitle"`
	ItemID         string  `json:"itemId"`
	ItemText       string  `json:"itemText"`
	ExpirationDate string  `json:"expirationDate"`
	CreatedAt      *string `json:"createdAt"`
	UpdatedAt      *string `json:"updatedAt"`
}

package request_models

type CreateChoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"desc"`
	Gems        int    `json:"gems"`
	Location    string `json:"location"`
	ChildID     string `json:"childId" binding:"required,uuid"`
	ParentID    string `json:"parentId" binding:"required,uuid"`
}

// UpdateChoreRequest carries a partial update; nil fields are left alone.
type UpdateChoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"desc"`
	Gems        *int    `json:"gems"`
	Location    *string `json:"location"`
	Status      *int    `json:"status"`
}

package handler

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"max=140"`
	IsDone      bool   `json:"is_done"`
	// OwnerID zero means "mine"; naming someone else needs superuser
	// privilege.
	OwnerID int64 `json:"owner_id"`
}

// putTaskRequest is the full-replacement form.
type putTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"max=140"`
	IsDone      bool   `json:"is_done"`
}

// patchTaskRequest is the partial form: absent fields stay untouched.
type patchTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=140"`
	IsDone      *bool   `json:"is_done"`
}

// --- Response types ---

type taskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
	OwnerID     int64  `json:"owner_id"`
}

type listTasksResponse struct {
	Data []taskResponse `json:"data"`
}

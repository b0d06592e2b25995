package domain

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
	OwnerID     int64  `json:"owner_id"`
}

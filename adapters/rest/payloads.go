package rest

type LoginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserIn struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // "admin", anything else means member
}

type CreateTaskIn struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo"`
	Priority    string `json:"priority,omitempty"` // defaults to medium
}

type PatchTaskIn struct {
	Status string `json:"status"`
}

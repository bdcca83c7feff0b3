package requests

type CreateTechnicianRequest struct {
	Name   string   `json:"name" validate:"required,max=200"`
	Email  string   `json:"email" validate:"required,email"`
	Skills []string `json:"skills,omitempty"`
}

type UpdateTechnicianRequest struct {
	Name   string   `json:"name" validate:"required,max=200"`
	Email  string   `json:"email" validate:"required,email"`
	Skills []string `json:"skills,omitempty"`
	Active *bool    `json:"active" validate:"required"`
}

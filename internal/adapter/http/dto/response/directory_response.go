package response

import "auditqc/internal/domain/entities"

type FacilityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

func FromFacilities(rows []entities.Facility) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(rows))
	for _, f := range rows {
		out = append(out, FacilityResponse{ID: f.ID, Name: f.Name, ProjectID: f.ProjectID})
	}
	return out
}

type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromProjects(rows []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, ProjectResponse{ID: p.ID, Name: p.Name})
	}
	return out
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUsers(rows []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}

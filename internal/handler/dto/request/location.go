package request

import (
	"room-reservation/internal/usecase/commands"
)

type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Active      *bool   `json:"active,omitempty"`
}

func (r CreateLocationRequest) ToInput() commands.CreateLocationInput {
	return commands.CreateLocationInput{
		Name:        r.Name,
		Description: r.Description,
		Active:      r.Active,
	}
}

type UpdateLocationRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Active      *bool   `json:"active,omitempty"`
}

func (r UpdateLocationRequest) ToInput() commands.UpdateLocationInput {
	return commands.UpdateLocationInput{
		Name:        r.Name,
		Description: r.Description,
		Active:      r.Active,
	}
}

type ListLocationsQuery struct {
	Active *bool `form:"active"`
	Skip   int   `form:"skip" binding:"omitempty,min=0"`
	Limit  int   `form:"limit" binding:"omitempty,min=1,max=200"`
}

package dto

import (
	"hotelier/internal/domains/staff/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateStaffRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Role  string `json:"role"  validate:"required,max=50"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}

func (c *CreateStaffRequest) ToModel() model.Staff {
	return model.Staff{
		Name:  c.Name,
		Role:  c.Role,
		Phone: c.Phone,
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type StaffResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.Phone = model.Phone
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

package dto

import (
	"hotelier/internal/domains/customer/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Phone   string `json:"phone"   validate:"required,max=20"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateCustomerRequest replaces the full editable field set, mirroring the
// update statement semantics of the storage layer.
type UpdateCustomerRequest struct {
	Name    string `db:"name"    json:"name"    validate:"required,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"required,max=20"`
	Email   string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

package dto

import (
	"hotelier/internal/domains/payment/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreatePaymentRequest struct {
	BookingID     int64   `json:"booking_id"     validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gte=0"`
	PaymentDate   string  `json:"payment_date"   validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
}

func (c *CreatePaymentRequest) ToModel() (model.Payment, error) {
	paymentDate, err := timezone.Parse(constant.DateOnlyFormat, c.PaymentDate)
	if err != nil {
		return model.Payment{}, err
	}

	return model.Payment{
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: c.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type PaymentResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentDate = model.PaymentDate.Format(constant.DateOnlyFormat)
	r.PaymentMethod = model.PaymentMethod
	r.Metadata.FromModel(model.Metadata)
}

type PaymentDetailResponse struct {
	PaymentResponse
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

func (r *PaymentDetailResponse) FromModel(model model.PaymentDetail) {
	r.PaymentResponse.FromModel(model.Payment)
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
}

type GetPaymentsResponse struct {
	Payments  []PaymentDetailResponse `json:"payments"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.PaymentDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentDetailResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

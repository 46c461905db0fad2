package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerID   int64   `json:"customer_id"    validate:"required"`
	RoomID       int64   `json:"room_id"        validate:"required"`
	CheckInDate  string  `json:"check_in_date"  validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
	TotalAmount  float64 `json:"total_amount"   validate:"required,gte=0"`
}

// ToModel parses the calendar dates. Date ordering and overlap are not
// validated; bookings are plain records here.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		CustomerID:   c.CustomerID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  c.TotalAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customer_id"`
	RoomID       int64   `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalAmount  float64 `json:"total_amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

type BookingDetailResponse struct {
	BookingResponse
	CustomerName string `json:"customer_name"`
	RoomType     string `json:"room_type"`
}

func (r *BookingDetailResponse) FromModel(model model.BookingDetail) {
	r.BookingResponse.FromModel(model.Booking)
	r.CustomerName = model.CustomerName
	r.RoomType = model.RoomType
}

type GetBookingsResponse struct {
	Bookings  []BookingDetailResponse `json:"bookings"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingDetailResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	RoomType      string  `json:"room_type"       validate:"required,max=100"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gte=0"`
	IsAvailable   *bool   `json:"is_available"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		IsAvailable:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID            int64   `json:"id"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   bool    `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

package dto

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

type CreateUnitRequest struct {
	UnitNumber    string   `json:"unitNumber" binding:"required"`
	Building      string   `json:"building" binding:"required"`
	Floor         int      `json:"floor"`
	SquareMeters  float64  `json:"squareMeters" binding:"gte=0"`
	RoomType      string   `json:"roomType" binding:"required"`
	RentPrice     int64    `json:"rentPrice" binding:"gte=0"`
	DepositAmount int64    `json:"depositAmount" binding:"gte=0"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	// LandlordID lets admin and staff create units on behalf of a landlord
	LandlordID uint `json:"landlordId"`
}

type UpdateUnitRequest struct {
	UnitNumber    *string   `json:"unitNumber"`
	Building      *string   `json:"building"`
	Floor         *int      `json:"floor"`
	SquareMeters  *float64  `json:"squareMeters"`
	RoomType      *string   `json:"roomType"`
	RentPrice     *int64    `json:"rentPrice"`
	DepositAmount *int64    `json:"depositAmount"`
	Amenities     *[]string `json:"amenities"`
	Status        *string   `json:"status"`
	Description   *string   `json:"description"`
}

type UnitQuery struct {
	PageQuery
	Status   string `form:"status"`
	Building string `form:"building"`
	RoomType string `form:"roomType"`
}

// UnitRef is the short form of a unit embedded in other read models
type UnitRef struct {
	ID         uint                `json:"id"`
	UnitNumber string              `json:"unitNumber"`
	Building   string              `json:"building"`
	Status     database.UnitStatus `json:"status"`
}

func NewUnitRef(u *database.Unit) *UnitRef {
	if u == nil {
		return nil
	}
	return &UnitRef{ID: u.ID, UnitNumber: u.UnitNumber, Building: u.Building, Status: u.Status}
}

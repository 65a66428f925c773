package service

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrFloorNotFound   = errors.New("floor not found")
	ErrRoomUnavailable = errors.New("room is not available for booking")
	ErrSlotTaken       = errors.New("slot already booked for this room and date")
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrInvalidDate     = errors.New("invalid date")
)

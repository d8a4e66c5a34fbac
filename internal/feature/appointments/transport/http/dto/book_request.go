// Package dto defines data transfer objects for the appointments feature's HTTP transport layer.
package dto

// BookAppointmentReq represents the request body for POST /appointments.
// Bodies may arrive URL-encoded (browser form) or as JSON. All fields are
// required; the date is parsed by the handler after binding.
type BookAppointmentReq struct {
	PhoneModel string `form:"phoneModel" json:"phoneModel" binding:"required"`
	Issue      string `form:"issue" json:"issue" binding:"required"`
	Date       string `form:"date" json:"date" binding:"required"`
}

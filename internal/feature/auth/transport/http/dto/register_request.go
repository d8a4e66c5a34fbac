// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Bodies may arrive URL-encoded (browser form) or as JSON, so both binding
// tags are present. Required-field validation happens before any store call.
type RegisterReq struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

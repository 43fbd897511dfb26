package controllers

import "errors"

var (
	ErrLineNotFound   = errors.New("cart line not found")
	ErrChargeNotFound = errors.New("charge not found")
)

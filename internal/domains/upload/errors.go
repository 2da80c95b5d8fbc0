package upload

import "errors"

var (
	ErrInvalidImage = errors.New("uploaded file is not a usable image")
	ErrStorage      = errors.New("photo storage failed")
)

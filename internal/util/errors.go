package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrStudyPlanNotFound = errors.New("Study plan not found")
	ErrTopicNotFound     = errors.New("topic not found in plan")
	ErrInvalidWindow     = errors.New("invalid history window")
)

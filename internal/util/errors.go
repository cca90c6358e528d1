package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNoFields         = errors.New("campaign needs at least one field")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrMissingRatings   = errors.New("missing required ratings")
	ErrNoFeedbackData   = errors.New("no feedback data available to export")
)

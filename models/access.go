package models

// UserRef identifies a single user in sharing requests.
type UserRef struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// ShareRequest grants access to a form to several users at once.
type ShareRequest struct {
	UserIDs []int64 `json:"userIds" validate:"required,min=1,dive,gt=0"`
}

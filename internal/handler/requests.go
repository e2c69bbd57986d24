package handler

import (
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/validation"
)

// ListItemsRequest has no inputs.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// ItemPathRequest carries the :id path parameter.
type ItemPathRequest struct {
	ID int64 `param:"id"`
}

func (r *ItemPathRequest) Validate() error {
	return validation.Struct(r)
}

// CreateItemRequest is the add-item form.
type CreateItemRequest struct {
	Name     string `form:"name" validate:"required,max=255"`
	Quantity *int   `form:"quantity" validate:"required"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemRequest is the edit form plus the :id path parameter.
type UpdateItemRequest struct {
	ID          int64  `param:"id"`
	Name        string `form:"name" validate:"required,max=255"`
	Quantity    *int   `form:"quantity" validate:"required"`
	Description string `form:"description" validate:"omitempty,max=255"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r)
}

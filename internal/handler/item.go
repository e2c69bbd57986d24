package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/service"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/view"
)

const listPath = "/stuff"

// ItemPath is the detail page location for id.
func ItemPath(id int64) string {
	return fmt.Sprintf("/stuff/item/%d", id)
}

type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// List handles GET /stuff.
func (h *ItemHandler) List() echo.HandlerFunc {
	return HandleRender(h.Handler, func(c echo.Context, _ *ListItemsRequest) (view.ListPage, error) {
		items, err := h.items.ListItems(c.Request().Context())
		if err != nil {
			return view.ListPage{}, err
		}

		return view.ListPage{Items: items}, nil
	}, view.PageList, &ListItemsRequest{})
}

// Detail handles GET /stuff/item/:id.
func (h *ItemHandler) Detail() echo.HandlerFunc {
	return HandleRender(h.Handler, func(c echo.Context, req *ItemPathRequest) (view.DetailPage, error) {
		item, err := h.items.GetItem(c.Request().Context(), req.ID)
		if err != nil {
			return view.DetailPage{}, err
		}

		return view.DetailPage{Item: item}, nil
	}, view.PageDetail, &ItemPathRequest{})
}

// Delete handles GET /stuff/item/:id/delete.
func (h *ItemHandler) Delete() echo.HandlerFunc {
	return HandleRedirect(h.Handler, func(c echo.Context, req *ItemPathRequest) (string, error) {
		if err := h.items.DeleteItem(c.Request().Context(), req.ID); err != nil {
			return "", err
		}

		return listPath, nil
	}, &ItemPathRequest{})
}

// Create handles POST /stuff.
func (h *ItemHandler) Create() echo.HandlerFunc {
	return HandleRedirect(h.Handler, func(c echo.Context, req *CreateItemRequest) (string, error) {
		id, err := h.items.CreateItem(c.Request().Context(), req.Name, *req.Quantity)
		if err != nil {
			return "", err
		}

		return ItemPath(id), nil
	}, &CreateItemRequest{})
}

// Update handles POST /stuff/item/:id.
func (h *ItemHandler) Update() echo.HandlerFunc {
	return HandleRedirect(h.Handler, func(c echo.Context, req *UpdateItemRequest) (string, error) {
		err := h.items.UpdateItem(c.Request().Context(), req.ID, req.Name, *req.Quantity, req.Description)
		if err != nil {
			return "", err
		}

		return ItemPath(req.ID), nil
	}, &UpdateItemRequest{})
}

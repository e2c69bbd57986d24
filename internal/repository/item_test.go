package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *ItemRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock, NewItemRepository(mock)
}

func sql(statement string) string {
	return "^" + regexp.QuoteMeta(statement) + "$"
}

func TestListItems(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(sql(listItemsSQL)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item", "quantity"}).
			AddRow(int64(1), "Widgets", 5).
			AddRow(int64(2), "Gadgets", 12))

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Item{
		{ID: 1, Item: "Widgets", Quantity: 5},
		{ID: 2, Item: "Gadgets", Quantity: 12},
	}, items)
}

func TestListItemsEmpty(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(sql(listItemsSQL)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item", "quantity"}))

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListItemsError(t *testing.T) {
	mock, repo := newMock(t)
	boom := errors.New(`relation "stuff" does not exist`)

	mock.ExpectQuery(sql(listItemsSQL)).WillReturnError(boom)

	_, err := repo.ListItems(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, boom.Error())
}

func TestGetItem(t *testing.T) {
	mock, repo := newMock(t)
	desc := "Small, round and shiny"

	mock.ExpectQuery(sql(getItemSQL)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item", "quantity", "description"}).
			AddRow(int64(1), "Widgets", 5, &desc))

	item, err := repo.GetItem(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Widgets", item.Item)
	assert.Equal(t, 5, item.Quantity)
	require.NotNil(t, item.Description)
	assert.Equal(t, desc, *item.Description)
}

func TestGetItemNullDescription(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(sql(getItemSQL)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item", "quantity", "description"}).
			AddRow(int64(3), "Sprockets", 40, (*string)(nil)))

	item, err := repo.GetItem(context.Background(), 3)
	require.NoError(t, err)

	assert.Nil(t, item.Description)
}

func TestGetItemNotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(sql(getItemSQL)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "item", "quantity", "description"}))

	_, err := repo.GetItem(context.Background(), 99)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Contains(t, err.Error(), "99")
}

func TestCreateItem(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(sql(createItemSQL)).
		WithArgs("Widgets", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.CreateItem(context.Background(), "Widgets", 5)
	require.NoError(t, err)

	assert.Equal(t, int64(7), id)
}

func TestCreateItemError(t *testing.T) {
	mock, repo := newMock(t)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(sql(createItemSQL)).
		WithArgs("Widgets", 5).
		WillReturnError(boom)

	_, err := repo.CreateItem(context.Background(), "Widgets", 5)

	assert.ErrorIs(t, err, boom)
}

func TestUpdateItem(t *testing.T) {
	mock, repo := newMock(t)
	desc := "Y"

	mock.ExpectExec(sql(updateItemSQL)).
		WithArgs("X", 9, &desc, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.UpdateItem(context.Background(), 4, "X", 9, &desc)
	require.NoError(t, err)

	assert.Equal(t, int64(1), affected)
}

func TestUpdateItemMissingRow(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(sql(updateItemSQL)).
		WithArgs("X", 9, (*string)(nil), int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	affected, err := repo.UpdateItem(context.Background(), 404, "X", 9, nil)
	require.NoError(t, err)

	assert.Zero(t, affected)
}

func TestDeleteItem(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(sql(deleteItemSQL)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	affected, err := repo.DeleteItem(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), affected)
}

func TestDeleteItemError(t *testing.T) {
	mock, repo := newMock(t)
	boom := errors.New("server closed the connection unexpectedly")

	mock.ExpectExec(sql(deleteItemSQL)).
		WithArgs(int64(2)).
		WillReturnError(boom)

	_, err := repo.DeleteItem(context.Background(), 2)

	assert.ErrorIs(t, err, boom)
}

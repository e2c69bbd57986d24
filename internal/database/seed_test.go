package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	logger := zerolog.Nop()
	desc := "Small, round and shiny"
	items := []SampleItem{
		{Item: "Widgets", Quantity: 5, Description: &desc},
		{Item: "Sprockets", Quantity: 40},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(truncateStuffSQL)).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectExec(regexp.QuoteMeta(seedItemSQL)).
		WithArgs("Widgets", 5, &desc).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(seedItemSQL)).
		WithArgs("Sprockets", 40, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, Seed(context.Background(), mock, &logger, items))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	logger := zerolog.Nop()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(truncateStuffSQL)).
		WillReturnError(errors.New(`relation "stuff" does not exist`))
	mock.ExpectRollback()

	err = Seed(context.Background(), mock, &logger, SampleItems)

	assert.ErrorContains(t, err, "truncating stuff")
	assert.NoError(t, mock.ExpectationsWereMet())
}

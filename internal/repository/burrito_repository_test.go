package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"burritoapi/internal/model"
)

func TestBurritoRepository_Increment(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)
	id := uuid.New()
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `burritos` SET `thumbs_up`=thumbs_up + ?").
		WithArgs(1, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT * FROM `burritos` WHERE id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_name", "thumbs_up", "thumbs_down", "user_id"}).
			AddRow(id.String(), "La Taqueria", 3, 0, owner.String()))

	got, err := repo.Increment(context.Background(), id, model.CounterThumbsUp)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 3, got.ThumbsUp)
	assert.Equal(t, owner, got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBurritoRepository_IncrementMissing(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `burritos` SET `thumbs_down`=thumbs_down + ?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	got, err := repo.Increment(context.Background(), uuid.New(), model.CounterThumbsDown)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBurritoRepository_IncrementRejectsUnknownCounter(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	_, err := repo.Increment(context.Background(), uuid.New(), model.Counter("user_id"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBurritoRepository_UpdateSkipsOwnerAndCounters(t *testing.T) {
	gdb, mock, matcher := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `burritos` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b := &model.Burrito{
		ID:             uuid.New(),
		BurritoName:    "Super",
		RestaurantName: "El Farolito",
		ThumbsUp:       99,
		UserID:         uuid.New(),
	}
	require.NoError(t, repo.Update(context.Background(), b))
	require.NoError(t, mock.ExpectationsWereMet())

	stmt := matcher.last()
	assert.Contains(t, stmt, "`burrito_name`")
	assert.Contains(t, stmt, "`salsa`")
	assert.NotContains(t, stmt, "`thumbs_up`")
	assert.NotContains(t, stmt, "`thumbs_down`")
	assert.NotContains(t, stmt, "`user_id`")
}

func TestBurritoRepository_SearchEscapesPattern(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	mock.ExpectQuery("WHERE LOWER(restaurant_name) LIKE ?").
		WithArgs(`%taco\_100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_name"}).
			AddRow(uuid.NewString(), "Taco_100%"))

	got, err := repo.SearchByRestaurant(context.Background(), "Taco_100%")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Taco_100%", got[0].RestaurantName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBurritoRepository_ListEmpty(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	mock.ExpectQuery("SELECT * FROM `burritos`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBurritoRepository_DeleteMissing(t *testing.T) {
	gdb, mock, _ := newMockDB(t)
	repo := NewBurritoRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `burritos` WHERE id = ?").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

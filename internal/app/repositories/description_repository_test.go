package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/dberrors"
)

const descriptionJoin = "SELECT d.id, d.text, d.product_id, p.id, p.name FROM descriptions d JOIN products p ON p.id = d.product_id"

func TestDescriptionRepository_ListWithProduct_SingleJoin(t *testing.T) {
	mock := newMock(t)
	repo := NewDescriptionRepository(mock)

	mock.ExpectQuery(exact(descriptionJoin + " ORDER BY d.id LIMIT 10")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "text", "product_id", "id", "name"}).
			AddRow(int64(1), "Shiny", int64(4), int64(4), "Widget").
			AddRow(int64(2), "Sturdy", int64(5), int64(5), "Bolt"))

	descriptions, err := repo.ListWithProduct(context.Background(), Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, descriptions, 2)
	for _, d := range descriptions {
		require.NotNil(t, d.Product)
		assert.Equal(t, d.ProductID, d.Product.ID)
	}
	assert.Equal(t, "Bolt", descriptions[1].Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDescriptionRepository(mock)

	mock.ExpectQuery(exact(descriptionJoin + " WHERE d.id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "text", "product_id", "id", "name"}))

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrDescriptionNotFound)
}

func TestDescriptionRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		wantErr error
	}{
		{
			name:    "product already described",
			pgErr:   &pgconn.PgError{Code: dberrors.UniqueViolation, ConstraintName: descriptionProductKey},
			wantErr: apperrors.ErrDescriptionAlreadyExists,
		},
		{
			name:    "unknown product",
			pgErr:   &pgconn.PgError{Code: dberrors.ForeignKeyViolation, ConstraintName: descriptionProductFK},
			wantErr: apperrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewDescriptionRepository(mock)

			mock.ExpectQuery(exact("INSERT INTO descriptions (text,product_id) VALUES ($1,$2) RETURNING id")).
				WithArgs("text", int64(4)).
				WillReturnError(tt.pgErr)

			err := repo.Create(context.Background(), &models.Description{Text: "text", ProductID: 4})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDescriptionRepository_UpdateText(t *testing.T) {
	mock := newMock(t)
	repo := NewDescriptionRepository(mock)

	mock.ExpectExec(exact("UPDATE descriptions SET text = $1 WHERE id = $2")).
		WithArgs("New text", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateText(context.Background(), 1, "New text"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepository_DeleteRemovesProduct(t *testing.T) {
	mock := newMock(t)
	repo := NewDescriptionRepository(mock)

	mock.ExpectExec(exact("DELETE FROM products WHERE id = (SELECT product_id FROM descriptions WHERE id = $1)")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDescriptionRepository(mock)

	mock.ExpectExec(exact("DELETE FROM products")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 2), apperrors.ErrDescriptionNotFound)
}

package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const serializationFailureCode = "40001"

// IsSerializationFailure 判斷是否為serializable交易衝突 (SQLSTATE 40001)
// 這類錯誤重試即可, 不代表資料有問題
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == serializationFailureCode
	}
	return false
}

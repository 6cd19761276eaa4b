package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, на которые репозитории реагируют доменными ошибками.
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsUniqueViolation: дубликат телефона курьера или номера талона в юните.
func IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgErrUniqueViolation
}

// IsForeignKeyViolation: ссылка на курьера, которого уже нет.
func IsForeignKeyViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgErrForeignKeyViolation
}

package errors

import (
	"context"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/stock-ledger/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}

// IsConflict reports whether err is lock contention that can be retried:
// a Conflict CustomError, an InnoDB deadlock or lock wait timeout, or an
// attempt that ran out of time.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if Is(err, constant.ErrConflict) {
		return true
	}
	var me *mysql.MySQLError
	if stderrors.As(err, &me) {
		return me.Number == constant.MySQLLockWaitTimeout || me.Number == constant.MySQLDeadlock
	}
	return stderrors.Is(err, context.DeadlineExceeded)
}

// IsDuplicateKey reports whether err is a MySQL unique/primary key violation.
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return stderrors.As(err, &me) && me.Number == constant.MySQLDuplicateEntry
}

// FromStore maps a repository failure onto the API error set: lock contention
// becomes Conflict, CustomErrors pass through and anything else is Internal.
func FromStore(err error) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	if IsConflict(err) {
		return SetCustomError(constant.ErrConflict)
	}
	return SetCustomError(constant.ErrInternal)
}

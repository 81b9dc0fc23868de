package model

import "fmt"

// DataAccessError 物件ストアが読めない、またはクエリ結果が不正な場合のエラー
type DataAccessError struct {
	Op  string // 失敗した処理
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("データベースエラー: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError DataAccessErrorを作成
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

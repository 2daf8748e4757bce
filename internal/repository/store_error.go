package repository

import (
	"errors"
	"fmt"
)

// StoreError 存储层错误，Message 原样保留存储返回的错误信息
type StoreError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("store %s failed", e.Op)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// wrapStoreError 包装底层错误，已是 StoreError 时直接返回
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Message: err.Error(), Err: err}
}

// IsStoreError 判断是否为存储层错误
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

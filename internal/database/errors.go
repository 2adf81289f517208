package database

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEvent = errors.New("invalid auth event")
	ErrEmptyKey     = errors.New("empty setting key")
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapEventErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "auth event", ID: id, Err: err}
}

func wrapSettingErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Err: err}
}

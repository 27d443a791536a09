package models

import "errors"

// ErrNotFound возвращается репозиториями, когда запись не существует
var ErrNotFound = errors.New("not found")

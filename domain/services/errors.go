package services

import "errors"

// sentinel errors ให้ handler แยก not-found ออกจาก validation error ได้
var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNotTodoMember ใช้เฉพาะ comments path ที่แยก 403 ออกจาก 404
	ErrNotTodoMember = errors.New("not a member of this todo")
)

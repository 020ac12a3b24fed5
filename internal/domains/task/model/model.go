package model

import (
	"strings"
	"todolist/shared/failure"
)

const (
	EntityName = "task"

	FieldID        = "id"
	FieldName      = "name"
	FieldCompleted = "completed"

	tableSuffix = "_tasks"
)

// Category names one of the fixed, disjoint task tables.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryShopping}
}

// ParseCategory maps a URL segment to a Category.
func ParseCategory(value string) (Category, error) {
	category := Category(value)
	if !category.Valid() {
		return "", failure.UnknownCategory
	}

	return category, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryShopping:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// TableName is the table holding this category's tasks.
func (c Category) TableName() string {
	return string(c) + tableSuffix
}

// Title is the human readable heading, e.g. "Personal".
func (c Category) Title() string {
	if c == "" {
		return ""
	}

	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

type Task struct {
	ID        int64  `db:"id" readonly:"true"`
	Name      string `db:"name"`
	Completed bool   `db:"completed"`
}

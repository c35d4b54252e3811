// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bill is the predicate function for bill builders.
type Bill func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

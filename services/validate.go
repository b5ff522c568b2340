package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func isEmail(s string) bool { return validate.Var(s, "required,email") == nil }

func isURL(s string) bool { return validate.Var(s, "required,http_url") == nil }

func isDigits(s string) bool { return validate.Var(s, "required,number") == nil }

// errs accumulates validation messages for one DTO; join produces the single
// message string the response envelope carries.
type errs []string

func (e *errs) add(msg string) { *e = append(*e, msg) }

func (e errs) join() string { return strings.Join(e, ", ") }

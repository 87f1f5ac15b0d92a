package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, entity any) ValidationErrors {
	t.Helper()
	RegisterValidations()

	err := binding.Validator.ValidateStruct(entity)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors), "unexpected error type %T", err)
	return NewValidationErrors(validationErrors)
}

func fields(errs ValidationErrors) []string {
	result := make([]string, len(errs))
	for i, e := range errs {
		result[i] = e.Field
	}
	return result
}

func validYear() *int {
	year := 1999
	return &year
}

func TestBookValidation_Valid(t *testing.T) {
	price := 0.0
	book := Book{Title: "Dune", Author: "Frank Herbert", Year: validYear(), Price: &price}

	assert.Empty(t, validate(t, &book))
}

func TestBookValidation_ItemizesFieldsInOrder(t *testing.T) {
	errs := validate(t, &Book{Title: "   "})

	assert.Equal(t, []string{"title", "author", "year"}, fields(errs))
	assert.Equal(t, "Validation errors: title: must not be blank, author: must not be blank, year: is required", errs.Error())
}

func TestBookValidation_Ranges(t *testing.T) {
	early := 999
	negative := -1.0
	book := Book{
		Title:  strings.Repeat("x", 201),
		Author: "Someone",
		Year:   &early,
		Price:  &negative,
	}

	errs := validate(t, &book)

	require.Len(t, errs, 3)
	assert.Equal(t, FieldError{Field: "title", Message: "must be at most 200 characters"}, errs[0])
	assert.Equal(t, FieldError{Field: "year", Message: "must be at least 1000"}, errs[1])
	assert.Equal(t, FieldError{Field: "price", Message: "must be at least 0"}, errs[2])
}

func TestProductValidation(t *testing.T) {
	price, free, negative := 10.0, 0.0, -5.0
	assert.Empty(t, validate(t, &Product{Name: "Lamp", Category: "Home", Price: &price}))
	assert.Empty(t, validate(t, &Product{Name: "Flyer", Category: "Home", Price: &free}))

	errs := validate(t, &Product{Price: &negative})
	assert.Equal(t, []string{"name", "price", "category"}, fields(errs))

	missing := validate(t, &Product{Name: "Lamp", Category: "Home"})
	assert.Equal(t, ValidationErrors{{Field: "price", Message: "is required"}}, missing)
}

func TestWithIdReturnsCopy(t *testing.T) {
	book := Book{Title: "Original"}
	copied := book.WithId("abc")

	assert.Equal(t, "abc", copied.GetId())
	assert.Empty(t, book.GetId())

	product := Product{Name: "Lamp"}.WithId("p1")
	assert.Equal(t, "p1", product.GetId())
}

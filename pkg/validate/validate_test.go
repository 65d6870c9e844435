package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCustomerInput struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Email   string `json:"email" validate:"nullable,email"`
	Address string `json:"address" validate:"nullable,max=500"`
}

func TestStructRequired(t *testing.T) {
	errs := Struct(createCustomerInput{})

	require.True(t, errs.Has())
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "The name field is required.", errs[0].Message)
	assert.Equal(t, "The name field is required.", errs.First())
}

func TestStructPreservesDeclarationOrder(t *testing.T) {
	errs := Struct(createCustomerInput{Email: "not-an-email"})

	require.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "phone", errs[1].Field)
	assert.Equal(t, "email", errs[2].Field)
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	errs := Struct(createCustomerInput{Name: "Amara Okafor", Phone: "+2348012345678"})
	assert.False(t, errs.Has())
}

func TestStructEmail(t *testing.T) {
	errs := Struct(createCustomerInput{Name: "Amara", Phone: "+2348012345678", Email: "bad@"})
	require.Len(t, errs, 1)
	assert.Equal(t, "The email must be a valid email address.", errs[0].Message)

	errs = Struct(createCustomerInput{Name: "Amara", Phone: "+2348012345678", Email: "amara@email.com"})
	assert.False(t, errs.Has())
}

func TestStructInRule(t *testing.T) {
	type input struct {
		Unit string `json:"unitType" validate:"required,in=KG|PIECE|LOAD"`
	}

	assert.False(t, Struct(input{Unit: "KG"}).Has())
	assert.False(t, Struct(input{Unit: "PIECE"}).Has())

	errs := Struct(input{Unit: "GALLON"})
	require.Len(t, errs, 1)
	assert.Equal(t, "The selected unitType is invalid.", errs[0].Message)
}

func TestStructNumericBounds(t *testing.T) {
	type input struct {
		Price float64 `json:"pricePerUnit" validate:"required,gte=0"`
		Qty   int     `json:"quantity" validate:"required,min=1,max=99"`
	}

	assert.False(t, Struct(input{Price: 1500, Qty: 3}).Has())

	errs := Struct(input{Price: 1500, Qty: 100})
	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Field)
}

func TestStructMinStringLength(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required,min=2"`
	}

	errs := Struct(input{Name: "A"})
	require.Len(t, errs, 1)
	assert.Equal(t, "The name must be at least 2 characters.", errs[0].Message)
}

func TestErrorsMarshalKeepsOrder(t *testing.T) {
	errs := Errors{
		{Field: "phone", Message: "The phone field is required."},
		{Field: "email", Message: "The email must be a valid email address."},
	}

	raw, err := json.Marshal(errs)
	require.NoError(t, err)
	assert.Equal(t,
		`{"phone":"The phone field is required.","email":"The email must be a valid email address."}`,
		string(raw))
}

func TestStructOneErrorPerField(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email,min=5"`
	}

	errs := Struct(input{})
	require.Len(t, errs, 1, "first failing rule wins")
}

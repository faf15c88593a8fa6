package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-desk/internal/httperr"
)

func TestAppointmentSchemaValidPayload(t *testing.T) {
	payload := map[string]any{
		"clientName": "Carlos",
		"barberId":   "b-1",
		"service":    "Haircut",
		"date":       "2025-03-10",
		"time":       "14:30",
	}

	assert.Nil(t, AppointmentSchema.Validate(payload))
	assert.NoError(t, AppointmentSchema.Check(payload))
}

func TestAppointmentSchemaCollectsFieldErrors(t *testing.T) {
	payload := map[string]any{
		"clientName":  "C",
		"clientEmail": "not-an-email",
		"service":     "Haircut",
		"date":        "2025-03-10",
		"time":        "14:30",
		"status":      "scheduled",
	}

	errs := AppointmentSchema.Validate(payload)
	require.NotNil(t, errs)

	assert.Contains(t, errs, "clientName")
	assert.Contains(t, errs, "clientEmail")
	assert.Contains(t, errs, "barberId")
	assert.Contains(t, errs, "status")
	assert.NotContains(t, errs, "service")
	assert.NotContains(t, errs, "date")
}

func TestAppointmentSchemaOptionalFields(t *testing.T) {
	// Email and status may be absent entirely, or email may be "".
	payload := map[string]any{
		"clientName":  "Carlos",
		"clientEmail": "",
		"barberId":    "b-1",
		"service":     "Haircut",
		"date":        "2025-03-10",
		"time":        "14:30",
	}

	assert.Nil(t, AppointmentSchema.Validate(payload))
}

func TestCheckWrapsIntoValidationError(t *testing.T) {
	err := AppointmentSchema.Check(map[string]any{})
	require.Error(t, err)
	require.True(t, httperr.IsValidation(err))

	var ve *httperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "invalid form data", ve.Message)
	assert.NotEmpty(t, ve.Fields)
}

func TestBarberSchema(t *testing.T) {
	valid := map[string]any{
		"name":     "Miguel",
		"services": []any{"Haircut"},
	}
	assert.Nil(t, BarberSchema.Validate(valid))

	errs := BarberSchema.Validate(map[string]any{
		"name":     "M",
		"services": []any{},
		"active":   "yes",
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "services")
	assert.Contains(t, errs, "active")
}

func TestBarberSchemaAcceptsStringSliceServices(t *testing.T) {
	payload := map[string]any{
		"name":     "Miguel",
		"services": []string{"Haircut", "Shave"},
		"active":   false,
	}
	assert.Nil(t, BarberSchema.Validate(payload))
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, e := range valid {
		assert.True(t, IsEmailValid(e), e)
	}

	invalid := []string{"", "plain", "a@b", "A Name <a@b.co>", "@b.co"}
	for _, e := range invalid {
		assert.False(t, IsEmailValid(e), e)
	}
}

func TestMinLenCountsRunes(t *testing.T) {
	rule := MinLen(2, "too short")

	ok, _ := rule("éç")
	assert.True(t, ok)

	ok, msg := rule("x")
	assert.False(t, ok)
	assert.Equal(t, "too short", msg)

	// Non-string values fail rather than panic.
	ok, _ = rule(42)
	assert.False(t, ok)
	ok, _ = rule(nil)
	assert.False(t, ok)
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	inmate := Inmate{
		InmateID:    1,
		HoldingCell: "A",
		HealthNum:   100,
		StartDate:   NewDate(2024, time.January, 1),
	}

	raw, err := json.Marshal(inmate)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inmateId":1,"holdingCell":"A","healthNum":100,"startDate":"2024-01-01","endDate":null}`, string(raw))

	var decoded Inmate
	require.NoError(t, json.Unmarshal([]byte(`{"startDate":"2024-01-10","endDate":""}`), &decoded))
	assert.Equal(t, "2024-01-10", decoded.StartDate.String())
	assert.True(t, decoded.EndDate.IsZero())
}

func TestDateRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"10/01/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240110`), &d))

	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	today := DateOf(time.Date(2024, time.February, 20, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-20", today.String())
	assert.Equal(t, "2024-03-21", today.AddDays(30).String())
}

func TestEmployeeRoleValid(t *testing.T) {
	assert.True(t, RoleGuard.Valid())
	assert.True(t, RoleNone.Valid())
	assert.False(t, EmployeeRole("JANITOR").Valid())
}

package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	cases := map[string]FlexString{
		`{"current_salary":"45,000"}`: "45,000",
		`{"current_salary":45000}`:    "45000",
		`{"current_salary":1.5e3}`:    "1.5e3",
		`{"current_salary":null}`:     "",
		`{}`:                          "",
	}
	for in, want := range cases {
		var req UpdateWorkStatusRequest
		require.NoError(t, json.Unmarshal([]byte(in), &req), in)
		assert.Equal(t, want, req.CurrentSalary, in)
	}

	var req UpdateWorkStatusRequest
	assert.Error(t, json.Unmarshal([]byte(`{"current_salary":[1]}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"current_salary":false}`), &req))
}

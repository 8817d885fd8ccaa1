package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("id", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseID("id", bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateStruct_DateTags(t *testing.T) {
	type week struct {
		Date string `validate:"required,isodate"`
		Week string `validate:"omitempty,sunday"`
	}
	assert.NoError(t, ValidateStruct(week{Date: "2024-09-03", Week: "2024-09-01"}))
	assert.Error(t, ValidateStruct(week{Date: "2024/09/03"}))
	assert.Error(t, ValidateStruct(week{Date: "2024-09-03", Week: "2024-09-02"}))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	assert.True(t, ValidateCardNumber("4242424242424242"))
	assert.True(t, ValidateCardNumber("4242 4242 4242 4242"))
	assert.False(t, ValidateCardNumber("424242424242424"))
	assert.False(t, ValidateCardNumber("4242-4242-4242-4242"))
	assert.False(t, ValidateCardNumber(""))
}

func TestValidateCVC(t *testing.T) {
	assert.True(t, ValidateCVC("123"))
	assert.False(t, ValidateCVC("12"))
	assert.False(t, ValidateCVC("1234"))
	assert.False(t, ValidateCVC("abc"))
}

func TestValidateExpiry(t *testing.T) {
	assert.True(t, ValidateExpiry("08/28"))
	assert.True(t, ValidateExpiry("12/30"))
	assert.False(t, ValidateExpiry("13/28"))
	assert.False(t, ValidateExpiry("00/28"))
	assert.False(t, ValidateExpiry("8/28"))
	assert.False(t, ValidateExpiry("08/2028"))
}

func TestSplitExpiry(t *testing.T) {
	month, year := SplitExpiry("08/28")
	assert.Equal(t, "08", month)
	assert.Equal(t, "28", year)

	month, year = SplitExpiry("bogus")
	assert.Empty(t, month)
	assert.Empty(t, year)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("demo@example.com"))
	assert.False(t, ValidateEmail("demo@example"))
	assert.False(t, ValidateEmail("not-an-email"))
}

func TestPaginationBounds(t *testing.T) {
	p := &Pagination{Page: 1, Limit: 10, Offset: 0}
	start, end := p.Bounds(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	p = &Pagination{Page: 3, Limit: 10, Offset: 20}
	start, end = p.Bounds(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	p = &Pagination{Page: 5, Limit: 10, Offset: 40}
	start, end = p.Bounds(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

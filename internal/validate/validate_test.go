package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("account", "lan", "email", "lan@x.vn"))

	err := Required("account", "lan", "email", "   ")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "email: is required", err.Error())
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"a@b.c", "lan.nguyen@gmail.com", "x+y@mail.co.vn"} {
		assert.NoError(t, Email(ok), ok)
	}
	for _, bad := range []string{"", "lan", "lan@gmail", "@gmail.com", "lan@.", "la n@gmail.com", "a@b@c.d"} {
		assert.Error(t, Email(bad), bad)
	}
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("0901234567"))
	for _, bad := range []string{"901234567", "9012345678", "090123456", "09012345678", "09012a4567", "+84901234567"} {
		assert.Error(t, Phone(bad), bad)
	}
}

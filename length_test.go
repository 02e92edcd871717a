package formvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	r := Length(0, 100)
	err := r.Validate("Richard-Breslau-Straãƒæ'ã†Â€™Ãƒâ€ Ã¢Â‚¬Â„¢Ãƒæ'ã¢Â‚¬Â¦Ãƒâ€Šã‚Â¸E 2") // 65
	require.Nil(t, err)

	err = r.Validate("Richard-Breslau-Straãƒæ'ã†Â€™Ãƒâ€ Ã¢Â‚¬Â„¢Ãƒæ'ã¢Â‚¬Â¦Ãƒâ€Šã‚Â¸E 21234567890abcdefghijklmnopqrstuvwxy") // 100
	require.Nil(t, err)

	err = r.Validate("Richard-Breslau-Straãƒæ'ã†Â€™Ãƒâ€ Ã¢Â‚¬Â„¢Ãƒæ'ã¢Â‚¬Â¦Ãƒâ€Šã‚Â¸E 21234567890abcdefghijklmnopqrstuvwxyz") // 101
	require.NotNil(t, err)
}

func TestLength_NoUpperBound(t *testing.T) {
	r := Length(2, 0)
	assert.NoError(t, r.Validate("ab"))
	assert.EqualError(t, r.Validate("a"), "the length must be no less than 2")
	assert.EqualError(t, r.Validate(""), "the length must be no less than 2")
	assert.NoError(t, r.Validate(nil))
}

func TestLength_Empty(t *testing.T) {
	assert.EqualError(t, Length(3, 3).Validate(""), "the length must be exactly 3")
	assert.EqualError(t, Length(1, 5).Validate([]any{}), "the length must be between 1 and 5")
	assert.NoError(t, Length(0, 5).Validate(""))
}

func TestLength_List(t *testing.T) {
	r := Length(1, 2)
	assert.NoError(t, r.Validate([]any{"a", "b"}))
	assert.Error(t, r.Validate([]any{"a", "b", "c"}))
}

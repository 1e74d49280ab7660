package foundation

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

var errSentinel = stderrors.New("sentinel")

func TestValidationResult_ToError(t *testing.T) {
	var vr ValidationResult
	vr.Valid = true
	require.NoError(t, vr.ToError("invalid"))

	vr.Add(NewValidationError("nav[0].link", "empty", "link must not be empty"))
	vr.Add(FieldError{Path: "nav[1]", Code: "cycle", Message: "cyclic navigation entry", Cause: errSentinel})

	err := vr.ToError("invalid navigation configuration")
	require.Error(t, err)

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryValidation, classified.Category())
	assert.Equal(t, "nav[0].link", classified.Path())
	assert.ErrorIs(t, err, errSentinel)
	assert.Contains(t, err.Error(), "nav[1]: cyclic navigation entry")

	fields := FieldErrorsOf(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "cycle", fields[1].Code)
}

func TestValidationResult_Combine(t *testing.T) {
	ok := Valid().Combine(Valid())
	assert.True(t, ok.Valid)

	bad := Valid().Combine(Invalid(NewValidationError("a", "x", "m")))
	assert.False(t, bad.Valid)
	assert.Len(t, bad.Errors, 1)
}

func TestOneOf(t *testing.T) {
	v := OneOf("local", "algolia")
	assert.True(t, v("search.provider", "local").Valid)

	res := v("search.provider", "elastic")
	require.False(t, res.Valid)
	assert.Equal(t, "search.provider", res.Errors[0].Path)
	assert.Equal(t, "elastic", res.Errors[0].Value)
}

func TestInRange(t *testing.T) {
	v := InRange(1, 6)
	assert.True(t, v("outline.level[0]", 2).Valid)
	assert.False(t, v("outline.level[1]", 7).Valid)
	assert.False(t, v("outline.level[0]", 0).Valid)
}

func TestFieldErrorsOf_Unclassified(t *testing.T) {
	assert.Nil(t, FieldErrorsOf(stderrors.New("plain")))
}

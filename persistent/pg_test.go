package persistent

import (
	"errors"
	"testing"

	"github.com/buzkaaclicker/folio"
	"github.com/stretchr/testify/assert"
)

type affected struct {
	rows int64
	err  error
}

func (r affected) LastInsertId() (int64, error) {
	return 0, errors.New("not supported")
}

func (r affected) RowsAffected() (int64, error) {
	return r.rows, r.err
}

func TestRequireAffected(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(requireAffected(affected{rows: 1}))
	assert.True(errors.Is(requireAffected(affected{rows: 0}), folio.ErrNotFound))

	err := requireAffected(affected{err: errors.New("driver gone")})
	assert.Error(err)
	assert.False(errors.Is(err, folio.ErrNotFound))
}

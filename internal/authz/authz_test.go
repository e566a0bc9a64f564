package authz_test

import (
	"testing"

	"loreforge/internal/apperr"
	"loreforge/internal/authz"
	"loreforge/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	admin    = &models.User{ID: "admin-id", Role: models.RoleAdmin}
	owner    = &models.User{ID: "owner-id", Role: models.RoleUser}
	stranger = &models.User{ID: "stranger-id", Role: models.RoleUser}
)

func TestCanRead(t *testing.T) {
	character := &models.Character{Name: "Aeris", AuthorID: owner.ID}
	draft := &models.Story{Title: "Origins", AuthorID: owner.ID, Published: false}
	published := &models.Story{Title: "Origins", AuthorID: owner.ID, Published: true}

	tests := []struct {
		name     string
		viewer   *models.User
		resource any
		want     bool
	}{
		{"anonymous reads entity without publish flag", nil, character, true},
		{"anonymous reads published story", nil, published, true},
		{"anonymous cannot read draft", nil, draft, false},
		{"stranger cannot read draft", stranger, draft, false},
		{"author reads own draft", owner, draft, true},
		{"admin reads any draft", admin, draft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanRead(tt.viewer, tt.resource))
		})
	}
}

func TestCanWrite(t *testing.T) {
	place := &models.Place{Name: "Eldenmoor", AuthorID: owner.ID}
	race := &models.Race{Name: "Elf"}

	tests := []struct {
		name     string
		viewer   *models.User
		resource authz.Owned
		wantErr  error
	}{
		{"anonymous is unauthorized", nil, place, apperr.ErrUnauthorized},
		{"stranger is forbidden", stranger, place, apperr.ErrForbidden},
		{"author may write", owner, place, nil},
		{"admin may write", admin, place, nil},
		{"ownerless resource rejects non-admin", owner, race, apperr.ErrForbidden},
		{"ownerless resource allows admin", admin, race, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.CanWrite(tt.viewer, tt.resource)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	story := &models.Story{Title: "Origins", AuthorID: owner.ID}

	assert.ErrorIs(t, authz.CanDelete(nil, story), apperr.ErrUnauthorized)
	assert.ErrorIs(t, authz.CanDelete(stranger, story), apperr.ErrForbidden)
	// delete is admin-only even for the author
	assert.ErrorIs(t, authz.CanDelete(owner, story), apperr.ErrForbidden)
	assert.NoError(t, authz.CanDelete(admin, story))
}

package repositories_test

import (
	"testing"

	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_OwnerScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewProjectRepository()
	owner := testutil.CreateUser(t, db, "owner", models.UserRoleMentee)
	other := testutil.CreateUser(t, db, "other", models.UserRoleMentee)

	project := &models.Project{UserID: owner.ID, Title: "Shop"}
	require.NoError(t, repo.Create(db, project))

	stored, err := repo.FindByID(db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, stored.TagList())

	foreign := *stored
	foreign.UserID = other.ID
	foreign.Title = "Hijacked"
	assert.ErrorIs(t, repo.Update(db, &foreign), repositories.ErrProjectNotFound)
	assert.ErrorIs(t, repo.Delete(db, other.ID, project.ID), repositories.ErrProjectNotFound)

	stored.SetTags([]string{"go", " sql "})
	require.NoError(t, repo.Update(db, stored))
	list, err := repo.FindByUser(db, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"go", "sql"}, list[0].TagList())

	require.NoError(t, repo.Delete(db, owner.ID, project.ID))
	_, err = repo.FindByID(db, project.ID)
	assert.ErrorIs(t, err, repositories.ErrProjectNotFound)
}

func TestCertificateRepository_OwnerScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewCertificateRepository()
	owner := testutil.CreateUser(t, db, "owner", models.UserRoleMentee)
	other := testutil.CreateUser(t, db, "other", models.UserRoleMentee)

	cert := &models.Certificate{UserID: owner.ID, Title: "CKA", Issuer: "CNCF"}
	require.NoError(t, repo.Create(db, cert))

	assert.ErrorIs(t, repo.Delete(db, other.ID, cert.ID), repositories.ErrCertificateNotFound)

	list, err := repo.FindByUser(db, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CKA", list[0].Title)

	require.NoError(t, repo.Delete(db, owner.ID, cert.ID))
	list, err = repo.FindByUser(db, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

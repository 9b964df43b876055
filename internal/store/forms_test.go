package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonbelle/salon-api/internal/domain/submission"
	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/models"
)

func createTestSubmission(t *testing.T, st *Store) *models.FormSubmission {
	t.Helper()

	sub := &models.FormSubmission{
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "555-0101",
		Service:       "Balayage",
		PreferredDate: "2026-09-15",
		PreferredTime: "14:00",
		Notes:         "First visit",
	}
	require.NoError(t, st.CreateFormSubmission(context.Background(), sub))
	return sub
}

func TestCreateFormSubmission_StatusForcedToNew(t *testing.T) {
	st := setupTestStore(t)

	sub := &models.FormSubmission{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Status: "completed", // callers cannot pick their status
	}
	require.NoError(t, st.CreateFormSubmission(context.Background(), sub))

	assert.Equal(t, string(submission.StatusNew), sub.Status)
}

func TestListFormSubmissions_StatusFilter(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	first := createTestSubmission(t, st)
	createTestSubmission(t, st)

	require.NoError(t, st.UpdateFormSubmissionStatus(ctx, first.ID, submission.StatusContacted))

	all, err := st.ListFormSubmissions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	contacted, err := st.ListFormSubmissions(ctx, "contacted")
	require.NoError(t, err)
	assert.Len(t, contacted, 1)
	assert.Equal(t, first.ID, contacted[0].ID)

	news, err := st.ListFormSubmissions(ctx, "new")
	require.NoError(t, err)
	assert.Len(t, news, 1)
}

func TestUpdateFormSubmissionStatus(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	sub := createTestSubmission(t, st)

	require.NoError(t, st.UpdateFormSubmissionStatus(ctx, sub.ID, submission.StatusConfirmed))

	// any recognized status can follow any other
	require.NoError(t, st.UpdateFormSubmissionStatus(ctx, sub.ID, submission.StatusNew))

	got, err := st.ListFormSubmissions(ctx, "new")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sub.ID, got[0].ID)
}

func TestUpdateFormSubmissionStatus_Invalid(t *testing.T) {
	st := setupTestStore(t)

	sub := createTestSubmission(t, st)

	err := st.UpdateFormSubmissionStatus(context.Background(), sub.ID, submission.Status("archived"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateFormSubmissionStatus_NotFound(t *testing.T) {
	st := setupTestStore(t)

	err := st.UpdateFormSubmissionStatus(context.Background(), 9999, submission.StatusContacted)
	assert.ErrorIs(t, err, ErrNotFound)
}

package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neo-explorer/internal/model"
)

func mustNEO(t *testing.T, designation, name, diameter, hazard string) *model.NearEarthObject {
	t.Helper()

	neo, err := model.NewNearEarthObject(designation, name, diameter, hazard)
	require.NoError(t, err)

	return neo
}

func mustApproach(t *testing.T, designation, ts string, distance, velocity float64) *model.CloseApproach {
	t.Helper()

	ca, err := model.NewCloseApproach(designation, ts, distance, velocity)
	require.NoError(t, err)

	return ca
}

func TestNew_Linking(t *testing.T) {
	t.Parallel()

	eros := mustNEO(t, "433", "Eros", "16.84", "N")
	apophis := mustNEO(t, "99942", "Apophis", "0.35", "Y")

	first := mustApproach(t, "433", "2020-Jan-01 12:00", 0.4, 5.1)
	second := mustApproach(t, "433", "2044-Jan-05 01:00", 0.2, 6.3)
	other := mustApproach(t, "99942", "2029-Apr-13 21:46", 0.00025, 7.4)

	db, err := New(
		[]*model.NearEarthObject{eros, apophis},
		[]*model.CloseApproach{first, other, second},
	)
	require.NoError(t, err)

	// Both sides of the association are wired, in arrival order.
	assert.Same(t, eros, first.NEO)
	assert.Same(t, eros, second.NEO)
	assert.Same(t, apophis, other.NEO)
	require.Len(t, eros.Approaches, 2)
	assert.Same(t, first, eros.Approaches[0])
	assert.Same(t, second, eros.Approaches[1])
	require.Len(t, apophis.Approaches, 1)

	for _, ca := range db.Approaches() {
		require.True(t, ca.Linked())
		assert.Equal(t, ca.Designation, ca.NEO.Designation)
	}

	assert.Zero(t, db.Unlinked())
	assert.Empty(t, db.Diagnostics().Findings)
}

func TestNew_DuplicateDesignation(t *testing.T) {
	t.Parallel()

	db, err := New([]*model.NearEarthObject{
		mustNEO(t, "433", "Eros", "16.84", "N"),
		mustNEO(t, "433", "", "", ""),
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateDesignation))
	assert.Contains(t, err.Error(), "433")
	assert.Nil(t, db)
}

func TestNew_UnlinkedApproach(t *testing.T) {
	t.Parallel()

	eros := mustNEO(t, "433", "Eros", "16.84", "N")
	linked := mustApproach(t, "433", "2020-Jan-01 12:00", 0.4, 5.1)
	orphan := mustApproach(t, "99999", "2020-Feb-02 08:30", 0.1, 3.2)

	db, err := New([]*model.NearEarthObject{eros}, []*model.CloseApproach{linked, orphan})
	require.NoError(t, err)

	// The orphan stays unlinked; the load keeps going.
	assert.False(t, orphan.Linked())
	assert.True(t, linked.Linked())
	assert.Equal(t, 1, db.Unlinked())
	assert.Equal(t, 1, db.Diagnostics().Count(CodeUnlinkedApproach))

	require.Len(t, db.Diagnostics().Findings, 1)
	finding := db.Diagnostics().Findings[0]
	assert.Contains(t, finding.Message, "99999")
	assert.Equal(t, 2, finding.Record)
}

func TestGetByDesignation(t *testing.T) {
	t.Parallel()

	eros := mustNEO(t, "433", "Eros", "16.84", "N")
	db, err := New([]*model.NearEarthObject{eros}, nil)
	require.NoError(t, err)

	got, ok := db.GetByDesignation("433")
	require.True(t, ok)
	assert.Same(t, eros, got)

	_, ok = db.GetByDesignation("434")
	assert.False(t, ok)
}

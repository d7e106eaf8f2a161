package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neo-explorer/internal/database"
	"neo-explorer/internal/model"
)

// linkedFixture builds a small linked graph: 433 Eros with one approach and
// an unnamed, unmeasured object with one approach.
func linkedFixture(t *testing.T) *database.NEODatabase {
	t.Helper()

	eros, err := model.NewNearEarthObject("433", "Eros", "16.84", "N")
	require.NoError(t, err)
	unnamed, err := model.NewNearEarthObject("2010 PK9", "", "", "")
	require.NoError(t, err)

	first, err := model.NewCloseApproach("433", "2020-Jan-01 12:00", 0.4, 5.1)
	require.NoError(t, err)
	second, err := model.NewCloseApproach("2010 PK9", "2020-Jul-14 03:20", 0.025, 19.3)
	require.NoError(t, err)

	db, err := database.New(
		[]*model.NearEarthObject{eros, unnamed},
		[]*model.CloseApproach{first, second},
	)
	require.NoError(t, err)

	return db
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	db := linkedFixture(t)
	path := filepath.Join(t.TempDir(), "results.csv")

	require.NoError(t, WriteCSV(path, db.Approaches()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"datetime_utc", "distance_au", "velocity_km_s",
		"designation", "name", "diameter_km", "potentially_hazardous",
	}, rows[0])

	assert.Equal(t, []string{
		"2020-01-01 12:00", "0.4", "5.1", "433 Eros", "Eros", "16.84", "false",
	}, rows[1])

	// No-name serializes as a true empty field, unknown diameter as NaN.
	assert.Equal(t, "2010 PK9", rows[2][3])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "NaN", rows[2][5])
	assert.Equal(t, "false", rows[2][6])
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	db := linkedFixture(t)
	path := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, WriteJSON(path, db.Approaches()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []struct {
		DatetimeUTC string  `json:"datetime_utc"`
		DistanceAU  float64 `json:"distance_au"`
		VelocityKMS float64 `json:"velocity_km_s"`
		NEO         struct {
			Designation string   `json:"designation"`
			Name        string   `json:"name"`
			DiameterKM  *float64 `json:"diameter_km"`
			Hazardous   bool     `json:"potentially_hazardous"`
		} `json:"neo"`
	}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)

	assert.Equal(t, "2020-01-01 12:00", records[0].DatetimeUTC)
	assert.InDelta(t, 0.4, records[0].DistanceAU, 1e-9)
	assert.InDelta(t, 5.1, records[0].VelocityKMS, 1e-9)
	assert.Equal(t, "433", records[0].NEO.Designation)
	assert.Equal(t, "Eros", records[0].NEO.Name)
	require.NotNil(t, records[0].NEO.DiameterKM)
	assert.InDelta(t, 16.84, *records[0].NEO.DiameterKM, 1e-9)
	assert.False(t, records[0].NEO.Hazardous)

	// Sentinels cross the boundary as empty name and null diameter.
	assert.Equal(t, "", records[1].NEO.Name)
	assert.Nil(t, records[1].NEO.DiameterKM)
}

func TestWriteFile_ByExtension(t *testing.T) {
	t.Parallel()

	db := linkedFixture(t)
	dir := t.TempDir()

	require.NoError(t, WriteFile(filepath.Join(dir, "out.csv"), db.Approaches()))
	require.NoError(t, WriteFile(filepath.Join(dir, "out.JSON"), db.Approaches()))

	err := WriteFile(filepath.Join(dir, "out.xml"), db.Approaches())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output extension")
}

func TestWrite_UnlinkedApproachRejected(t *testing.T) {
	t.Parallel()

	orphan, err := model.NewCloseApproach("99999", "2020-Jan-01 12:00", 0.4, 5.1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.csv")
	require.Error(t, WriteCSV(path, []*model.CloseApproach{orphan}))
	require.Error(t, WriteJSON(filepath.Join(t.TempDir(), "results.json"), []*model.CloseApproach{orphan}))
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/oparl"
	"github.com/civica-labs/ratsdata-cli/internal/adapters/driven/storage/memory"
	"github.com/civica-labs/ratsdata-cli/internal/core/domain"
	"github.com/civica-labs/ratsdata-cli/internal/core/services"
)

const agendaItemsDoc = `{
  "data": [
    {"id": "i1", "name": "Haushaltssatzung 2023", "created": "2023-01-12T18:00:00+01:00", "result": "Einstimmig beschlossen"},
    {"id": "i2", "name": "Radwegekonzept", "created": "2023-02-03T17:30:00+01:00"},
    {"id": "i3", "name": "Bebauungsplan Sued", "created": "2023-02-20", "result": "Kenntnis genommen"},
    {"id": "i4", "name": "Spielplatzsanierung", "created": "2023-03-07", "result": "Mehrheitlich beschlossen"}
  ]
}`

const peopleDoc = `{
  "data": [
    {"id": "p1", "name": "Alice Weber"},
    {"id": "p2", "name": "Bruno Keller"}
  ]
}`

const organizationsDoc = `{
  "data": [
    {"id": "o1", "name": "Fraktion der Gruenen"},
    {"id": "o2", "name": "Fraktion der SPD"}
  ]
}`

const membershipsDoc = `{
  "data": [
    {"id": "m1", "person": "p1", "organization": "o1", "role": "Vorsitz", "startDate": "2020-11-01"},
    {"id": "m2", "person": "p2", "organization": "o2", "role": "Mitglied", "startDate": "2019-06-15"},
    {"id": "m3", "person": "p9", "organization": "o9"}
  ]
}`

// testSourceDir holds the fixture directory of the current test, so tests
// can remove or rewrite individual source files.
var testSourceDir string

// setupTestServices wires the command tree against temp source fixtures
// and an in-memory config store. The returned cleanup restores the
// untouched package state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	dir := t.TempDir()
	testSourceDir = dir
	write := func(name, doc string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		return path
	}

	settings := domain.DefaultAppSettings()
	settings.Sources = domain.SourceSettings{
		AgendaItems:   write("agenda_items.json", agendaItemsDoc),
		People:        write("people.json", peopleDoc),
		Organizations: write("organizations.json", organizationsDoc),
		Memberships:   write("memberships.json", membershipsDoc),
	}

	configStore := memory.NewConfigStore()
	settingsSvc := services.NewSettingsService(configStore)
	require.NoError(t, settingsSvc.Save(settings))

	dataset := services.NewDatasetService(oparl.NewReader(), memory.NewSnapshotStore(), settings)

	settingsService = settingsSvc
	datasetService = dataset
	decisionService = services.NewDecisionService(dataset, settings)
	memberService = services.NewMemberService(dataset)
	syntheticSvc = services.NewSyntheticService(settings)
	statsService = services.NewStatsService(decisionService, memberService, syntheticSvc)
	servicesReady = true

	return func() {
		testSourceDir = ""
		settingsService = nil
		datasetService = nil
		decisionService = nil
		memberService = nil
		syntheticSvc = nil
		statsService = nil
		servicesReady = false
		resetFlags(rootCmd)

		decisionsFrom, decisionsTo = "", ""
		decisionsStatuses = nil
		decisionsActionable, decisionsJSON = false, false
		membersOrgs = nil
		membersJSON = false
		budgetsYearFrom, budgetsYearTo = 0, 0
		budgetsDepartments = nil
		budgetsJSON = false
		projectsStatuses = nil
		projectsJSON = false
		servicesYearFrom, servicesYearTo = 0, 0
		servicesTypes = nil
		servicesJSON = false
		demographicsYearFrom, demographicsYearTo = 0, 0
		demographicsJSON = false
		statsActionable = false
		statsYearFrom, statsYearTo = 0, 0
	}
}

// resetFlags clears the Changed markers in the command tree so one
// test's flags cannot leak into the next. Values are reset separately;
// slice flags append on repeated Set calls.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

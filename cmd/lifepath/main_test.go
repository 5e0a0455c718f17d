package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cli runs commands against an isolated config and json store.
type cli struct {
	t      *testing.T
	dir    string
	config string
	store  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return &cli{
		t:      t,
		dir:    dir,
		config: filepath.Join(dir, "config", "lifepath", "config.toml"),
		store:  filepath.Join(dir, "scenarios.json"),
	}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--store", "json", "--store-path", c.store, "--log-level", "warn"}, args...))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, strings.Join(args, " "))
	return out
}

// seed writes the example document and stores both scenarios, returning their ids.
func (c *cli) seed() (path string, ids []string) {
	c.t.Helper()
	path = filepath.Join(c.dir, "scenarios.yaml")
	out := c.mustRun("scenario", "example", "-o", path)
	require.Contains(c.t, out, "Example scenarios written to "+path)

	out = c.mustRun("scenario", "add", path)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(c.t, lines, 2)
	for _, line := range lines {
		id, _, ok := strings.Cut(line, "\t")
		require.True(c.t, ok, line)
		ids = append(ids, id)
	}
	assert.True(c.t, strings.HasSuffix(lines[0], "Software Engineer Path"))
	assert.True(c.t, strings.HasSuffix(lines[1], "Graduate School Path"))
	return path, ids
}

func TestScenarioLifecycle(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("scenario", "list")
	assert.Contains(t, out, "No scenarios stored")

	_, ids := c.seed()
	out = c.mustRun("scenario", "list")
	assert.Contains(t, out, "Software Engineer Path")
	assert.Contains(t, out, "Graduate School Path")
	assert.Contains(t, out, "$60,000")

	out = c.mustRun("scenario", "show", ids[0])
	assert.Contains(t, out, "name: Software Engineer Path")
	assert.Contains(t, out, "id: "+ids[0])

	out = c.mustRun("scenario", "delete", ids[0])
	assert.Contains(t, out, "Deleted "+ids[0])

	_, err := c.run("scenario", "show", ids[0])
	assert.Error(t, err)

	out = c.mustRun("scenarios", "list")
	assert.NotContains(t, out, "Software Engineer Path")
}

func TestScenarioExampleRefusesOverwrite(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(c.dir, "example.yaml")
	c.mustRun("scenario", "example", "-o", path)
	_, err := c.run("scenario", "example", "-o", path)
	assert.Error(t, err)

	out := c.mustRun("scenario", "example")
	assert.Contains(t, out, "Software Engineer Path")
}

func TestScenarioUpdateKeepsID(t *testing.T) {
	c := newCLI(t)
	path, ids := c.seed()

	out := c.mustRun("scenario", "update", ids[0], path, "--name", "Graduate School Path")
	assert.Equal(t, ids[0]+"\tGraduate School Path\n", out)

	out = c.mustRun("scenario", "show", ids[0])
	assert.Contains(t, out, "name: Graduate School Path")
}

func TestSimulateStoredScenario(t *testing.T) {
	c := newCLI(t)
	_, ids := c.seed()

	out := c.mustRun("simulate", ids[0], "-f", "console-lite", "--years", "5")
	assert.Contains(t, out, "LIFE PATH SCENARIO SUMMARY")
	assert.Contains(t, out, "Software Engineer Path: Age 22-27")
	assert.NotContains(t, out, "Graduate School Path")
}

func TestSimulateFileRunsEveryScenario(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(c.dir, "doc.yaml")
	c.mustRun("scenario", "example", "-o", path)

	out := c.mustRun("simulate", path, "-f", "csv", "--years", "3")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Software Engineer Path,22,25,"))
	assert.True(t, strings.HasPrefix(lines[2], "Graduate School Path,22,25,"))

	out = c.mustRun("simulate", path, "--name", "Graduate School Path", "-f", "json", "--years", "2")
	assert.Contains(t, out, `"name": "Graduate School Path"`)
	assert.NotContains(t, out, "Software Engineer Path")
}

func TestSimulateRejectsBadFlags(t *testing.T) {
	c := newCLI(t)
	_, ids := c.seed()

	_, err := c.run("simulate", ids[0], "--inflation", "lots")
	assert.Error(t, err)
	_, err = c.run("simulate", ids[0], "--salary-growth", "sideways")
	assert.Error(t, err)
	_, err = c.run("simulate", ids[0], "-f", "pdf")
	assert.Error(t, err)
	_, err = c.run("simulate", "no-such-id")
	assert.Error(t, err)
	_, err = c.run("simulate", ids[0], "--years", "151")
	assert.ErrorContains(t, err, "years must not exceed 150")
}

func TestSimulateWritesReportFiles(t *testing.T) {
	c := newCLI(t)
	_, ids := c.seed()
	reports := filepath.Join(c.dir, "reports")

	out := c.mustRun("simulate", ids[1], "-f", "all", "-o", reports, "--years", "4")
	assert.Equal(t, 3, strings.Count(out, "Report written to "+reports))

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	exts := map[string]bool{}
	for _, e := range entries {
		exts[filepath.Ext(e.Name())] = true
	}
	assert.True(t, exts[".txt"] && exts[".csv"] && exts[".html"], "%v", exts)
}

func TestCompareStoredAndFile(t *testing.T) {
	c := newCLI(t)
	path, ids := c.seed()

	out := c.mustRun("compare", ids[0], ids[1], "-f", "console-lite", "--years", "10")
	assert.Contains(t, out, "Net worth difference")
	assert.Contains(t, out, "Software Engineer Path: Age 22-32")
	assert.Contains(t, out, "Graduate School Path: Age 22-32")

	out = c.mustRun("compare", "Software Engineer Path", "Graduate School Path", "--file", path, "-f", "yaml", "--years", "10")
	assert.Contains(t, out, "comparison:")
	assert.Contains(t, out, "first: Software Engineer Path")

	_, err := c.run("compare", "Software Engineer Path", "Nobody", "--file", path)
	assert.Error(t, err)
}

func TestMilestones(t *testing.T) {
	c := newCLI(t)
	_, ids := c.seed()

	out := c.mustRun("milestones", ids[0], "--years", "30", "--threshold", "1")
	assert.Contains(t, out, "Software Engineer Path: net worth milestones")
	assert.Contains(t, out, "Net worth")
	assert.Contains(t, out, "$1")

	out = c.mustRun("milestones", ids[0], "--years", "2", "--threshold", "1000000000")
	assert.Contains(t, out, "No threshold reached within 2 years")

	_, err := c.run("milestones", ids[0], "--threshold", "a lot")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	c := newCLI(t)
	path, ids := c.seed()

	out := c.mustRun("sweep", ids[0], "--parameter", "savings_rate", "--values", "0.1,0.3", "--years", "5")
	assert.Contains(t, out, "Software Engineer Path: savings_rate sensitivity")
	assert.Contains(t, out, "0.1")
	assert.Contains(t, out, "0.3")

	out = c.mustRun("sweep", path, "--name", "Graduate School Path", "--parameter", "tax_rate", "--from", "0.1", "--to", "0.3", "--step", "0.1")
	assert.Contains(t, out, "Graduate School Path: tax_rate sensitivity")
	assert.Contains(t, out, "0.2")

	_, err := c.run("sweep", ids[0], "--parameter", "salary")
	assert.Error(t, err, "no values")
	_, err = c.run("sweep", ids[0], "--parameter", "luck", "--values", "1")
	assert.Error(t, err)
	_, err = c.run("sweep", ids[0], "--parameter", "tax_rate", "--from", "0.3", "--to", "0.1", "--step", "0.1")
	assert.Error(t, err)
	_, err = c.run("sweep", path, "--parameter", "tax_rate", "--values", "0.2")
	assert.Error(t, err, "file with two scenarios needs --name")
}

func TestConfigInitAndShow(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("config", "show")
	assert.Contains(t, out, "Status: using defaults (no config file)")
	assert.Contains(t, out, "Driver: json")

	out = c.mustRun("config", "init")
	assert.Contains(t, out, "Config written to "+c.config)
	_, err := os.Stat(c.config)
	require.NoError(t, err)

	_, err = c.run("config", "init")
	assert.Error(t, err)
	c.mustRun("config", "init", "--force")

	out = c.mustRun("config", "show")
	assert.Contains(t, out, "Status: loaded")
	assert.Contains(t, out, "[Simulation]")
	assert.Contains(t, out, "Tax rate:")
	assert.Contains(t, out, "Max years:        150")
	assert.Contains(t, out, "Max sweep points: 200")
}

func TestConfigFileDefaultsApply(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(c.config), 0o755))
	require.NoError(t, os.WriteFile(c.config, []byte(`
[simulation]
years = 3
inflation_rate = "0.02"
tax_rate = "0.2"

[output]
format = "console-lite"
currency_symbol = "€"
`), 0o600))
	_, ids := c.seed()

	out := c.mustRun("simulate", ids[0])
	assert.Contains(t, out, "Software Engineer Path: Age 22-25 NetWorth=-€8,970.16")
}

func TestRejectsUnknownStore(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--store", "cassette", "scenario", "list"})
	assert.Error(t, root.Execute())
}

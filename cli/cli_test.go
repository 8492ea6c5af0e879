package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/Konsultn-Engineering/hdbpp/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hdbppq", cmd.Use)

	for _, name := range []string{"table", "statement", "dump"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "table")
	assert.ErrorContains(t, err, "invalid format")
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "--format-type", "spectrum", "--type", "devdouble")
	require.NoError(t, err)
	assert.Equal(t, "att_array_devdouble\n", out)

	out, err = run(t, "table", "--format-type", "image", "--type", "DEV_UCHAR", "--write", "read_write")
	require.NoError(t, err)
	assert.Equal(t, "att_image_devuchar\n", out)
}

func TestTableCommandJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "table", "--type", "ulong64")
	require.NoError(t, err)

	var res tableResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "att_scalar_devulong64", res.Table)
	assert.Equal(t, "Traits(write: READ, format: SCALAR, type: DEV_ULONG64)", res.Traits)
}

func TestTableCommandUnknownType(t *testing.T) {
	_, err := run(t, "table", "--type", "devquaternion")
	assert.ErrorIs(t, err, traits.ErrUnsupported)
}

func TestStatementCommand(t *testing.T) {
	out, err := run(t, "statement", "store-ttl")
	require.NoError(t, err)
	assert.Equal(t, query.StoreTTLStatement()+"\n", out)

	out, err = run(t, "statement", "data-event", "--write", "read_write", "--format-type", "spectrum", "--type", "double")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO att_array_devdouble (att_conf_id,data_time,value_r,value_w,quality) VALUES ($1,TO_TIMESTAMP($2),$3::float8[],$4::float8[],$5)\n", out)

	out, err = run(t, "statement", "data-event-name", "--write", "read_write", "--format-type", "spectrum", "--type", "double")
	require.NoError(t, err)
	assert.Equal(t, "StoreDataEvent_Write_3_Format_1_Type_5\n", out)
}

func TestStatementCommandLazyConfig(t *testing.T) {
	t.Setenv("HDBPP_PRECOMPUTE", "false")

	out, err := run(t, "statement", "data-event-error", "--type", "long")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO att_scalar_devlong (att_conf_id,data_time,quality,att_error_desc_id) VALUES ($1,TO_TIMESTAMP($2),$3,$4)\n", out)
}

func TestStatementCommandUnknownFamily(t *testing.T) {
	_, err := run(t, "statement", "drop-everything")
	assert.ErrorContains(t, err, "unknown statement family")
}

func TestFamilies(t *testing.T) {
	families := Families()
	assert.Len(t, families, len(query.StableStatements())+4)
	assert.Contains(t, families, "fetch-traits")
	assert.Contains(t, families, "data-event-error-name")
	assert.IsIncreasing(t, families)
}

func TestDumpCommand(t *testing.T) {
	out, err := run(t, "dump")
	require.NoError(t, err)

	assert.Contains(t, out, "-- store-attribute\n")
	assert.Contains(t, out, "StoreDataEvent_Write_3_Format_1_Type_5: INSERT INTO att_array_devdouble")
	assert.Contains(t, out, "168 combinations over 42 tables")
	assert.True(t, strings.HasSuffix(out, "QueryBuilder(cached data_event: name/query 168/168, data_event_error: name/query 168/168)\n"))
}

func TestDumpCommandJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "dump")
	require.NoError(t, err)

	var res dumpResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Traits, len(traits.All()))
	assert.Equal(t, 42, res.Tables)
	assert.Equal(t, query.StableStatements(), res.Stable)
}

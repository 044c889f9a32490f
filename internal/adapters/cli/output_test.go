// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/janderssonse/pakdrop/internal/adapters/cli"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := cli.NewOutputAdapterWithWriter(&buf, cli.TextFormat, false)

	require.NoError(t, adapter.Success("done", nil))
	assert.Equal(t, "done\n", buf.String())
}

func TestSuccessJSONFormatEmitsData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := cli.NewOutputAdapterWithWriter(&buf, cli.JSONFormat, false)

	result := domain.InspectResult{
		Path:        "/tmp/foo.deb",
		Metadata:    domain.NewMetadata(domain.FamilyDebian),
		Disposition: domain.DispositionNotInstalled,
	}
	require.NoError(t, adapter.Success("ignored", result))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/tmp/foo.deb", decoded["path"])
	assert.Equal(t, "not-installed", decoded["disposition"])
}

func TestErrorShownInQuietMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := cli.NewOutputAdapterWithWriter(&buf, cli.TextFormat, true)

	require.NoError(t, adapter.Error("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestInfoSuppressedInQuietMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := cli.NewOutputAdapterWithWriter(&buf, cli.TextFormat, true)

	require.NoError(t, adapter.Info("chatter"))
	assert.Empty(t, buf.String())
	assert.True(t, adapter.IsQuiet())
}

func TestTableTextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := cli.NewOutputAdapterWithWriter(&buf, cli.TextFormat, false)

	require.NoError(t, adapter.Table(
		[]string{"Field", "Value"},
		[][]string{{"Name", "hello"}, {"Version", "2.10"}},
	))

	output := buf.String()
	assert.Contains(t, output, "Field")
	assert.Contains(t, output, "-----")
	assert.Contains(t, output, "hello")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/source"
	"github.com/MKhiriev/go-layered-config/tree"
)

type mode string

type encodeConfig struct {
	Mode   mode              `koanf:"mode"`
	Bind   net.IP            `koanf:"bind"`
	Wait   time.Duration     `koanf:"wait"`
	Labels map[string]string `koanf:"labels"`
	Peers  []string          `koanf:"peers"`
	Limit  *int              `koanf:"limit"`
}

func TestEncode_RoundTripsEveryFormat(t *testing.T) {
	for _, f := range codec.Supported() {
		t.Run(f.String(), func(t *testing.T) {
			want := Default[appConfig]()
			want.Debug = true
			want.Tags = []string{"x", "y"}

			data, err := Encode(want, f)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "app."+f.String())
			require.NoError(t, os.WriteFile(path, data, 0o644))

			got, err := Load[appConfig]([]source.Source{source.File{Format: f, Path: path}}, nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(Default[appConfig](), codec.Format("ini"))

	assert.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestToTree_PlainValues(t *testing.T) {
	limit := 5
	got, err := toTree(&encodeConfig{
		Mode:   "fast",
		Bind:   net.ParseIP("127.0.0.1"),
		Wait:   90 * time.Second,
		Labels: map[string]string{"team": "core"},
		Limit:  &limit,
	}, DefaultTagName)

	require.NoError(t, err)
	assert.Equal(t, tree.Tree{
		"mode":   "fast",
		"bind":   "127.0.0.1",
		"wait":   "1m30s",
		"labels": map[string]any{"team": "core"},
		"peers":  []any{},
		"limit":  5,
	}, got)
}

func TestToTree_NilPointerIsNil(t *testing.T) {
	got, err := toTree(&encodeConfig{}, DefaultTagName)

	require.NoError(t, err)
	assert.Nil(t, got["limit"])
	assert.Equal(t, map[string]any{}, got["labels"])
}

func TestDecode_ConvertsEncodedValues(t *testing.T) {
	in := tree.Tree{
		"mode":   "slow",
		"bind":   "10.0.0.1",
		"wait":   "2s",
		"labels": map[string]any{"a": "b"},
		"peers":  "p1,p2",
		"limit":  "7",
	}

	var got encodeConfig
	require.NoError(t, decode(in, &got, newOptions(nil)))

	assert.Equal(t, mode("slow"), got.Mode)
	assert.True(t, net.ParseIP("10.0.0.1").Equal(got.Bind))
	assert.Equal(t, 2*time.Second, got.Wait)
	assert.Equal(t, map[string]string{"a": "b"}, got.Labels)
	assert.Equal(t, []string{"p1", "p2"}, got.Peers)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 7, *got.Limit)
}

type Base struct {
	Region string `koanf:"region"`
}

type timedConfig struct {
	Base
	Started time.Time     `koanf:"started"`
	Every   time.Duration `koanf:"every"`
	Extra   string        `koanf:"extra,omitempty"`
	Skipped string        `koanf:"-"`
}

func TestToTree_StructLeavesAndEmbedding(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := toTree(&timedConfig{
		Base:    Base{Region: "eu"},
		Started: started,
		Every:   time.Minute,
		Skipped: "x",
	}, DefaultTagName)

	require.NoError(t, err)
	assert.Equal(t, tree.Tree{
		"region":  "eu",
		"started": "2026-03-01T12:00:00Z",
		"every":   "1m0s",
	}, got)
}

func TestToTree_LowerCasesKeys(t *testing.T) {
	type cased struct {
		Port     int
		HTTPPort int `koanf:"httpPort"`
	}

	got, err := toTree(&cased{Port: 1, HTTPPort: 2}, DefaultTagName)

	require.NoError(t, err)
	assert.Equal(t, tree.Tree{"port": 1, "httpport": 2}, got)
}

func TestEncode_TimeRoundTrips(t *testing.T) {
	type stamped struct {
		Started time.Time `koanf:"started"`
	}
	want := &stamped{Started: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	data, err := Encode(want, codec.JSON)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load[stamped]([]source.Source{source.File{Format: codec.JSON, Path: path}}, nil)
	require.NoError(t, err)
	assert.True(t, want.Started.Equal(got.Started))
}

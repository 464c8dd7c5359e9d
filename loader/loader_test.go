// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-layered-config/codec"
	"github.com/MKhiriev/go-layered-config/internal/mock"
	"github.com/MKhiriev/go-layered-config/source"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type serverConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

type appConfig struct {
	Name    string        `koanf:"name"`
	Debug   bool          `koanf:"debug"`
	Timeout time.Duration `koanf:"timeout"`
	Tags    []string      `koanf:"tags"`
	Server  serverConfig  `koanf:"server"`
}

func (c *appConfig) SetDefaults() {
	c.Name = "app"
	c.Timeout = 30 * time.Second
	c.Tags = []string{"default"}
	c.Server = serverConfig{Host: "localhost", Port: 8080}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load[appConfig]([]source.Source{source.Default{}}, nil)

	require.NoError(t, err)
	assert.Equal(t, Default[appConfig](), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("LCLOAD_SERVER__PORT", "9000")
	t.Setenv("LCLOAD_DEBUG", "true")
	t.Setenv("LCLOAD_TIMEOUT", "1m")
	t.Setenv("LCLOAD_TAGS", "a,b")
	file := writeTestFile(t, "app.yaml", "name: from-file\nserver:\n  host: example.com\n  port: 1\n")

	cfg, err := Load[appConfig]([]source.Source{
		source.Env{Prefix: "LCLOAD_"},
		source.File{Format: codec.YAML, Path: file},
		source.Default{},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, &appConfig{
		Name:    "from-file",
		Debug:   true,
		Timeout: time.Minute,
		Tags:    []string{"a", "b"},
		Server:  serverConfig{Host: "example.com", Port: 9000},
	}, cfg)
}

func TestLoad_MissingFileFallsThroughToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.TOML, Path: missing},
		source.Default{},
	}, &source.File{Format: codec.TOML, Path: missing})

	require.NoError(t, err)
	assert.Equal(t, Default[appConfig](), cfg)
	assert.NoFileExists(t, missing)
}

func TestLoad_UnknownKeysAreIgnored(t *testing.T) {
	file := writeTestFile(t, "app.json", `{"name": "x", "unused": {"deep": 1}}`)

	cfg, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.JSON, Path: file},
		source.Default{},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Name)
}

func TestLoad_MalformedFileIsResolutionError(t *testing.T) {
	file := writeTestFile(t, "app.toml", "name = [")
	fallback := filepath.Join(t.TempDir(), "fallback.toml")

	cfg, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.TOML, Path: file},
		source.Default{},
	}, &source.File{Format: codec.TOML, Path: fallback})

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, source.ErrSourceResolution)
	assert.ErrorIs(t, err, source.ErrFileFormatInvalid)
	assert.NotErrorIs(t, err, ErrDeserialization)
	assert.NoFileExists(t, fallback)
}

func TestLoad_MissingFieldWithoutFallback(t *testing.T) {
	file := writeTestFile(t, "app.yaml", "name: only-name\n")

	cfg, err := Load[appConfig]([]source.Source{source.File{Format: codec.YAML, Path: file}}, nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.NotErrorIs(t, err, ErrDefaultConfigGenerated)
}

func TestLoad_TypeMismatchIsDeserializationError(t *testing.T) {
	file := writeTestFile(t, "app.json", `{"server": {"port": "not-a-number"}}`)

	_, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.JSON, Path: file},
		source.Default{},
	}, nil)

	assert.ErrorIs(t, err, ErrDeserialization)
}

func TestLoad_FractionalNumberForIntegerField(t *testing.T) {
	file := writeTestFile(t, "app.json", `{"server": {"port": 1.5}}`)

	cfg, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.JSON, Path: file},
		source.Default{},
	}, nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrDeserialization)
}

func TestLoad_WholeNumberFloatForIntegerField(t *testing.T) {
	file := writeTestFile(t, "app.json", `{"server": {"port": 9000.0}}`)

	cfg, err := Load[appConfig]([]source.Source{
		source.File{Format: codec.JSON, Path: file},
		source.Default{},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

type mixedCaseConfig struct {
	Port     int
	HTTPPort int    `koanf:"httpPort"`
	Name     string `koanf:"Name"`
}

func (c *mixedCaseConfig) SetDefaults() {
	c.Port = 8080
	c.HTTPPort = 80
	c.Name = "default"
}

func TestLoad_HigherSourceWinsRegardlessOfKeyCase(t *testing.T) {
	t.Setenv("LCCASE_PORT", "9000")
	t.Setenv("LCCASE_HTTPPORT", "9001")
	file := writeTestFile(t, "app.yaml", "NAME: from-file\n")

	cfg, err := Load[mixedCaseConfig]([]source.Source{
		source.Env{Prefix: "LCCASE_"},
		source.File{Format: codec.YAML, Path: file},
		source.Default{},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, &mixedCaseConfig{Port: 9000, HTTPPort: 9001, Name: "from-file"}, cfg)
}

func TestLoad_PartialKeepsZeroValues(t *testing.T) {
	cfg, err := Load[appConfig](nil, nil, WithPartial())

	require.NoError(t, err)
	assert.Equal(t, &appConfig{}, cfg)
}

func TestLoad_AllAbsentIsStrictFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load[appConfig]([]source.Source{source.File{Format: codec.JSON, Path: missing}}, nil)

	assert.ErrorIs(t, err, ErrDeserialization)
}

func TestLoad_IsIdempotent(t *testing.T) {
	t.Setenv("LCIDEM_NAME", "env")
	sources := []source.Source{source.Env{Prefix: "LCIDEM_"}, source.Default{}}

	first, err := Load[appConfig](sources, nil)
	require.NoError(t, err)
	second, err := Load[appConfig](sources, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_WithTagName(t *testing.T) {
	type tagged struct {
		Addr string `cfg:"listen_addr"`
	}
	file := writeTestFile(t, "app.yaml", "listen_addr: \":8080\"\n")

	cfg, err := Load[tagged]([]source.Source{source.File{Format: codec.YAML, Path: file}}, nil, WithTagName("cfg"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_WithoutDefaulterUsesZeroValue(t *testing.T) {
	type plainConfig struct {
		Retries int    `koanf:"retries"`
		Mode    string `koanf:"mode"`
	}

	cfg, err := Load[plainConfig]([]source.Source{source.Default{}}, nil)

	require.NoError(t, err)
	assert.Equal(t, &plainConfig{}, cfg)
}

// ── fallback ──────────────────────────────────────────────────────────────────

func TestLoad_FallbackWritesDefaultFile(t *testing.T) {
	fallback := source.File{Format: codec.TOML, Path: filepath.Join(t.TempDir(), "nested", "dir", "app.toml")}

	cfg, err := Load[appConfig]([]source.Source{fallback}, &fallback)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrDefaultConfigGenerated)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.NotErrorIs(t, err, ErrDefaultConfigGenerationFailed)

	var fe *FallbackError
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.Generated())
	assert.Equal(t, fallback, fe.Target)
	require.FileExists(t, fallback.Path)

	// The generated file alone must load into the default value.
	reloaded, err := Load[appConfig]([]source.Source{fallback}, &fallback)
	require.NoError(t, err)
	assert.Equal(t, Default[appConfig](), reloaded)
}

func TestLoad_FallbackOverwritesExistingFile(t *testing.T) {
	path := writeTestFile(t, "app.json", `{"name": "incomplete"}`)
	fallback := source.File{Format: codec.JSON, Path: path}

	_, err := Load[appConfig]([]source.Source{fallback}, &fallback)
	require.ErrorIs(t, err, ErrDefaultConfigGenerated)

	reloaded, err := Load[appConfig]([]source.Source{fallback}, nil)
	require.NoError(t, err)
	assert.Equal(t, Default[appConfig](), reloaded)
}

func TestLoad_FallbackWriteFailure(t *testing.T) {
	blocker := writeTestFile(t, "blocker", "not a directory")
	fallback := source.File{Format: codec.YAML, Path: filepath.Join(blocker, "app.yaml")}

	_, err := Load[appConfig](nil, &fallback)

	assert.ErrorIs(t, err, ErrDefaultConfigGenerationFailed)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.NotErrorIs(t, err, ErrDefaultConfigGenerated)

	var fe *FallbackError
	require.ErrorAs(t, err, &fe)
	assert.False(t, fe.Generated())
}

func TestLoad_FallbackEncodeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("boom")
	c := mock.NewMockCodec(ctrl)
	c.EXPECT().Marshal(gomock.Any()).Return(nil, boom)

	path := filepath.Join(t.TempDir(), "app.yaml")
	_, err := Load[appConfig](nil, &source.File{Format: codec.YAML, Path: path}, WithCodec(codec.YAML, c))

	assert.ErrorIs(t, err, ErrDefaultConfigGenerationFailed)
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, path)
}

func TestLoad_FallbackUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")

	_, err := Load[appConfig](nil, &source.File{Format: codec.Format("ini"), Path: path})

	assert.ErrorIs(t, err, ErrDefaultConfigGenerationFailed)
	assert.ErrorIs(t, err, codec.ErrUnsupported)
	assert.NoFileExists(t, path)
}

// ── Inspect ───────────────────────────────────────────────────────────────────

func TestInspect_ReportsOrigins(t *testing.T) {
	t.Setenv("LCINSP_SERVER__PORT", "9000")
	sources := []source.Source{source.Env{Prefix: "LCINSP_"}, source.Default{}}

	merged, err := Inspect[appConfig](sources)

	require.NoError(t, err)
	assert.Equal(t, "9000", merged.Tree.Get("server.port"))
	assert.Equal(t, "localhost", merged.Tree.Get("server.host"))
	assert.Equal(t, source.Env{Prefix: "LCINSP_"}, merged.Origins["server.port"])
	assert.Equal(t, source.Default{}, merged.Origins["server.host"])
}

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	items, err := Parse([]byte(`{"items": ["Vodka", "Gin", "Lime Juice"], "version": 2}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Vodka", "Gin", "Lime Juice"}, items)

	items, err = Parse([]byte(`{"items": []}`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseRejectsOtherShapes(t *testing.T) {
	docs := map[string]string{
		"not json":      `items: [a, b]`,
		"array":         `["Vodka"]`,
		"missing items": `{"products": ["Vodka"]}`,
		"items object":  `{"items": {"a": "Vodka"}}`,
		"mixed array":   `{"items": ["Vodka", 3]}`,
		"items string":  `{"items": "Vodka"}`,
		"items null":    `{"items": null}`,
		"null":          `null`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			items, err := Parse([]byte(doc))
			assert.Nil(t, items)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Fetch(context.Context) ([]byte, error) { return s.data, s.err }
func (s stubSource) String() string                        { return "stub" }

func TestLoad(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, []string{"Rum"}, Load(ctx, stubSource{data: []byte(`{"items":["Rum"]}`)}))
	assert.Nil(t, Load(ctx, stubSource{data: []byte(`{"items":[1]}`)}))
	assert.Nil(t, Load(ctx, stubSource{err: errors.New("offline")}))
	assert.Nil(t, Load(ctx, nil))
}

func TestBuiltinCatalogParses(t *testing.T) {
	items := Load(context.Background(), BuiltinSource{})
	require.NotEmpty(t, items)
	assert.Contains(t, items, "Lime Juice")
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":["Mezcal","Amaro"]}`), 0o600))

	src, err := NewSource(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mezcal", "Amaro"}, Load(context.Background(), src))

	missing := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}
	assert.Nil(t, Load(context.Background(), missing))
}

func TestNewSourceDispatch(t *testing.T) {
	ctx := context.Background()

	src, err := NewSource(ctx, "", Options{})
	require.NoError(t, err)
	assert.IsType(t, BuiltinSource{}, src)

	src, err = NewSource(ctx, " builtin ", Options{})
	require.NoError(t, err)
	assert.IsType(t, BuiltinSource{}, src)

	src, err = NewSource(ctx, "none", Options{})
	require.NoError(t, err)
	assert.Nil(t, src)

	src, err = NewSource(ctx, "https://example.test/items.json", Options{})
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	src, err = NewSource(ctx, "s3://bar-assets/catalog/items.json", Options{S3: S3Options{AccessKeyID: "AKIA", SecretAccessKey: "SECRET"}})
	require.NoError(t, err)
	assert.Equal(t, "s3://bar-assets/catalog/items.json", src.String())

	_, err = NewSource(ctx, "s3://bucket-only", Options{})
	assert.Error(t, err)
}

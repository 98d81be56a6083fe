package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogue(t *testing.T, dir, lang, content string) {
	t.Helper()
	path := filepath.Join(dir, CatalogueBase+"."+lang+".json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadAndTranslate(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir, "fr", `{
		"startup.connecting": "Connexion...",
		"startup.device": "Unité {{.Name}}"
	}`)

	tr, err := Load("fr", dir)
	require.NoError(t, err)
	assert.Equal(t, "fr", tr.Language())

	assert.Equal(t, "Connexion...", tr.T("startup.connecting"))
	assert.Equal(t, "Unité hud-one", tr.Tf("startup.device", map[string]any{"Name": "hud-one"}))
}

func TestLoadMissingCatalogue(t *testing.T) {
	_, err := Load("fr", t.TempDir())
	assert.Error(t, err)
}

func TestLoadMalformedCatalogue(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir, "fr", `{"unterminated": `)

	_, err := Load("fr", dir)
	assert.Error(t, err)
}

func TestLoadInvalidLanguage(t *testing.T) {
	_, err := Load("not a tag!!", t.TempDir())
	assert.Error(t, err)
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	dir := t.TempDir()
	writeCatalogue(t, dir, "fr", `{"known": "connu"}`)

	tr, err := Load("fr", dir)
	require.NoError(t, err)
	assert.Equal(t, "connu", tr.T("known"))
	assert.Equal(t, "unknown.id", tr.T("unknown.id"))
}

func TestNilTranslatorReturnsID(t *testing.T) {
	var tr *Translator
	assert.Equal(t, "startup.connecting", tr.T("startup.connecting"))
}

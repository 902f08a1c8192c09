package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestInitialize_FileCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := `[{"id":1,"name":"Boneka A","price":50000,"category":"Boneka","description":"Lucu","image":"https://img/a.jpg?w=400&h=400"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(catalog), 0644))

	cfg := &Config{
		Port:          "8080",
		BaseURL:       "http://localhost:8080",
		CatalogSource: CatalogSourceFile,
		CatalogDir:    dir,
		StaticDir:     dir,
		Locale:        language.MustParse("id-ID"),
		Currency:      currency.IDR,
	}

	handler, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/ping", http.StatusOK, `{"status":"ok"}`},
		{"/product?id=1", http.StatusOK, "<title>Boneka A - Artfulito</title>"},
		{"/detail.html?id=1", http.StatusOK, "Boneka A"},
		{"/product?id=99", http.StatusNotFound, `id="notFound"`},
		{"/product", http.StatusNotFound, `id="notFound"`},
		{"/api/product?id=1", http.StatusOK, `"productId":"1"`},
		{"/static/products.json", http.StatusOK, `"Boneka A"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestInitialize_BadStorefront(t *testing.T) {
	cfg := &Config{
		CatalogSource:  CatalogSourceFile,
		CatalogDir:     t.TempDir(),
		StorefrontPath: filepath.Join(t.TempDir(), "missing.yaml"),
	}

	_, err := Initialize(context.Background(), cfg)
	assert.Error(t, err)
}

type fakeDrive struct {
	folderFiles map[string]string
	files       map[string][]byte
}

func (f *fakeDrive) FindFileID(ctx context.Context, folderID, name string) (string, error) {
	id, ok := f.folderFiles[folderID+"/"+name]
	if !ok {
		return "", errors.New("not found")
	}
	return id, nil
}

func (f *fakeDrive) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.files[fileID]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func TestNewDriveCatalogRepository(t *testing.T) {
	drive := &fakeDrive{
		folderFiles: map[string]string{"folder-1/products.json": "file-1"},
		files:       map[string][]byte{"file-1": []byte(`[{"id":"7","name":"Kalung","price":1000}]`)},
	}

	t.Run("looks up the file in the folder", func(t *testing.T) {
		repo, err := newDriveCatalogRepository(context.Background(), drive, "", "folder-1")
		require.NoError(t, err)

		products, err := repo.LoadCatalog(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Kalung", products[0].Name)
	})

	t.Run("configured file id skips lookup", func(t *testing.T) {
		repo, err := newDriveCatalogRepository(context.Background(), drive, "file-1", "")
		require.NoError(t, err)

		_, err = repo.LoadCatalog(context.Background())
		assert.NoError(t, err)
	})

	t.Run("missing catalog in folder", func(t *testing.T) {
		_, err := newDriveCatalogRepository(context.Background(), drive, "", "other")
		assert.Error(t, err)
	})
}

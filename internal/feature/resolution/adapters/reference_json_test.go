package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempJSON はテスト用のJSONファイルを一時ディレクトリに書き出します。
func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tickers.json")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err, "failed to write temp file")

	return path
}

// TestLoadReferenceFile はJSONカタログの読み込みと並び順の保持を検証します。
func TestLoadReferenceFile(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `[
		{"name": "Tata Consultancy Services", "ticker": "TCS.NS"},
		{"name": "Infosys", "ticker": "INFY.NS"}
	]`)

	entries, err := LoadReferenceFile(path)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Tata Consultancy Services", entries[0].Name)
	assert.Equal(t, "TCS.NS", entries[0].Ticker)
	assert.True(t, entries[0].IsActive)
	assert.Equal(t, 0, entries[0].SortKey)

	// ファイル内の並び順がsort_keyに反映される
	assert.Equal(t, "INFY.NS", entries[1].Ticker)
	assert.Equal(t, 1, entries[1].SortKey)
}

// TestLoadReferenceFile_KeepsMalformedRows は空フィールドの行が読み込み段階では除外されないことを検証します。
// フィルタリングはImportCatalog側の責務です。
func TestLoadReferenceFile_KeepsMalformedRows(t *testing.T) {
	t.Parallel()

	path := writeTempJSON(t, `[
		{"name": "", "ticker": "GHOST.NS"},
		{"name": "Infosys", "ticker": "INFY.NS"}
	]`)

	entries, err := LoadReferenceFile(path)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// TestLoadReferenceFile_Errors は読み込み失敗の各パターンを検証します。
func TestLoadReferenceFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pathFor func(t *testing.T) string
	}{
		{
			name: "missing file",
			pathFor: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.json")
			},
		},
		{
			name: "invalid json",
			pathFor: func(t *testing.T) string {
				return writeTempJSON(t, `{"name": "not an array"}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadReferenceFile(tt.pathFor(t))

			assert.Error(t, err)
		})
	}
}

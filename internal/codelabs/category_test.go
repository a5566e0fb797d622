package codelabs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesOrder(t *testing.T) {
	want := []string{"android", "firebase", "cloud", "flutter", "ai-ml", "web", "maps", "ads", "workspace", "general"}
	got := make([]string, 0, len(Categories))
	for _, c := range Categories {
		got = append(got, c.String())
	}
	require.Equal(t, want, got)
}

func TestCategoryValid(t *testing.T) {
	require.True(t, CategoryAIML.Valid())
	require.True(t, Category("general").Valid())
	require.False(t, Category("Android").Valid())
	require.False(t, Category("").Valid())
	require.False(t, Category("codelabs").Valid())
}

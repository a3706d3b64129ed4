package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"PositionTitle":   "position_title",
		"CreatedAt":       "created_at",
		"ID":              "id",
		"ExperienceYears": "experience_years",
		"simple":          "simple",
	}
	for in, want := range cases {
		require.Equal(t, want, ToSnakeCase(in))
	}
}

func TestFormatDocDate(t *testing.T) {
	date := time.Date(2025, time.March, 7, 15, 30, 0, 0, time.UTC)
	require.Equal(t, "07.03.2025", FormatDocDate(date))
}

func TestSplitCSV(t *testing.T) {
	t.Run("пробелы и пустые элементы отбрасываются", func(t *testing.T) {
		require.Equal(t, []string{"Go", "SQL", "Docker"}, SplitCSV(" Go, SQL ,, Docker ,"))
	})

	t.Run("пустая строка", func(t *testing.T) {
		require.Empty(t, SplitCSV(""))
	})
}

func TestIsContextDone(t *testing.T) {
	require.False(t, IsContextDone(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, IsContextDone(ctx))
}

package associate_test

import (
	"strings"
	"testing"

	"go-coope/internal/associate"

	"github.com/stretchr/testify/assert"
)

func TestBuildPredicate_Defaults(t *testing.T) {
	p := associate.BuildPredicate(associate.SearchRequest{})

	assert.Equal(t, "a.status = ?", p.Where)
	assert.Equal(t, []any{"activo"}, p.Args)
	assert.Equal(t, "a.full_name ASC, a.id ASC", p.OrderBy)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestBuildPredicate_StatusAllDropsFilter(t *testing.T) {
	p := associate.BuildPredicate(associate.SearchRequest{Status: "TODOS"})

	assert.Empty(t, p.Where)
	assert.Empty(t, p.Args)
}

func TestBuildPredicate_SearchAndDepartment(t *testing.T) {
	p := associate.BuildPredicate(associate.SearchRequest{
		Search:     "Perez",
		Status:     "activo",
		Department: "Antioquia",
		SortBy:     "apellidos",
	})

	assert.True(t, strings.HasPrefix(p.Where, "a.status = ? AND LOWER(a.department) LIKE ?"))
	for _, col := range []string{"a.full_name", "a.national_id", "a.membership_number", "a.personal_email"} {
		assert.Contains(t, p.Where, col)
	}
	assert.Equal(t, []any{"activo", "%antioquia%", "%perez%", "%perez%", "%perez%", "%perez%"}, p.Args)
	assert.Equal(t, "a.last_names ASC, a.id ASC", p.OrderBy)
}

func TestBuildPredicate_Sorting(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{"known column descending", "fecha_ingreso", "desc", "a.join_date DESC, a.id ASC"},
		{"unknown column falls back", "password; DROP TABLE associates", "ASC", "a.full_name ASC, a.id ASC"},
		{"invalid direction falls back", "cedula", "sideways", "a.national_id ASC, a.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := associate.BuildPredicate(associate.SearchRequest{SortBy: tt.sortBy, SortDir: tt.sortDir})
			assert.Equal(t, tt.want, p.OrderBy)
		})
	}
}

func TestBuildPredicate_Paging(t *testing.T) {
	p := associate.BuildPredicate(associate.SearchRequest{Page: 3, PageSize: 15})
	assert.Equal(t, 15, p.Limit)
	assert.Equal(t, 30, p.Offset)

	p = associate.BuildPredicate(associate.SearchRequest{Page: -2, PageSize: 1000})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)
}

func TestBuildPredicate_EscapesWildcards(t *testing.T) {
	p := associate.BuildPredicate(associate.SearchRequest{Status: "todos", Search: "100%_x"})

	assert.Equal(t, `%100\%\_x%`, p.Args[0])
}

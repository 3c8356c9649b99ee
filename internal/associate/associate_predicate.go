package associate

import (
	"strings"

	"go-coope/internal/shared/pagination"
)

// StatusAll disables the status filter.
const StatusAll = "todos"

const defaultSort = "nombre_completo"

// sortColumns maps the public sort tokens to columns. Anything outside this
// map falls back to the default sort.
var sortColumns = map[string]string{
	"nombre_completo": "a.full_name",
	"nombres":         "a.first_names",
	"apellidos":       "a.last_names",
	"cedula":          "a.national_id",
	"numero_asociado": "a.membership_number",
	"fecha_ingreso":   "a.join_date",
	"departamento":    "a.department",
	"ciudad":          "a.city",
	"estado":          "a.status",
	"creado_en":       "a.created_at",
}

// searchColumns are matched case-insensitively by the free-text filter.
var searchColumns = []string{
	"a.full_name",
	"a.national_id",
	"a.membership_number",
	"a.personal_email",
}

type SearchRequest struct {
	Search     string `form:"search"`
	Status     string `form:"estado"`
	Department string `form:"departamento"`
	SortBy     string `form:"ordenar"`
	SortDir    string `form:"direccion"`
	Page       int    `form:"page"`
	PageSize   int    `form:"limit"`
}

// Predicate holds parameterized query fragments. Where and OrderBy only ever
// contain text from this file; user input travels in Args.
type Predicate struct {
	Where    string
	Args     []any
	OrderBy  string
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

func BuildPredicate(req SearchRequest) Predicate {
	var (
		conds []string
		args  []any
	)

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = string(StatusActive)
	}
	if status != StatusAll {
		conds = append(conds, "a.status = ?")
		args = append(args, status)
	}

	if dept := strings.TrimSpace(req.Department); dept != "" {
		conds = append(conds, `LOWER(a.department) LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(dept))
	}

	if q := strings.TrimSpace(req.Search); q != "" {
		pattern := containsPattern(q)
		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = "LOWER(COALESCE(" + col + `, '')) LIKE ? ESCAPE '\'`
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	column, ok := sortColumns[strings.ToLower(strings.TrimSpace(req.SortBy))]
	if !ok {
		column = sortColumns[defaultSort]
	}
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(req.SortDir), "DESC") {
		dir = "DESC"
	}

	page, size := pagination.Normalize(req.Page, req.PageSize)

	return Predicate{
		Where:    strings.Join(conds, " AND "),
		Args:     args,
		OrderBy:  column + " " + dir + ", a.id ASC",
		Limit:    size,
		Offset:   pagination.Offset(page, size),
		Page:     page,
		PageSize: size,
	}
}

// containsPattern lower-cases s and escapes LIKE wildcards so user input
// always matches literally.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

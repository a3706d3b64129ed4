package rbac

import (
	"regexp"

	"hrms-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

// PathRule хранит правила одного http-метода:
// точные пути проверяются до regexp-правил
type PathRule struct {
	Exact    map[string]models.RbacFunc
	Patterns []PatternRule
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}

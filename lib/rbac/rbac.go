package rbac

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	Instance = i
	i.initRules()
}

type impl struct {
	rules       map[HTTPMethod]*PathRule
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

// GetRuleFunc ищет проверку доступа для запроса: сначала точное совпадение
// пути, затем regexp-правила с параметрами
func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	pathRule := i.rules[HTTPMethod(strings.ToUpper(method))]
	if pathRule == nil {
		return nil, false
	}
	path = normalizePath(path)
	if handler, ok := pathRule.Exact[path]; ok {
		return handler, true
	}
	for _, rule := range pathRule.Patterns {
		if rule.Pattern.MatchString(path) {
			return rule.Handler, true
		}
	}
	return nil, false
}

// RegisterRule регистрирует правило по пути из swagger-аннотации контроллера.
// Ошибка в формате пути - ошибка программиста, поэтому panic при старте
func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		panic(err.Error())
	}

	i.grantPermission(module, permission, roles)

	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	pathRule := i.rules[method]
	if pathRule == nil {
		pathRule = &PathRule{Exact: map[string]models.RbacFunc{}}
		i.rules[method] = pathRule
	}
	if pattern := pathToRegex(path); pattern != nil && strings.Contains(path, "{") {
		pathRule.Patterns = append(pathRule.Patterns, PatternRule{
			Pattern: pattern,
			Handler: handler,
		})
		return nil
	}
	pathRule.Exact[path] = handler
	return nil
}

// grantPermission пополняет матрицу модуль-право для выдачи фронту
func (i *impl) grantPermission(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		byModule := i.permissions[role]
		if byModule == nil {
			byModule = map[models.Module][]models.Permission{}
			i.permissions[role] = byModule
		}
		if !slices.Contains(byModule[module], permission) {
			byModule[module] = append(byModule[module], permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

var paramSegment = regexp.MustCompile(`\{[^}]+?\}`)

// pathToRegex превращает путь с {параметрами} в regexp,
// параметр матчит один сегмент пути
func pathToRegex(path string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(path)
	pattern = strings.NewReplacer(`\{`, "{", `\}`, "}", `\*`, `.*?`).Replace(pattern)
	pattern = paramSegment.ReplaceAllString(pattern, `([^/]+)`)
	regex, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return nil
	}
	return regex
}

func AllowFunc() models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowed := make(map[models.UserRole]struct{}, len(accessRoles))
	for _, role := range accessRoles {
		allowed[role] = struct{}{}
	}
	return func(userID string, role models.UserRole, uri string) bool {
		_, ok := allowed[role]
		return ok
	}
}

// parseSwaggerPattern разбирает строку вида "/api/v1/users [post]"
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	closing := strings.LastIndex(pattern, "]")
	if open == -1 || closing <= open {
		return "", "", errors.Errorf("не указан метод в правиле (%v)", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[open+1 : closing])))
	path = normalizePath(strings.TrimSpace(pattern[:open]))
	return path, method, nil
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

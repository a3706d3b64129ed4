package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hrms-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/space/job/{id}/approve [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/space/job/123-321/approve"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/space/job/approve"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/space/interview/{id}/round/{roundId}/submit [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/space/interview/123-321/round/qwe-ewr123-wr-12/submit"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/space/interview/we-ewr123-wr-12/round/submit"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`role gates`, func(t *testing.T) {
		NewHandler()

		ruleFn, found := Instance.GetRuleFunc("PUT", "/api/v1/space/job/abc-123/approve")
		require.True(t, found)
		require.True(t, ruleFn("u1", models.UserRoleHrSpoc, "/api/v1/space/job/abc-123/approve"))
		require.True(t, ruleFn("u1", models.UserRoleAdmin, "/api/v1/space/job/abc-123/approve"))
		require.False(t, ruleFn("u1", models.UserRoleRecruiter, "/api/v1/space/job/abc-123/approve"))
		require.False(t, ruleFn("u1", models.UserRoleEmployer, "/api/v1/space/job/abc-123/approve"))

		ruleFn, found = Instance.GetRuleFunc("POST", "/api/v1/space/candidate")
		require.True(t, found)
		require.True(t, ruleFn("u1", models.UserRoleRecruiter, "/api/v1/space/candidate"))
		require.False(t, ruleFn("u1", models.UserRoleManager, "/api/v1/space/candidate"))

		ruleFn, found = Instance.GetRuleFunc("POST", "/api/v1/space/interview/abc/round/submit")
		require.True(t, found)
		require.True(t, ruleFn("u1", models.UserRoleManager, "/api/v1/space/interview/abc/round/submit"))
		require.False(t, ruleFn("u1", models.UserRoleRecruiter, "/api/v1/space/interview/abc/round/submit"))

		perms := Instance.GetPermissions(models.UserRoleAdmin)
		require.NotEmpty(t, perms[models.JobModule])
	})
}

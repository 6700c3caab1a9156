package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms_backend/internals/constants"
	helperAuth "lms_backend/internals/helpers/auth"
)

const testSecret = "rahasia-uji"

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func newApp(seen *map[string]any) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		course, _ := helperAuth.GetCourseIDFromToken(c)
		*seen = map[string]any{
			"user_id":    id,
			"role":       helperAuth.GetRole(c),
			"course_id":  course,
			"user_name":  helperAuth.GetUserName(c),
			"leave_date": helperAuth.GetLeaveDate(c),
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/staff", OnlyRoles("staff saja", constants.StaffRoles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuthJWTHydratesLocals(t *testing.T) {
	var seen map[string]any
	app := newApp(&seen)

	userID, courseID := uuid.New(), uuid.New()
	tok := sign(t, testSecret, jwt.MapClaims{
		"id":         userID.String(),
		"role":       "Student",
		"course_id":  courseID.String(),
		"user_name":  "Ayu",
		"leave_date": "2027-03-31",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, userID, seen["user_id"])
	assert.Equal(t, constants.RoleStudent, seen["role"])
	assert.Equal(t, courseID, seen["course_id"])
	assert.Equal(t, "Ayu", seen["user_name"])
	leave := seen["leave_date"].(*time.Time)
	require.NotNil(t, leave)
	assert.Equal(t, "2027-03-31", leave.Format("2006-01-02"))
}

func TestAuthJWTRejects(t *testing.T) {
	var seen map[string]any
	app := newApp(&seen)
	valid := jwt.MapClaims{"sub": uuid.NewString(), "role": "student", "exp": time.Now().Add(time.Hour).Unix()}

	cases := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"wrong secret", "Bearer " + sign(t, "lain", valid)},
		{"expired", "Bearer " + sign(t, testSecret, jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Hour).Unix()})},
		{"bad user id", "Bearer " + sign(t, testSecret, jwt.MapClaims{"sub": "bukan-uuid", "exp": time.Now().Add(time.Hour).Unix()})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthJWTCookieFallback(t *testing.T) {
	var seen map[string]any
	app := newApp(&seen)

	tok := sign(t, testSecret, jwt.MapClaims{"user_id": uuid.NewString(), "role": "teacher", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, constants.RoleTeacher, seen["role"])
}

func TestOnlyRoles(t *testing.T) {
	var seen map[string]any
	app := newApp(&seen)

	for role, want := range map[string]int{
		constants.RoleTeacher: fiber.StatusNoContent,
		constants.RoleAdmin:   fiber.StatusNoContent,
		constants.RoleStudent: fiber.StatusForbidden,
		"":                    fiber.StatusUnauthorized,
	} {
		tok := sign(t, testSecret, jwt.MapClaims{"sub": uuid.NewString(), "role": role, "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %q", role)
	}
}

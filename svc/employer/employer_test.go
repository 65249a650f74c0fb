package employer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jobportal/pkg/response"
	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/pkg/validator"
	"github.com/dmitrymomot/jobportal/svc/employer"
)

var profileColumns = []string{
	"id", "name", "description", "banner_image_url", "organization_type", "team_size",
	"year_of_establishment", "website_url", "location", "created_at", "updated_at",
	"avatar_url",
}

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*employer.Service, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return employer.NewService(pool, employer.NewStorage(pool, time.Second), nil), pool
}

func user(role string) *session.AuthenticatedUser {
	return &session.AuthenticatedUser{User: session.User{ID: uuid.New(), Name: "Acme Owner", Role: role}}
}

func validUpdate() employer.UpdateInput {
	return employer.UpdateInput{
		Name:                "Acme",
		Description:         "We build tools for builders",
		OrganizationType:    "It & Software",
		TeamSize:            "11-50 Employees",
		YearOfEstablishment: "2001",
		AvatarURL:           "https://cdn.example.com/acme.png",
		WebsiteURL:          "https://acme.example.com",
	}
}

func TestService_Profile(t *testing.T) {
	t.Parallel()

	t.Run("complete profile", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		u := user("employer")
		now := time.Now()

		pool.ExpectQuery("FROM employers").
			WithArgs(u.ID).
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(
				u.ID, ptr("Acme"), ptr("We build tools"), nil, ptr("Design"), nil,
				ptr(int32(2001)), nil, nil, now, now,
				ptr("https://cdn.example.com/acme.png"),
			))

		d, err := svc.Profile(context.Background(), u)
		require.NoError(t, err)
		assert.True(t, d.ProfileCompleted)
		assert.Equal(t, "Acme", *d.Name)
		assert.Equal(t, int32(2001), *d.YearOfEstablishment)
		assert.Nil(t, d.TeamSize)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("missing avatar leaves it incomplete", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		u := user("employer")
		now := time.Now()

		pool.ExpectQuery("FROM employers").
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(
				u.ID, ptr("Acme"), ptr("We build tools"), nil, ptr("Design"), nil,
				ptr(int32(2001)), nil, nil, now, now, nil,
			))

		d, err := svc.Profile(context.Background(), u)
		require.NoError(t, err)
		assert.False(t, d.ProfileCompleted)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		pool.ExpectQuery("FROM employers").WillReturnError(pgx.ErrNoRows)

		_, err := svc.Profile(context.Background(), user("employer"))
		assert.ErrorIs(t, err, employer.ErrProfileNotFound)
	})

	t.Run("applicants are rejected", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)

		_, err := svc.Profile(context.Background(), user("applicant"))
		assert.ErrorIs(t, err, employer.ErrNotEmployer)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	t.Run("writes profile and avatar in one transaction", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		u := user("employer")

		pool.ExpectBegin()
		pool.ExpectExec("UPDATE employers").
			WithArgs(u.ID, "Acme", "We build tools for builders", pgxmock.AnyArg(), pgxmock.AnyArg(),
				int32(2001), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectExec("UPDATE users").
			WithArgs(u.ID, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectCommit()

		require.NoError(t, svc.Update(context.Background(), u, validUpdate()))
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("avatar failure rolls back the profile", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)

		pool.ExpectBegin()
		pool.ExpectExec("UPDATE employers").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectExec("UPDATE users").WillReturnError(assert.AnError)
		pool.ExpectRollback()

		err := svc.Update(context.Background(), user("employer"), validUpdate())
		assert.ErrorIs(t, err, employer.ErrUpdateFailed)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("missing employer row", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)

		pool.ExpectBegin()
		pool.ExpectExec("UPDATE employers").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		pool.ExpectRollback()

		err := svc.Update(context.Background(), user("employer"), validUpdate())
		assert.ErrorIs(t, err, employer.ErrProfileNotFound)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)

		tests := []struct {
			name    string
			mutate  func(*employer.UpdateInput)
			field   string
			message string
		}{
			{"short description", func(in *employer.UpdateInput) { in.Description = "tiny" }, "description", "Description is Required with Minimum 10 Characters"},
			{"unknown organization type", func(in *employer.UpdateInput) { in.OrganizationType = "Mining" }, "organizationType", "Please Select a Valid Organization Type"},
			{"unknown team size", func(in *employer.UpdateInput) { in.TeamSize = "3 people" }, "teamSize", "Please Select a Valid Team Size"},
			{"two digit year", func(in *employer.UpdateInput) { in.YearOfEstablishment = "99" }, "yearOfEstablishment", "4 Digit Year is Required"},
			{"year too early", func(in *employer.UpdateInput) { in.YearOfEstablishment = "1700" }, "yearOfEstablishment", "Please Enter a Valid Year between 1800 and Current Year"},
			{"bad website", func(in *employer.UpdateInput) { in.WebsiteURL = "acme" }, "websiteUrl", "Valid Url is Required"},
			{"long location", func(in *employer.UpdateInput) { in.Location = strings.Repeat("x", 256) }, "location", "Location must not exceed 255 characters"},
		}
		for _, tt := range tests {
			in := validUpdate()
			tt.mutate(&in)

			ve := validator.Extract(svc.Update(context.Background(), user("employer"), in))
			require.NotNil(t, ve, tt.name)
			require.Len(t, ve, 1, tt.name)
			assert.Equal(t, tt.field, ve[0].Field, tt.name)
			assert.Equal(t, tt.message, ve[0].Message, tt.name)
		}
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("empty optional fields are accepted", func(t *testing.T) {
		t.Parallel()
		in := employer.UpdateInput{Name: " Acme ", Description: "We build tools for builders", YearOfEstablishment: "1999"}
		require.NoError(t, in.Validate())
		assert.Equal(t, "Acme", in.Name)
	})
}

func router(svc *employer.Service, u *session.AuthenticatedUser) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if u != nil {
				req = req.WithContext(session.WithUser(req.Context(), u))
			}
			next.ServeHTTP(w, req)
		})
	})
	employer.NewHandler(svc, nil).Routes(r)
	return r
}

func serve(t *testing.T, h http.Handler, method, body string) (int, response.Result) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, "/employer/profile", strings.NewReader(body)))

	var res response.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return rec.Code, res
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("applicant is forbidden", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		code, res := serve(t, router(svc, user("applicant")), http.MethodGet, "")
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "Unauthorized Employer", res.Message)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		code, _ := serve(t, router(svc, nil), http.MethodGet, "")
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("get profile", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		u := user("employer")
		now := time.Now()
		pool.ExpectQuery("FROM employers").
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(
				u.ID, ptr("Acme"), nil, nil, nil, nil, nil, nil, nil, now, now, nil,
			))

		code, res := serve(t, router(svc, u), http.MethodGet, "")
		require.Equal(t, http.StatusOK, code)
		data, ok := res.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Acme", data["name"])
		assert.Equal(t, false, data["isProfileCompleted"])
	})

	t.Run("update profile", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		pool.ExpectBegin()
		pool.ExpectExec("UPDATE employers").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectExec("UPDATE users").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectCommit()

		body, err := json.Marshal(validUpdate())
		require.NoError(t, err)
		code, res := serve(t, router(svc, user("employer")), http.MethodPut, string(body))
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, res.Success)
		assert.Equal(t, "Profile Updated Successfully", res.Message)
	})

	t.Run("update validation", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)

		code, res := serve(t, router(svc, user("employer")), http.MethodPut, `{"name":"","description":"We build tools","yearOfEstablishment":"2001"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Company Name is Required", res.Message)
	})

	t.Run("update failure", func(t *testing.T) {
		t.Parallel()
		svc, pool := setup(t)
		pool.ExpectBegin()
		pool.ExpectExec("UPDATE employers").WillReturnError(assert.AnError)
		pool.ExpectRollback()

		body, err := json.Marshal(validUpdate())
		require.NoError(t, err)
		code, res := serve(t, router(svc, user("employer")), http.MethodPut, string(body))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Something went Wrong, Profile not Updated", res.Message)
	})
}

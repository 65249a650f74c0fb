package account_test

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/svc/account"
)

var testMeta = session.ClientMetadata{UserAgent: "test-agent", IP: "192.0.2.10"}

func validRegistration() account.RegisterInput {
	return account.RegisterInput{
		Name:            "Jane Doe",
		Username:        "jane_doe",
		Email:           "Jane@Example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

type fixture struct {
	svc      *account.Service
	sessions *session.Manager
	pool     pgxmock.PgxPoolIface
	hasher   account.Hasher
}

func setup(t *testing.T) fixture {
	t.Helper()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	sessions := session.New(session.NewPostgresStore(pool, 0))
	hasher := account.NewBcryptHasher(bcrypt.MinCost)
	svc := account.NewService(pool, account.NewStorage(pool, 0), sessions, hasher, nil)

	return fixture{svc: svc, sessions: sessions, pool: pool, hasher: hasher}
}

func expectTaken(pool pgxmock.PgxPoolIface, username, email string, usernameTaken, emailTaken bool) {
	pool.ExpectQuery("EXISTS").
		WithArgs(username, email).
		WillReturnRows(pgxmock.NewRows([]string{"username_taken", "email_taken"}).AddRow(usernameTaken, emailTaken))
}

package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*entity.User)}
	for _, u := range users {
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	return r.list(func(*entity.User) bool { return true }), nil
}

func (r *fakeUserRepo) ListByUsername(username string) ([]*entity.User, error) {
	return r.list(func(u *entity.User) bool { return u.Username == username }), nil
}

func (r *fakeUserRepo) list(match func(*entity.User) bool) []*entity.User {
	var out []*entity.User
	for _, u := range r.users {
		if match(u) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	for _, u := range r.users {
		if u.ID != user.ID && u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[int64]*entity.Client)}
	for _, c := range clients {
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *fakeClientRepo) checkUnique(candidate *entity.Client) error {
	for _, c := range r.clients {
		if c.ID == candidate.ID {
			continue
		}
		if c.CompanyID == candidate.CompanyID {
			return domain.ErrCompanyTaken
		}
		if c.Email == candidate.Email {
			return domain.ErrEmailTaken
		}
	}
	return nil
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	if err := r.checkUnique(client); err != nil {
		return err
	}
	r.nextID++
	client.ID = r.nextID
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByCompanyID(companyID int64) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(client *entity.Client) error {
	if err := r.checkUnique(client); err != nil {
		return err
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra el fake (sin tx real).
type fakeTxRunner struct {
	repo *fakeClientRepo
}

var _ usecase.ClientTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(clients repository.ClientRepository) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "backoffice-api-test"
	testExpMin    = 60
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// tokenForRole genera un JWT de prueba con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "alice", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición con body JSON opcional y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, body, authHeader string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Comando de desarrollo: puebla la base con datos de ejemplo (empresa,
// usuarios, cliente y vínculo client_user) e imprime un JWT de admin para
// probar los endpoints protegidos. La emisión de tokens no tiene endpoint
// público; la identidad del caller la resuelve una capa externa.
package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/backoffice-api/pkg/config"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	clientUserRepo := postgres.NewClientUserRepository(pool)

	// Empresa de ejemplo (idempotente por nombre).
	company, err := companyRepo.GetByName("Acme")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar empresa")
	}
	if company == nil {
		company = &entity.Company{Name: "Acme", Employees: 10}
		if err := companyRepo.Create(company); err != nil {
			log.Fatal().Err(err).Msg("crear empresa")
		}
		log.Info().Int64("id", company.ID).Msg("empresa creada")
	}

	admin, err := seedUser(userRepo, "alice", entity.RoleAdmin, &company.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	operator, err := seedUser(userRepo, "bob", entity.RoleUser, &company.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("crear operador")
	}

	client, err := clientRepo.GetByCompanyID(company.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar cliente")
	}
	if client == nil {
		client = &entity.Client{
			Name:      "Acme Principal",
			Email:     "contacto@acme.test",
			Phone:     "555-0100",
			UserID:    admin.ID,
			CompanyID: company.ID,
		}
		if err := clientRepo.Create(client); err != nil {
			log.Fatal().Err(err).Msg("crear cliente")
		}
		log.Info().Int64("client_id", client.ID).Msg("cliente creado")
	}

	// Vínculo cliente-operador (idempotente: solo si el cliente no tiene ninguno).
	links, err := clientUserRepo.ListByClient(client.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("listar vínculos client_user")
	}
	if len(links) == 0 {
		link := &entity.ClientUser{ClientID: client.ID, UserID: operator.ID, Active: true}
		if err := clientUserRepo.Create(link); err != nil {
			log.Fatal().Err(err).Msg("crear vínculo client_user")
		}
		log.Info().Int64("link_id", link.ID).Msg("vínculo client_user creado")
	}

	token, err := jwt.Generate(cfg.JWT.Secret, admin.ID, admin.Username, admin.Role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token admin")
	}
	fmt.Printf("Admin token (%s):\n%s\n", admin.Username, token)
}

// seedUser crea el usuario si no existe (idempotente por username).
func seedUser(repo *postgres.UserRepo, username, role string, companyID *int64) (*entity.User, error) {
	existing, err := repo.ListByUsername(username)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}
	u := &entity.User{Username: username, Role: role, CompanyID: companyID}
	if err := repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

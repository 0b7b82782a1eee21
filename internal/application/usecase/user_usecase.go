package usecase

import (
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// UserUseCase casos de uso para usuarios del backoffice.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve los usuarios. Si username no está vacío, filtra por
// coincidencia exacta (sensible a mayúsculas); si no, devuelve todos.
func (uc *UserUseCase) List(username string) (*dto.UserListResponse, error) {
	var (
		list []*entity.User
		err  error
	)
	if username != "" {
		list, err = uc.users.ListByUsername(username)
	} else {
		list, err = uc.users.List()
	}
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserSummary, 0, len(list))}
	for _, u := range list {
		out.Users = append(out.Users, dto.UserSummary{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// ReplaceUsername reemplaza el username del usuario id. Si el body no trae
// username, el valor actual queda intacto (actualización parcial).
func (uc *UserUseCase) ReplaceUsername(id int64, in dto.UpdateUserRequest) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if in.Username == nil || *in.Username == user.Username {
		// Nada que cambiar; el PUT sigue siendo exitoso.
		return nil
	}
	// Pre-chequeo de unicidad; la constraint UNIQUE de la tabla cubre la
	// carrera y el repo la mapea también a ErrUsernameTaken.
	others, err := uc.users.ListByUsername(*in.Username)
	if err != nil {
		return err
	}
	if len(others) > 0 {
		return domain.ErrUsernameTaken
	}
	user.Username = *in.Username
	return uc.users.Update(user)
}

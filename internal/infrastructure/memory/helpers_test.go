package memory_test

import (
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
)

func newUser(name, email string) repository.NewUser {
	return repository.NewUser{Name: name, Email: email, Password: "clave-segura", Role: entity.RoleOperator}
}

func adminUser() entity.User {
	return entity.User{ID: 1, Name: "Root", Email: "root@wms.co", Role: entity.RoleAdmin, Active: true}
}

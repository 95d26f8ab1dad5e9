package user

import (
	"github.com/gin-gonic/gin"

	"haitch/internal/application/user/usecases"
	"haitch/internal/shared/utils"
)

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"omitempty,cn_phone"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

func (r *RegisterUserRequest) ToCommand(operatorID uint) usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username:   r.Username,
		Password:   r.Password,
		Name:       r.Name,
		Phone:      r.Phone,
		Role:       r.Role,
		OperatorID: operatorID,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"omitempty,cn_phone"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
	Password string `json:"password" binding:"omitempty,min=6,max=72"`
}

func parseListUsersQuery(c *gin.Context) usecases.ListUsersQuery {
	p := utils.GetPagination(c)
	return usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Username: c.Query("username"),
		Name:     c.Query("name"),
		Role:     c.Query("role"),
	}
}

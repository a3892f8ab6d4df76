package api

import (
	"errors"
	"strconv"

	"github.com/fsdevblog/umbrella-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var errInvalidID = errors.New("invalid id")

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в middlewares.AuthRequired.
// В случае, если значения в контексте нет или ошибка утверждения типа, вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// idParam разбирает положительный числовой параметр пути.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

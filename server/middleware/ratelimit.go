package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "eoscan/server/errors"
)

// uploadLimiters лимитеры по клиентским IP.
// Записи не вычищаются: число уникальных IP во внутреннем контуре мало.
type uploadLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (u *uploadLimiters) get(clientIP string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	limiter, ok := u.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(u.limit, u.burst)
		u.limiters[clientIP] = limiter
	}
	return limiter
}

// GinUploadRateLimitMiddleware ограничивает частоту загрузок на один
// клиентский IP. Обработка файла инвентаризации дорогая, поэтому лимит
// применяется до чтения тела запроса.
func GinUploadRateLimitMiddleware(perMinute int) gin.HandlerFunc {
	limiters := &uploadLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			appErr := apperrors.NewTooManyRequestsError("Too many upload requests, try again later", nil)
			c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{
				"error":   true,
				"message": appErr.Message,
			})
			return
		}

		c.Next()
	}
}

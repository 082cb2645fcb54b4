package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором сотрудника
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие корректного заголовка X-User-ID
// Публичные маршруты (просмотр сетки и аналитики) проходят без него,
// все мутации выполняются от имени конкретного сотрудника
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор сотрудника из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

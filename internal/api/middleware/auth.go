package middleware

import (
	"context"
	"net/http"

	"github.com/fitlane/GMS-AppointmentService/internal/api/handlers"
	"github.com/fitlane/GMS-AppointmentService/internal/domain"
)

type ctxKey int

const (
	actorCtxKey ctxKey = iota
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidRole   = "некорректная роль в заголовке X-User-Role"
)

// Auth middleware извлекает актора из заголовков X-User-ID и X-User-Role
// Заголовки проставляет API gateway после проверки токена - здесь токен
// не разбирается
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !role.IsValid() {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		actor := domain.Actor{ID: userID, Role: role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor кладет актора в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// ActorFromContext достает актора из контекста
// Второе значение false, если Auth middleware не отработал
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(domain.Actor)
	return actor, ok
}
